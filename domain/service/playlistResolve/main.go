package playlistResolve

import (
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"

	"github.com/denormal/go-gitignore"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/openfit/domain/repository/file"
	"github.com/t-kuni/openfit/domain/service/documentStore"
	"github.com/t-kuni/openfit/domain/system/timer"
)

const (
	trackExt   = ".mp3"
	IgnoreFile = ".playlistignore"
)

type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("track index %d out of range [0, %d)", e.Index, e.Len)
}

// PlaylistResolveService keeps the in-memory list of tracks found in the
// playlist source directory. The list itself is never persisted.
type PlaylistResolveService struct {
	store          *documentStore.DocumentStore
	fileRepository file.Repository
	timer          timer.ITimer
	log            *slog.Logger

	tracks []string
}

func NewPlaylistResolveService(
	store *documentStore.DocumentStore,
	fileRepository file.Repository,
	timer timer.ITimer,
	log *slog.Logger,
) *PlaylistResolveService {
	return &PlaylistResolveService{
		store:          store,
		fileRepository: fileRepository,
		timer:          timer,
		log:            log,
		tracks:         []string{},
	}
}

// Rescan replaces the snapshot with the mp3 files directly inside dir,
// sorted by path. A missing directory yields an empty snapshot. On error
// the previous snapshot is kept.
func (s *PlaylistResolveService) Rescan(dir string) error {
	if dir == "" || !s.fileRepository.Exists(dir) {
		s.log.Debug("playlist source not found", "dir", dir)
		s.tracks = []string{}
		return nil
	}

	entries, err := s.fileRepository.List(dir)
	if err != nil {
		return eris.Wrapf(err, "failed to list playlist source: %s", dir)
	}

	ignore, err := s.loadIgnore(dir)
	if err != nil {
		return err
	}

	tracks := []string{}
	for _, entry := range entries {
		if !strings.HasSuffix(strings.ToLower(entry), trackExt) {
			continue
		}
		if !s.fileRepository.IsFile(entry) {
			continue
		}
		if ignored(ignore, entry) {
			continue
		}
		tracks = append(tracks, entry)
	}
	sort.Strings(tracks)

	s.tracks = tracks
	s.log.Debug("playlist rescanned", "dir", dir, "tracks", len(s.tracks))
	return nil
}

// Reload rescans the source stored in the program data.
func (s *PlaylistResolveService) Reload() error {
	return s.Rescan(s.Source())
}

// Shuffle permutes the current snapshot without rescanning.
func (s *PlaylistResolveService) Shuffle() {
	r := rand.New(rand.NewSource(s.timer.Now().UnixNano()))
	r.Shuffle(len(s.tracks), func(i, j int) {
		s.tracks[i], s.tracks[j] = s.tracks[j], s.tracks[i]
	})
}

// RemoveAt drops one track from the snapshot, typically one that vanished
// from disk. The playlist source is left untouched.
func (s *PlaylistResolveService) RemoveAt(index int) error {
	if index < 0 || index >= len(s.tracks) {
		return &IndexError{Index: index, Len: len(s.tracks)}
	}
	s.tracks = append(s.tracks[:index], s.tracks[index+1:]...)
	return nil
}

// SetSource rescans path and, when that succeeds, stores it as the source
// and flushes the program data. A failed rescan leaves the source unchanged.
func (s *PlaylistResolveService) SetSource(path string) error {
	if err := s.Rescan(path); err != nil {
		return err
	}

	s.store.Document().PlaylistSource = path
	return s.store.Flush()
}

func (s *PlaylistResolveService) Source() string {
	return s.store.Document().PlaylistSource
}

func (s *PlaylistResolveService) Tracks() []string {
	result := make([]string, len(s.tracks))
	copy(result, s.tracks)
	return result
}

func (s *PlaylistResolveService) loadIgnore(dir string) (gitignore.GitIgnore, error) {
	path := filepath.Join(dir, IgnoreFile)
	if !s.fileRepository.IsFile(path) {
		return nil, nil
	}

	ignore, err := gitignore.NewFromFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", path)
	}
	return ignore, nil
}

func ignored(ignore gitignore.GitIgnore, path string) bool {
	if ignore == nil {
		return false
	}
	match := ignore.Relative(filepath.Base(path), false)
	return match != nil && match.Ignore()
}
