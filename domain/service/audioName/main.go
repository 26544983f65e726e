package audioName

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/t-kuni/openfit/domain/external/audioTag"
)

type AudioNameService struct {
	tagReader audioTag.Reader
}

func NewAudioNameService(tagReader audioTag.Reader) *AudioNameService {
	return &AudioNameService{
		tagReader: tagReader,
	}
}

// Label returns "{title} - {artist}" for tagged tracks and the file name
// otherwise, followed by the track length as " (mm:ss)" when it is known.
// Tag read failures fall back to the file name.
func (s *AudioNameService) Label(path string) string {
	m, err := s.tagReader.Read(path)
	if err != nil {
		return filepath.Base(path)
	}

	name := displayName(path, m)
	if m.DurationSeconds <= 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, FormatDuration(m.DurationSeconds))
}

// FormatDuration formats seconds as mm:ss. Minutes are not wrapped into
// hours.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func displayName(path string, m audioTag.Metadata) string {
	title := strings.TrimSpace(m.Title)
	artist := strings.TrimSpace(m.Artist)
	if title == "" || artist == "" {
		return filepath.Base(path)
	}
	return fmt.Sprintf("%s - %s", title, artist)
}
