package documentStore

import (
	"errors"
	"log/slog"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/openfit/domain/model/document"
	documentRepo "github.com/t-kuni/openfit/domain/repository/document"
)

// DocumentStore holds the program data in memory for the lifetime of the
// process and writes the whole document back on every Flush.
// It is not safe for concurrent use.
type DocumentStore struct {
	repo            documentRepo.Repository
	log             *slog.Logger
	defaultMusicDir string

	path    string
	doc     *document.Document
	created bool
}

func NewDocumentStore(repo documentRepo.Repository, log *slog.Logger, defaultMusicDir string) *DocumentStore {
	return &DocumentStore{
		repo:            repo,
		log:             log,
		defaultMusicDir: defaultMusicDir,
	}
}

// Open loads the document at path. When it cannot be read the default
// document is written there instead and becomes the loaded one.
func (s *DocumentStore) Open(path string) error {
	s.path = path

	doc, err := s.repo.Read(path)
	if err == nil {
		s.doc = doc
		s.log.Debug("program data loaded", "path", path, "exercises", len(doc.Exercises))
		return nil
	}

	var readErr *documentRepo.ReadError
	if !errors.As(err, &readErr) {
		return eris.Wrap(err, "failed to load program data")
	}

	s.log.Warn("program data unavailable, writing defaults", "path", path, "error", readErr.Err)
	if err := s.Write(nil); err != nil {
		return err
	}
	s.doc = document.NewDefault(s.defaultMusicDir)
	s.created = true
	return nil
}

func (s *DocumentStore) Path() string {
	return s.path
}

// Created reports whether Open had to write the default document.
func (s *DocumentStore) Created() bool {
	return s.created
}

// Document returns the live in-memory document. Callers outside the
// domain services must not keep or mutate it.
func (s *DocumentStore) Document() *document.Document {
	if s.doc == nil {
		s.doc = document.NewDefault(s.defaultMusicDir)
	}
	return s.doc
}

// Write writes doc to the store path. A nil doc means the loaded document,
// or the default document when nothing has been loaded yet.
func (s *DocumentStore) Write(doc *document.Document) error {
	if doc == nil {
		doc = s.doc
	}
	if doc == nil {
		doc = document.NewDefault(s.defaultMusicDir)
	}

	if err := s.repo.Write(s.path, doc); err != nil {
		return eris.Wrapf(err, "failed to write program data: %s", s.path)
	}
	s.log.Debug("program data written", "path", s.path)
	return nil
}

func (s *DocumentStore) Flush() error {
	return s.Write(s.Document())
}

func (s *DocumentStore) AssistantModel() string {
	return s.Document().Assistant.Model
}

func (s *DocumentStore) SetAssistantModel(model string) error {
	s.Document().Assistant.Model = model
	return s.Flush()
}

func (s *DocumentStore) Token() string {
	return s.Document().Assistant.Token
}
