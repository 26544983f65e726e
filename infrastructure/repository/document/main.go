package document

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/openfit/domain/model/document"
	domainDocument "github.com/t-kuni/openfit/domain/repository/document"
)

const indent = "    "

type DocumentRepository struct{}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

func (r *DocumentRepository) Read(path string) (*document.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &domainDocument.ReadError{Path: path, Err: err}
	}

	var doc document.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &domainDocument.ReadError{Path: path, Err: err}
	}

	return &doc, nil
}

// Write replaces the file with the whole document. The content goes to a
// temporary file in the same directory first and is then renamed over path.
func (r *DocumentRepository) Write(path string, doc *document.Document) error {
	content, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return eris.Wrap(err, "failed to marshal program data")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return eris.Wrapf(err, "failed to create directory: %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return eris.Wrap(err, "failed to create temporary file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return eris.Wrap(err, "failed to write temporary file")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "failed to close temporary file")
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return eris.Wrap(err, "failed to chmod temporary file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return eris.Wrapf(err, "failed to replace %s", path)
	}

	return nil
}
