//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package document

import (
	"fmt"

	"github.com/t-kuni/openfit/domain/model/document"
)

// Repository はプログラムデータ文書の永続化を抽象化するインターフェースです。
type Repository interface {
	// Read はファイル全体を読み込みます。
	// ファイルが存在しない、読み込めない、または不正な場合は *ReadError を返します。
	Read(path string) (*document.Document, error)
	// Write は文書全体を上書きします。差分書き込みは行いません。
	Write(path string, doc *document.Document) error
}

// ReadError is returned when the document file is absent, unreadable or malformed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read program data %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
