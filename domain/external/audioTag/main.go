//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package audioTag

// Reader は音声ファイルのタグ情報の読み込みを抽象化するインターフェースです。
type Reader interface {
	// Read はファイルのタグを読み込みます。
	// タグが存在しない場合は空のタグを返し、ファイルを読み込めない場合はエラーを返します。
	Read(path string) (Metadata, error)
}

// Metadata holds the tags of one track. Empty strings mean the tag is absent
// and a zero DurationSeconds means the length is unknown.
type Metadata struct {
	Title           string
	Artist          string
	Album           string
	DurationSeconds int
}
