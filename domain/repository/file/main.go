//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

type Repository interface {
	Append(path string, data []byte) error
	Exists(path string) bool
	IsFile(path string) bool
	// List returns the full paths of the immediate entries of dir, without recursing.
	List(dir string) ([]string, error)
}
