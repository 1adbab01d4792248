package codec

import "os"

// Source reads codec files. The default reads from the local file system.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// OSSource reads files with os.ReadFile.
type OSSource struct{}

// ReadFile implements Source.
func (OSSource) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
