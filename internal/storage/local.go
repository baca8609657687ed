package storage

import "os"

// Local stores the ignore file on the local filesystem.
type Local struct {
	Path string
}

func NewLocal(path string) *Local {
	return &Local{Path: path}
}

func (l *Local) Read() ([]byte, error) {
	return os.ReadFile(l.Path)
}

func (l *Local) Write(data []byte) error {
	return os.WriteFile(l.Path, data, 0644)
}

func (l *Local) Location() string {
	return l.Path
}

func (l *Local) Close() error {
	return nil
}
