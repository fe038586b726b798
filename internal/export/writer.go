package export

import (
	"io"
	"os"
	"path/filepath"
)

// FileWriter persists a named artifact.
type FileWriter interface {
	WriteFile(name string, data []byte) error
}

// DirWriter writes artifacts into Dir, creating it when needed.
type DirWriter struct {
	Dir string
}

func (d DirWriter) WriteFile(name string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.Dir, name), data, 0644)
}

// StreamWriter writes artifact bytes to W and ignores the name.
type StreamWriter struct {
	W io.Writer
}

func (s StreamWriter) WriteFile(_ string, data []byte) error {
	_, err := s.W.Write(data)
	return err
}
