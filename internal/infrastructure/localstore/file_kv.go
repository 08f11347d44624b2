package localstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileKV guarda cada clave como <dir>/<key>.json. La escritura va a un archivo
// temporal en el mismo directorio y luego se renombra.
type FileKV struct {
	dir string
}

var _ KV = (*FileKV)(nil)

// NewFileKV crea el directorio si no existe.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (s *FileKV) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("localstore: clave inválida %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get lee el documento; ErrKeyNotFound si no existe.
func (s *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	return b, nil
}

// Put reemplaza el documento de forma atómica.
func (s *FileKV) Put(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("localstore: temporal %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op tras el rename

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("localstore: sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("localstore: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("localstore: reemplazar %s: %w", key, err)
	}
	return nil
}
