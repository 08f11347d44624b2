// Package localstore persiste el perfil del consultor y el historial de
// propuestas como documentos JSON en un almacén clave-valor (archivos locales o redis).
package localstore

import (
	"context"
	"errors"
	"regexp"
)

// ErrKeyNotFound la clave no tiene documento guardado.
var ErrKeyNotFound = errors.New("localstore: clave inexistente")

// KV almacén de documentos por clave. Put reemplaza el documento completo.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
