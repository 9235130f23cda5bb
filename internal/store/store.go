// Package store содержит абстракцию постоянного key-value хранилища и её реализации:
// в памяти, в Redis и в PostgreSQL.
package store

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, если ключ отсутствует в хранилище
var ErrNotFound = errors.New("store: key not found")

// KeyValueStore определяет контракт долговременного хранилища
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key собирает ключ с учетом префикса
func Key(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + ":" + name
}
