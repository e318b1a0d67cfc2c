// Package storage provides the filesystem backing for saved reports. Paths
// given to a Store are always relative to its base directory.
package storage

import "context"

type Store interface {
	Save(ctx context.Context, path string, data []byte) error
	Load(ctx context.Context, path string) ([]byte, error)
	List(ctx context.Context, pattern string) ([]string, error)
}
