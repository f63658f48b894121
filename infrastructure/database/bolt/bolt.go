// Package bolt abre o arquivo BoltDB usado como armazenamento chave-valor do histórico
package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const openTimeout = time.Second

// NewConnection abre (ou cria) o arquivo em path. Só um processo pode mantê-lo aberto.
func NewConnection(path string) (*bolt.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do banco: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir bolt em %s: %w", path, err)
	}

	return db, nil
}
