// Package archive reads the persisted historical booking data that
// supplements the live spreadsheet: one JSON file keyed by property name.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kervadec/gites-ledger/internal/ledger"
)

// Store is a read-only view over the archive file. The file is re-read on
// every Load so edits take effect without a restart; nothing in the core
// ever writes to it.
type Store struct {
	path string
}

// NewStore points a store at the archive file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads and decodes the whole archive. Rows longer than 9 cells are
// truncated by decoding, shorter ones padded with empty cells. Any failure
// is an *ledger.ArchiveError, fatal to the reconciliation that asked.
func (s *Store) Load(ctx context.Context) (map[string][]ledger.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ledger.ArchiveError{Path: s.path, Err: err}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &ledger.ArchiveError{Path: s.path, Err: err}
	}

	var byProperty map[string][]ledger.Row
	if err := json.Unmarshal(data, &byProperty); err != nil {
		return nil, &ledger.ArchiveError{Path: s.path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	return byProperty, nil
}
