package society

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/errors"
)

// Store persists the current-society selection independently of the
// session credentials. It survives token invalidation and is removed
// only on explicit logout.
type Store struct {
	path string
}

// NewStore creates a selection store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted selection; a missing file returns (nil, nil)
func (s *Store) Load() (*api.Society, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read society selection", err)
	}

	var soc api.Society
	if err := json.Unmarshal(data, &soc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileUnmarshal, "corrupt society selection file", err).
			WithSuggestion("Run 'societyctl society switch <id>' to select again")
	}
	if soc.ID == "" {
		return nil, nil
	}
	return &soc, nil
}

// Save persists the selection
func (s *Store) Save(soc *api.Society) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create home directory", err)
	}

	data, err := json.MarshalIndent(soc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to marshal society selection", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write society selection", err)
	}
	return nil
}

// Clear removes the persisted selection
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to remove society selection", err)
	}
	return nil
}
