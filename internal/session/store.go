package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/errors"
)

// Credentials is the persisted session: token and user are written together
// on login and removed together on teardown, never one without the other.
type Credentials struct {
	AccessToken string   `json:"access_token"`
	User        api.User `json:"user"`
}

// Store persists session credentials to a JSON file. It also implements
// api.TokenSource by reading the file fresh on every call, so a rotation
// on disk is picked up by the next request.
type Store struct {
	path string
}

// NewStore creates a credential store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted credentials. A missing file means no session
// and returns (nil, nil).
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read credentials", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAuthStoreCorrupt, "corrupt credentials file", err).
			WithSuggestion("Run 'societyctl auth logout' to reset and login again")
	}
	if creds.AccessToken == "" {
		return nil, nil
	}
	return &creds, nil
}

// Save persists the credentials with owner-only permissions
func (s *Store) Save(creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create home directory", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to marshal credentials", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write credentials", err)
	}
	return nil
}

// Clear removes the persisted credentials. Clearing an absent file is fine.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to remove credentials", err)
	}
	return nil
}

// Token implements api.TokenSource. Read errors surface as an empty token;
// the backend then rejects the call and the normal 401 path runs.
func (s *Store) Token() string {
	creds, err := s.Load()
	if err != nil || creds == nil {
		return ""
	}
	return creds.AccessToken
}
