package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// The durable session state is a single key: one file holding the
// principal as JSON. Written on login, removed on logout, read once at
// startup.

func loadPrincipal(file string) (*Principal, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var p Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func savePrincipal(file string, p Principal) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(file, raw, 0o600)
}

func removePrincipal(file string) error {
	err := os.Remove(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
