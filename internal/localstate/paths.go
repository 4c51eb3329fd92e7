// Package localstate resolves where the service keeps its on-disk state.
package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome    = "FINWISE_STATE_HOME" // override for tests
	dirName    = ".finwise"           // default under $HOME
	dbFilename = "finwise.db"
)

// DataDir returns the directory where local state is stored (~/.finwise).
// It creates the directory with 0700 permissions if it does not exist.
func DataDir() (string, error) {
	if custom := os.Getenv(envHome); custom != "" {
		if err := os.MkdirAll(custom, 0o700); err != nil {
			return "", err
		}
		return custom, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the full path of the SQLite database file.
func DBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}
