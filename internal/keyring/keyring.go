// Package keyring holds the PostgreSQL connection string in the OS keyring.
// The default SQLite store never touches this; it only matters once a user
// points goaltrack at a shared database and needs the credentials kept out of
// flags, dotfiles, and shell history.
package keyring

import (
	"errors"
	"fmt"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Entries live under the app name with a fixed account label, so there is at
// most one stored connection string per machine user.

// GetConnectionString reads the stored connection string. ErrNotFound means
// nothing is stored; any other failure means the keyring itself is broken.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores the connection string, replacing any previous one.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// IsAvailable reports whether the OS keyring can be reached. Best effort: a
// probe read that fails with anything other than not-found means unavailable.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || err == keyring.ErrNotFound
}

// DeleteConnectionString removes the stored connection string. Deleting when
// nothing is stored reports ErrNotFound so callers can phrase the message.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}
