package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/trackly/internal/constants"
)

var (
	// ErrNotFound is returned when no API key is found in the keyring
	ErrNotFound = errors.New("API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the insight generator API key. The OS keyring is
// checked first, then the TRACKLY_API_KEY and GEMINI_API_KEY environment
// variables as a fallback for headless setups.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err == nil {
		return key, nil
	}

	if env := os.Getenv("TRACKLY_API_KEY"); env != "" {
		return env, nil
	}
	if env := os.Getenv("GEMINI_API_KEY"); env != "" {
		return env, nil
	}

	if err == keyring.ErrNotFound {
		return "", ErrNotFound
	}
	return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
}

// SetAPIKey stores the API key in the OS keyring
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the API key from the OS keyring
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}
