package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetAPIKey(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	if err := SetAPIKey("test-api-key"); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}

	key, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey() failed: %v", err)
	}
	if key != "test-api-key" {
		t.Errorf("GetAPIKey() = %q, want %q", key, "test-api-key")
	}
}

func TestSetAPIKeyEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey(""); err == nil {
		t.Error("SetAPIKey(\"\") should return an error")
	}
}

func TestGetAPIKeyNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteAPIKey()

	_, err := GetAPIKey()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAPIKey() error = %v, want %v", err, ErrNotFound)
	}
}

func TestGetAPIKeyEnvFallback(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteAPIKey()

	t.Setenv("TRACKLY_API_KEY", "env-key")

	key, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey() failed: %v", err)
	}
	if key != "env-key" {
		t.Errorf("GetAPIKey() = %q, want %q", key, "env-key")
	}
}

func TestGetAPIKeyKeyringWinsOverEnv(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("keyring-key"); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}
	t.Setenv("TRACKLY_API_KEY", "env-key")

	key, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey() failed: %v", err)
	}
	if key != "keyring-key" {
		t.Errorf("GetAPIKey() = %q, want %q", key, "keyring-key")
	}
}

func TestDeleteAPIKey(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("test-api-key"); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}
	if err := DeleteAPIKey(); err != nil {
		t.Fatalf("DeleteAPIKey() failed: %v", err)
	}
	if err := DeleteAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteAPIKey() on empty keyring = %v, want %v", err, ErrNotFound)
	}
}
