package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupSnapshot(t *testing.T, content string) (*Manager, string) {
	t.Helper()
	snapshotPath := filepath.Join(t.TempDir(), "trackly.json")
	if err := os.WriteFile(snapshotPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return NewManager(snapshotPath), snapshotPath
}

func TestCreateBackup(t *testing.T) {
	mgr, _ := setupSnapshot(t, `{"version": 1}`)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version": 1}` {
		t.Errorf("backup content mismatch: %q", data)
	}

	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, "trackly-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup filename %q", name)
	}
}

func TestCreateBackupMissingSnapshot(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "trackly.json"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when snapshot does not exist")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	mgr, _ := setupSnapshot(t, `{"version": 1}`)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create first backup: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create second backup: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct backup paths, both %q", first)
	}
}

func TestListBackups(t *testing.T) {
	mgr, _ := setupSnapshot(t, `{"version": 1}`)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	mgr, _ := setupSnapshot(t, `{"version": 1}`)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	foreign := filepath.Join(mgr.GetBackupDir(), "notes.txt")
	if err := os.WriteFile(foreign, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write foreign file: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected foreign files to be ignored, got %d backups", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	mgr, snapshotPath := setupSnapshot(t, `{"version": 1, "habits": []}`)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Mutate the live snapshot, then restore the earlier state
	if err := os.WriteFile(snapshotPath, []byte(`{"version": 1, "habits": ["changed"]}`), 0600); err != nil {
		t.Fatalf("failed to modify snapshot: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("failed to restore backup: %v", err)
	}

	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		t.Fatalf("failed to read restored snapshot: %v", err)
	}
	if string(data) != `{"version": 1, "habits": []}` {
		t.Errorf("restore content mismatch: %q", data)
	}

	// The pre-restore state must itself have been backed up
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety backup before restore, got %d backups", len(backups))
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	mgr, _ := setupSnapshot(t, `{"version": 1}`)

	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "trackly-20260101-0000.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

func TestManagerSuffixFollowsSnapshot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trackly.db")
	if err := os.WriteFile(dbPath, []byte("sqlite"), 0600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".db") {
		t.Errorf("expected .db backup suffix, got %q", backupPath)
	}
}
