package cli

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/trackly/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}

	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n\n", mgr.GetBackupDir())
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n",
			filepath.Base(b.Path), b.Timestamp.Format("2006-01-02 15:04"), b.Size)
	}

	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup filename to restore (see 'trackly backup list')."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	for _, b := range backups {
		if filepath.Base(b.Path) == c.Name {
			if err := mgr.RestoreBackup(b.Path); err != nil {
				return err
			}
			fmt.Printf("Restored snapshot from %s\n", c.Name)
			return nil
		}
	}

	return fmt.Errorf("backup %q not found", c.Name)
}
