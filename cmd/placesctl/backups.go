package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dimitrije/places-api/internal/logging"
	"github.com/dimitrije/places-api/internal/services"
	"github.com/dimitrije/places-api/internal/storage"
)

func backupManager() *storage.BackupManager {
	return storage.NewBackupManager(
		filepath.Join(dataDir, "places.json"),
		filepath.Join(dataDir, "backup"),
		logging.New("placesctl", os.Getenv("ENV")),
	)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Inspect and manage datastore snapshots",
}

var backupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		backups, err := backupManager().List()
		if err != nil {
			fail(err)
		}
		if len(backups) == 0 {
			fmt.Println("no backups")
			return
		}
		for _, b := range backups {
			fmt.Printf("%s  %8s  %s\n",
				b.CreatedAt.Format("2006-01-02 15:04:05"),
				services.FormatFileSize(b.Size),
				b.Filename)
		}
	},
}

var backupsShowCmd = &cobra.Command{
	Use:   "show <filename>",
	Short: "Print a snapshot's document as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := backupManager().Content(args[0])
		if err != nil {
			fail(err)
		}
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fail(err)
		}
		fmt.Println(string(out))
	},
}

var backupsCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete snapshots older than the retention window",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deleted, err := backupManager().Cleanup()
		if err != nil {
			fail(err)
		}
		fmt.Printf("deleted %d old backups\n", deleted)
	},
}

var backupsRestoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Replace the live document with a snapshot (the current state is snapshotted first)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := backupManager().Restore(args[0])
		if err != nil {
			fail(err)
		}
		fmt.Printf("restored %s (%d places)\n", args[0], len(doc.Places))
	},
}

var backupsDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete one snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := backupManager().Delete(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("deleted %s\n", args[0])
	},
}

func init() {
	backupsCmd.AddCommand(backupsListCmd)
	backupsCmd.AddCommand(backupsShowCmd)
	backupsCmd.AddCommand(backupsCleanupCmd)
	backupsCmd.AddCommand(backupsRestoreCmd)
	backupsCmd.AddCommand(backupsDeleteCmd)
	rootCmd.AddCommand(backupsCmd)
}
