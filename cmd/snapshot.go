package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listSnapshots bool

// snapshotCmd exports the local store to object storage.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export the local order store as a JSON snapshot",
	Long: `Serializes every order in the local store to JSON and uploads the
document to the snapshot bucket. Use --list to list existing snapshots
instead of creating a new one.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().BoolVar(&listSnapshots, "list", false, "List existing snapshots instead of exporting")
	RootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	svc, logg, err := buildService()
	if err != nil {
		return err
	}
	defer logg.Sync()

	ctx := context.Background()

	if listSnapshots {
		names, err := svc.ListSnapshots(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			cmd.Println(name)
		}
		return nil
	}

	object, err := svc.Snapshot(ctx)
	if err != nil {
		return err
	}

	logg.Info("Snapshot exported", zap.String("object", object))
	return nil
}
