package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// matchCmd reconciles one order against the order-management API.
var matchCmd = &cobra.Command{
	Use:   "match <num-order-id>",
	Short: "Reconcile one order against the order-management API",
	Long: `Fetches the order document for the given external numeric id and
reconciles it against the local store. On a full SKU match the stored
order is updated with the marketplace identity; a mismatch marks it.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	svc, logg, err := buildService()
	if err != nil {
		return err
	}
	defer logg.Sync()

	outcome, err := svc.Match(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("match order %s: %w", args[0], err)
	}

	logg.Info("Reconciliation finished",
		zap.String("order_id", args[0]),
		zap.String("result", string(outcome.Result)),
		zap.String("extractor", outcome.Extractor),
		zap.String("marketplace", outcome.Marketplace),
	)
	return nil
}
