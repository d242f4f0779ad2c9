package cmd

import (
	"fmt"

	"storage-assistant/core/config"
	"storage-assistant/core/logger"
	"storage-assistant/core/storage"
	"storage-assistant/feature/assistant"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketsCmd lists buckets or the objects of one bucket without involving
// the language model. Useful for verifying storage credentials.
var bucketsCmd = &cobra.Command{
	Use:   "buckets [bucket-name]",
	Short: "List buckets or the objects of a bucket",
	Long: `Lists all buckets of the account, or the objects of the given bucket
with human-readable sizes. Talks to storage directly, without the model.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		manager := assistant.NewBucketManager(store, logg)

		if len(args) == 1 {
			exists, err := manager.BucketExists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("bucket %s does not exist", args[0])
			}
			objects, err := manager.ListObjects(cmd.Context(), args[0], assistant.DefaultMaxKeys)
			if err != nil {
				return err
			}
			fmt.Println(assistant.FormatObjects(args[0], objects))
			return nil
		}

		buckets, err := manager.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(assistant.FormatBuckets(buckets))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bucketsCmd)
}
