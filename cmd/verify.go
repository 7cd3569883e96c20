package cmd

import (
	"encoding/json"
	"fmt"

	"type-extractor/core/metrics"
	"type-extractor/core/storage"
	"type-extractor/feature/verify"

	"github.com/spf13/cobra"
)

var verifyFromStorage bool

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Check a dump output file",
	Long: `Checks that every typeID is unique and that components are non-empty, only
present on allow-listed groups and keyed by their parent type. Prints the report as
JSON and fails when any violation is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, logg, err := bootstrap("verify")
		if err != nil {
			return err
		}
		timer := metrics.NewTimer()
		defer func() { finish(cfg, logg, "verify", timer, err) }()

		svc := verify.NewService(cfg.Dump.ComponentGroups, logg)

		var report *verify.Report
		if verifyFromStorage {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			report, err = svc.VerifyObject(cmd.Context(), client, cfg.Storage.Bucket, cfg.Storage.ObjectName)
			if err != nil {
				return err
			}
		} else {
			path := cfg.Dump.Output
			if len(args) == 1 {
				path = args[0]
			}
			report, err = svc.VerifyFile(path)
			if err != nil {
				return err
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}

		if !report.Matched {
			return fmt.Errorf("%s has %d violations", report.Source, report.ViolationCount)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyFromStorage, "from-storage", false, "Verify the published copy instead of a local file")
	RootCmd.AddCommand(verifyCmd)
}
