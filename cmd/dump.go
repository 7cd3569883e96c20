package cmd

import (
	"type-extractor/core/download"
	"type-extractor/core/metrics"
	"type-extractor/feature/types"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dumpSource   string
	dumpDatabase string
	dumpOutput   string
	dumpPublish  bool
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Build the type list from the static data snapshot",
	Long: `Downloads the compressed sqlite static data snapshot, decompresses it on the fly,
and writes every type with its volume, market flag and, for capital hulls, its build
materials. Use --database to reuse a snapshot on disk or --source=mysql to read a
MySQL import instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, logg, err := bootstrap("dump")
		if err != nil {
			return err
		}
		timer := metrics.NewTimer()
		defer func() { finish(cfg, logg, "dump", timer, err) }()

		flags := cmd.Flags()
		if flags.Changed("database") {
			cfg.Dump.Database = dumpDatabase
			if !flags.Changed("source") {
				cfg.Dump.Source = types.SourceSQLite
			}
		}
		if flags.Changed("source") {
			cfg.Dump.Source = dumpSource
		}
		if flags.Changed("output") {
			cfg.Dump.Output = dumpOutput
		}

		fetcher := download.NewDownloader(cfg.Download, logg)
		summary, err := types.NewService(cfg.Dump, cfg.Database, fetcher, logg).Run(cmd.Context())
		if err != nil {
			return err
		}

		fields := []zap.Field{
			zap.String("output", summary.Output),
			zap.Int("types", summary.Stats.Types),
			zap.Int("with_components", summary.Stats.WithComponents),
		}
		if summary.Download != nil {
			fields = append(fields, zap.String("snapshot_size", humanize.Bytes(uint64(summary.Download.Decompressed))))
		}
		logg.Info("Types written", fields...)

		if dumpPublish || cfg.Storage.Enabled {
			return publish(cmd.Context(), cfg.Storage, summary.Output, logg)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpSource, "source", types.SourceDownload, "Where rows come from: download, sqlite or mysql")
	dumpCmd.Flags().StringVar(&dumpDatabase, "database", "", "Existing sqlite snapshot to read instead of downloading")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Output file (default from config)")
	dumpCmd.Flags().BoolVar(&dumpPublish, "publish", false, "Upload the output to object storage")
	RootCmd.AddCommand(dumpCmd)
}
