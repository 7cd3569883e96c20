package cmd

import (
	"fmt"

	"type-extractor/core/database"
	"type-extractor/core/metrics"
	"type-extractor/feature/cache"
	"type-extractor/feature/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cacheClientPath string
	cacheDatabase   string
	cacheOutput     string
	cachePublish    bool
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Build the name index from an installed game client",
	Long: `Reads the type table shipped with an installed game client and writes a map
from lowercased type name to its type id, group id and name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, logg, err := bootstrap("cache")
		if err != nil {
			return err
		}
		timer := metrics.NewTimer()
		defer func() { finish(cfg, logg, "cache", timer, err) }()

		flags := cmd.Flags()
		if flags.Changed("client-path") {
			cfg.Cache.ClientPath = cacheClientPath
		}
		if flags.Changed("database") {
			cfg.Cache.Database = cacheDatabase
		}
		if flags.Changed("output") {
			cfg.Cache.Output = cacheOutput
		}

		var src types.TypeSource
		if cfg.Cache.Database != "" {
			db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: cfg.Cache.Database, ReadOnly: true})
			if err != nil {
				return fmt.Errorf("%w: %w", types.ErrSourceUnavailable, err)
			}
			defer database.Close(db)
			src = types.NewDBSource(db)
			logg.Info("Reading types from snapshot", zap.String("path", cfg.Cache.Database))
		} else {
			store, err := cache.NewClientStore(cfg.Cache.Path(), cfg.Cache.TypesFile)
			if err != nil {
				return err
			}
			src = store
			logg.Info("Reading types from client", zap.String("client_path", cfg.Cache.Path()))
		}

		summary, err := cache.NewService(cfg.Cache, src, logg).Run(cmd.Context())
		if err != nil {
			return err
		}
		logg.Info("Name index written", zap.String("output", summary.Output), zap.Int("names", summary.Names))

		if cachePublish || cfg.Storage.Enabled {
			return publish(cmd.Context(), cfg.Storage, summary.Output, logg)
		}
		return nil
	},
}

func init() {
	cacheCmd.Flags().StringVar(&cacheClientPath, "client-path", "", "Game client installation (default depends on the platform)")
	cacheCmd.Flags().StringVar(&cacheDatabase, "database", "", "Read names from a sqlite snapshot instead of the client")
	cacheCmd.Flags().StringVarP(&cacheOutput, "output", "o", "", "Output file (default from config)")
	cacheCmd.Flags().BoolVar(&cachePublish, "publish", false, "Upload the output to object storage")
	RootCmd.AddCommand(cacheCmd)
}
