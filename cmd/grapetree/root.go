package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile    string
	verbose    bool
	logger     *zap.Logger
	viperCfg   = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "grapetree",
	Short: "Phylogenetic tree inference over allelic or sequence profiles",
	Long: `grapetree computes a distance matrix over cgMLST/MLST allelic
profiles or aligned sequences, builds a spanning tree (classical MST or a
directed minimum arborescence), and renders it as Newick.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func bootstrap(cmd *cobra.Command, args []string) error {
	initConfig()

	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true

	var err error
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("grapetree: building logger: %w", err)
	}

	return nil
}

func initConfig() {
	viperCfg.SetEnvPrefix("GRAPETREE")
	viperCfg.AutomaticEnv()

	viperCfg.SetDefault("missing_handler", 0)
	viperCfg.SetDefault("heuristic", "eBurst")
	viperCfg.SetDefault("matrix_type", "symmetric")

	if cfgFile != "" {
		viperCfg.SetConfigFile(cfgFile)
		// The config file is loaded best-effort: a missing or unreadable
		// file is ignored and values fall back to defaults/flags.
		_ = viperCfg.ReadInConfig()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (defaults unless set)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(distanceCmd)
}
