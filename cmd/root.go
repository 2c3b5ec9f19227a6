package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/petroweb/internal/config"
	"github.com/Bitlatte/petroweb/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "petroweb",
	Short: "petroweb - corporate website engine for oil & gas services",
	Long: `petroweb renders the company website (home, about, services, blog,
careers and contact) from its content catalog. It can build the site to
static HTML or serve it directly with live reload.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, found, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logger, err = logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}
	if found {
		logger.Debug("using config file", zap.String("file", configFileName()))
	} else {
		logger.Debug("no config file found, using defaults and environment")
	}
	return nil
}

func configFileName() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "config.yaml"
}
