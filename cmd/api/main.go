package main

import (
	"fmt"
	"os"

	"pet-adoption-backend/internal/config"
	"pet-adoption-backend/internal/infrastructure/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand shares; filled by the root PersistentPreRunE.
type app struct {
	envFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "petadopt",
		Short:         "Pet adoption backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if a.envFile != "" {
				files = append(files, a.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			a.cfg = cfg
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			log, err := logging.New(a.cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load environment from this file (default: .env if present)")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newSeedCmd(a),
		newAdminCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
