package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Keystone/internal/config"
	"Keystone/internal/engine"
	"Keystone/internal/logging"
)

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	envFile  string
	logLevel string

	cfg    config.Config
	log    *zap.Logger
	engine *engine.Engine
}

func (a *app) setup() error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	log, err := logging.New(level)
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg.Limits, log)
	if err != nil {
		_ = log.Sync()
		return err
	}
	a.cfg, a.log, a.engine = cfg, log, eng
	return nil
}

func (a *app) close() {
	if a.log != nil {
		logging.Sync(a.log)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "keystone",
		Short: "Structural engineering calculations",
		Long: `keystone - structural and civil engineering calculation engine

Runs beam, column, foundation, pile, concrete, slab, steel and load
calculations to Eurocode / BS EN with Malaysian (MS, UBBL) tables, and
checks the results for code compliance.

Requests are YAML or JSON documents; batches are read from .xlsx sheets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with KEYSTONE_* settings")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides KEYSTONE_LOG_LEVEL")
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newCalcCmd(a))
	cmd.AddCommand(newBatchCmd(a))
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
