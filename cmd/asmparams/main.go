package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbaseapps/assembly-params/internal/config"
	"github.com/kbaseapps/assembly-params/internal/estimate"
	"github.com/kbaseapps/assembly-params/internal/logger"
	"github.com/kbaseapps/assembly-params/internal/rpcclient"
)

type cliError struct {
	code int
	err  error
}

func (e cliError) Error() string { return e.err.Error() }

func (e cliError) Unwrap() error { return e.err }

func main() {
	root := newRootCommand()
	err := root.Execute()
	_ = logger.Sync()
	if err != nil {
		var ce cliError
		if errors.As(err, &ce) {
			fmt.Fprintln(os.Stderr, ce.err)
			os.Exit(ce.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions are bound to the root persistent flags.
type globalOptions struct {
	configPath string
	debug      bool
	logFormat  string
}

var globals globalOptions

// Swapped out in tests.
var (
	newServiceClientFunc = newServiceClient
	newObjectSourceFunc  = newObjectSource
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "asmparams",
		Short:         "Inspect, check and submit genome assembler parameter records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadSettings()
			if err != nil {
				return err
			}
			return logger.Init(logger.Config{Debug: cfg.Log.Debug, Format: cfg.Log.Format, File: cfg.Log.File})
		},
	}
	root.PersistentFlags().StringVar(&globals.configPath, "config", "", "config file (default ./asmparams.yaml if present)")
	root.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&globals.logFormat, "log-format", "", "log format: human or json")

	root.AddCommand(newTypesCommand())
	root.AddCommand(newRoundtripCommand())
	root.AddCommand(newDescribeCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newDigestCommand())
	root.AddCommand(newEstimateCommand())
	root.AddCommand(newDatasetCommand())
	root.AddCommand(newSubmitCommand())
	return root
}

// loadSettings reads the config and applies global flag overrides.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(globals.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if globals.debug {
		cfg.Log.Debug = true
	}
	if globals.logFormat != "" {
		cfg.Log.Format = globals.logFormat
	}
	return cfg, nil
}

func newServiceClient(cfg config.Config) (*rpcclient.Client, error) {
	return rpcclient.New(cfg.ServiceURL, cfg.Token(), rpcclient.WithTimeout(cfg.Timeout))
}

func newObjectSource(cfg config.Config) (estimate.ObjectInfoSource, error) {
	c, err := rpcclient.New(cfg.WorkspaceURL, cfg.Token(), rpcclient.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	return rpcclient.NewCachedSource(rpcclient.NewWorkspace(c), cfg.CacheTTL), nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--in is required")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return raw, nil
}
