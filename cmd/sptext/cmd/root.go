// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration and logger setup
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/sptext/foundation/core/config"
	mdwerror "github.com/msto63/sptext/foundation/core/error"
	sperrors "github.com/msto63/sptext/foundation/core/errors"
	mdwlog "github.com/msto63/sptext/foundation/core/log"
	"github.com/msto63/sptext/foundation/sptext"
	"github.com/msto63/sptext/internal/textio"
)

// configRules validates the keys the CLI reads
var configRules = config.ValidationRules{
	"log.level":          {Type: "string", Values: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
	"log.format":         {Type: "string", Values: []string{"json", "text", "console", "logfmt"}},
	"output.format":      {Type: "string", Values: textio.OutputFormats},
	"input.typed":        {Type: "bool"},
	"input.null_token":   {Type: "string"},
	"playground.history": {Type: "int"},
}

// rootOptions carries the persistent flags and what PersistentPreRunE
// builds from them
type rootOptions struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sptext",
		Short: "sptext - text utility dispatcher",
		Long: `sptext calls small text utilities by name.

Methods:
  isEmpty  - true for absent values and empty strings
  ifEmpty  - fallback for empty values
  trim     - strip a delimiter (default whitespace) from both ends
  ltrim    - strip a delimiter from the start
  rtrim    - strip a delimiter from the end
  concat   - join the non-empty values with glue`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./sptext.toml or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: json, text, console, logfmt")

	rootCmd.AddCommand(
		newCallCommand(opts),
		newMethodsCommand(opts),
		newPlaygroundCommand(opts),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the command line tool against os.Args
func Execute() error {
	rootCmd := NewRootCommand()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *mdwerror.Error
	if !errors.As(err, &e) {
		return 1
	}
	return e.Code().ExitCode()
}

func (o *rootOptions) setup(stderr io.Writer) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if result := cfg.Validate(configRules); !result.Valid {
		return mdwerror.Wrap(result.Err(), "invalid configuration").
			WithCode(mdwerror.CodeInvalidConfig)
	}
	o.cfg = cfg

	level, err := mdwlog.ParseLevel(cfg.GetString("log.level", "warn"))
	if err != nil {
		return err
	}
	if o.verbose {
		level = mdwlog.LevelDebug
	}

	formatName := o.logFormat
	if formatName == "" {
		formatName = cfg.GetString("log.format", "console")
	}
	format, err := mdwlog.ParseFormat(formatName)
	if err != nil {
		return err
	}

	o.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: stderr,
		Name:   "sptext",
	}).WithCorrelationID(uuid.NewString())
	mdwlog.SetDefault(o.logger)

	o.logger.Debug("configuration loaded", mdwlog.Fields{
		"configFile": cfg.FilePath(),
	})
	return nil
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgFile != "" {
		return config.LoadWithOptions(o.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.DefaultEnvPrefix,
		})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if sperrors.IsUnknownMethod(err) {
		fmt.Fprintf(w, "Available methods: %s\n", strings.Join(sptext.Names(), ", "))
	}
}
