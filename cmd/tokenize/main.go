package main

import (
	"errors"
	"fmt"
	"os"

	"phrasekit/internal/config"
	"phrasekit/internal/logging"
	"phrasekit/internal/tokenize"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the flag values and the state resolved before RunE.
type options struct {
	// Global flags
	verbose    bool
	configPath string

	// Command flags
	phrase string
	format string
	prompt string

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the tokenize command
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "tokenize a phrase",
		Long: `Splits a phrase on white space and prints the resulting tokens.

When --phrase is omitted the phrase is read from an interactive prompt.

Example:
  tokenize --phrase "hello world"
  tokenized phrase: ["hello", "world"]`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Config file")

	cmd.Flags().StringVarP(&opts.phrase, "phrase", "p", "", "Phrase to tokenize (prompted when omitted)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: text, json, yaml (default from config)")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "Prompt label used when --phrase is omitted")

	return cmd
}

// resolve loads config, applies flag overrides and builds the logger.
func (o *options) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = o.format
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = o.prompt
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.cfg = cfg

	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger

	logging.Get(logger, logging.CategoryBoot).Debug("Configuration resolved",
		zap.String("config", o.configPath),
		zap.String("format", cfg.Output.Format))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted!")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// runTokenize reads the phrase, splits it and prints the result.
func runTokenize(cmd *cobra.Command, opts *options) error {
	cmd.SilenceUsage = true
	log := logging.Get(opts.logger, logging.CategoryTokenize)

	phrase := opts.phrase
	if !cmd.Flags().Changed("phrase") {
		var err error
		phrase, err = promptPhrase(cmd.InOrStdin(), cmd.OutOrStdout(), opts.cfg.Prompt,
			logging.Get(opts.logger, logging.CategoryPrompt))
		if err != nil {
			return err
		}
	}

	res := tokenize.Tokenize(phrase)
	log.Debug("Phrase tokenized", zap.Int("tokens", len(res.Tokens)))

	out, err := tokenize.Render(res, opts.cfg.Output.Format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
