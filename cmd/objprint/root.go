package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/bjaus/objprint"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type options struct {
	rules    string
	maxDepth int
	indent   string
	locale   string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		logger *zap.Logger
	)
	cmd := &cobra.Command{
		Use:   "objprint [file]",
		Short: "Render a YAML or JSON document as indented debug text",
		Long: `objprint reads one YAML or JSON document from a file, or from stdin when
no file is given, and prints it the way the objprint library renders Go
values: one "key = value" line per map entry, nested values indented.

Rules files use the objprint YAML rules format. Documents decode to maps,
slices and scalars only, so member rules never match; locales and the
max_depth and indent settings apply.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.rules, "rules", "", "YAML rules file")
	flags.IntVar(&opts.maxDepth, "max-depth", objprint.DefaultMaxDepth, "nested levels rendered before the depth sentinel")
	flags.StringVar(&opts.indent, "indent", objprint.DefaultIndent, "indentation unit")
	flags.StringVar(&opts.locale, "locale", "", "BCP 47 locale for numbers, e.g. de-DE")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options, logger *zap.Logger) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := decode(in)
	if err != nil {
		return err
	}

	cfg := objprint.For[any]().WithLogger(logger)
	if opts.rules != "" {
		rs, err := readRulesFile(opts.rules)
		if err != nil {
			return err
		}
		cfg = cfg.ApplyRules(rs)
	}
	if cmd.Flags().Changed("max-depth") {
		cfg = cfg.WithMaxDepth(opts.maxDepth)
	}
	if cmd.Flags().Changed("indent") {
		cfg = cfg.WithIndent(opts.indent)
	}
	if opts.locale != "" {
		tag, err := language.Parse(opts.locale)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", objprint.ErrInvalidLocale, opts.locale, err)
		}
		cfg = cfg.
			SetTypeLocale(reflect.TypeFor[int](), tag).
			SetTypeLocale(reflect.TypeFor[float64](), tag)
	}

	logger.Debug("rendering document", zap.String("type", fmt.Sprintf("%T", doc)))
	return cfg.Write(cmd.OutOrStdout(), doc)
}

// decode reads one document. An empty input decodes to nil.
func decode(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func readRulesFile(path string) (objprint.Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return objprint.Rules{}, err
	}
	defer f.Close()
	return objprint.ReadRules(f)
}
