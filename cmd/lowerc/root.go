package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/generator"
	"github.com/t14raptor/go-lower/internal/config"
	"github.com/t14raptor/go-lower/internal/snapshot"
	"github.com/t14raptor/go-lower/session"
)

var errUnknownIdiom = errors.New("unknown idiom")

type options struct {
	configPath string
	format     string
	arity      int
	state      int
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "lowerc",
		Short:         "Print synthesized lowering idioms",
		Long:          "lowerc builds the trees used to lower high-level JavaScript constructs and prints them as source, YAML, JSON or CBOR",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().IntVar(&opts.arity, "arity", 0, "Parameter count for idioms that take one")
	rootCmd.PersistentFlags().IntVar(&opts.state, "state", 0, "State number for assign-state")

	idiomsCmd := &cobra.Command{
		Use:   "idioms",
		Short: "List the available idioms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range idiomNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, idioms[name].description)
			}
		},
	}

	emitCmd := &cobra.Command{
		Use:   "emit <idiom>",
		Short: "Print one idiom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, node, err := build(cmd, opts, args[0])
			if err != nil {
				return err
			}
			out, err := render(node, cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	emitCmd.Flags().StringVarP(&opts.format, "format", "o", "", "Output format: js, yaml, json or cbor")

	fingerprintCmd := &cobra.Command{
		Use:   "fingerprint <idiom>",
		Short: "Print the structural fingerprint of one idiom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, node, err := build(cmd, opts, args[0])
			if err != nil {
				return err
			}
			sum, err := snapshot.FingerprintHex(node)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}

	rootCmd.AddCommand(idiomsCmd, emitCmd, fingerprintCmd)
	return rootCmd
}

// loadConfig merges the configuration file and the flags set on cmd.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("arity") {
		cfg.Arity = opts.arity
	}
	if flags.Changed("state") {
		cfg.State = opts.state
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newSession(w io.Writer, cfg config.Config) *session.Session {
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return session.New(session.WithLogger(logger), session.WithName("lowerc"))
}

func build(cmd *cobra.Command, opts options, name string) (config.Config, ast.Node, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return config.Config{}, nil, err
	}
	s := newSession(cmd.ErrOrStderr(), cfg)

	id, ok := idioms[name]
	if !ok {
		s.Reporter.ReportError(nil, "unknown idiom %s", name)
		if match := closestIdiom(name); match != "" {
			s.Reporter.ReportWarning(nil, "did you mean %s?", match)
		}
		return config.Config{}, nil, fmt.Errorf("%w %q", errUnknownIdiom, name)
	}
	node := id.build(params{arity: cfg.Arity, state: cfg.State})
	if err := ast.Check(node); err != nil {
		s.Reporter.ReportError(nil, "idiom %s: %s", name, err)
		return config.Config{}, nil, err
	}
	for _, n := range ast.Shared(node) {
		s.Reporter.ReportWarning(nil, "idiom %s: %s is referenced more than once", name, n.Kind())
	}
	return cfg, node, nil
}

// closestIdiom returns the idiom name that best matches target, or "".
func closestIdiom(target string) string {
	ranks := fuzzy.RankFindFold(target, idiomNames())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func render(node ast.Node, cfg config.Config) ([]byte, error) {
	switch cfg.Format {
	case config.FormatYAML:
		return snapshot.MarshalYAML(node)
	case config.FormatJSON:
		data, err := snapshot.MarshalJSON(node)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case config.FormatCBOR:
		return snapshot.MarshalCBOR(node)
	}
	return []byte(generator.GenerateWith(node, generator.Options{Indent: cfg.Indent}) + "\n"), nil
}
