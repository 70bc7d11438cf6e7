// Package main provides the CLI entry point for planctl, a tool that
// decodes, merges, and plans configuration documents into their final
// JSON or YAML form.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.confplan.dev/vplan/emit"
	"go.confplan.dev/vplan/plan"
	"go.confplan.dev/vplan/value"
	"go.confplan.dev/vplan/value/decode"
	"go.confplan.dev/vplan/version"
)

func main() {
	cfg := newRootConfig()

	rootCmd := &cobra.Command{
		Use:     "planctl [flags] <file.yaml|file.json> [file2 ...]",
		Short:   "Decode, merge, and plan configuration documents",
		Version: version.Version,
		Long: `planctl decodes one or more YAML or JSON configuration files, merges them
left to right, optionally projects the result down to a set of key paths,
and plans the result into its final JSON array or multi-document YAML form.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *rootConfig, args []string) error {
	handler, err := cfg.log.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	prof := cfg.profile.NewProfiler()
	if err := prof.Start(); err != nil {
		return err
	}

	defer func() {
		if stopErr := prof.Stop(); stopErr != nil {
			logger.Error("stopping profiler", "error", stopErr)
		}
	}()

	roots := make([]value.Value, 0, len(args))

	for _, path := range args {
		logger.Debug("decoding input", "path", path)

		v, err := decodeFile(path)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}

		roots = append(roots, v)
	}

	merged := decode.Merge(roots...)

	selected, err := plan.FilterByPath(merged, cfg.planctl.Path)
	if err != nil {
		return err
	}

	ctx := plan.NewContext(plan.Config{
		DisableNone:      cfg.planctl.DisableNone,
		DisableEmptyList: cfg.planctl.DisableEmptyList,
	})

	opts := plan.Options{
		SortKeys:              cfg.planctl.SortKeys,
		IncludeSchemaTypePath: cfg.planctl.IncludeTypePath,
	}

	out, err := renderPlan(ctx, selected, opts, cfg.planctl)
	if err != nil {
		return err
	}

	return writeOutput(cfg.planctl.Output, out)
}

// renderPlan partitions selected via [plan.FilterResults] when it is
// list-or-config, encoding it directly otherwise, and renders the result in
// the format named by cfg.Format honoring cfg's encode-time filters.
func renderPlan(ctx *plan.Context, selected value.Value, opts plan.Options, cfg *Config) (string, error) {
	jsonOpts := emit.JSONOptions{
		SortKeys:      cfg.SortKeys,
		IgnorePrivate: cfg.IgnorePrivate,
		IgnoreNone:    cfg.IgnoreNone,
	}
	yamlOpts := emit.YAMLOptions{
		SortKeys:      cfg.SortKeys,
		IgnorePrivate: cfg.IgnorePrivate,
		IgnoreNone:    cfg.IgnoreNone,
	}

	if !selected.IsListOrConfig() {
		if strings.EqualFold(cfg.Format, "json") {
			return emit.EncodeJSON(selected, jsonOpts)
		}

		return emit.EncodeYAML(selected, yamlOpts)
	}

	results := plan.FilterResults(ctx, selected, opts)

	if strings.EqualFold(cfg.Format, "json") {
		return emit.EncodeJSONDocuments(results, jsonOpts)
	}

	docs := make([]string, 0, len(results))

	for _, r := range results {
		text, err := emit.EncodeYAML(r, yamlOpts)
		if err != nil {
			return "", err
		}

		docs = append(docs, text)
	}

	return emit.JoinYAMLStream(docs), nil
}

// decodeFile reads path and decodes it as JSON if it has a .json extension,
// and as YAML otherwise.
func decodeFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return decode.JSON(data)
	}

	return decode.YAML(data)
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(os.Stdout, content)

		return err
	}

	return os.WriteFile(path, []byte(content), 0o644)
}
