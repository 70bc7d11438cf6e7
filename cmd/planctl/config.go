package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.confplan.dev/vplan/log"
	"go.confplan.dev/vplan/profile"
)

// Flags holds CLI flag names for planctl's own configuration, allowing
// callers to customize flag names while keeping sensible defaults via
// [NewConfig].
type Flags struct {
	Format           string
	Output           string
	Path             string
	SortKeys         string
	DisableNone      string
	DisableEmptyList string
	IncludeTypePath  string
	IgnorePrivate    string
	IgnoreNone       string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds CLI flag values for planctl.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags Flags

	// Format selects the rendered output: "json" or "yaml".
	Format string
	// Output is the destination file path, or "-" for stdout.
	Output string
	// Path holds zero or more dotted key paths to project the merged
	// input down to before planning.
	Path []string

	SortKeys         bool
	DisableNone      bool
	DisableEmptyList bool
	IncludeTypePath  bool
	IgnorePrivate    bool
	IgnoreNone       bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Format:           "format",
		Output:           "output",
		Path:             "path",
		SortKeys:         "sort-keys",
		DisableNone:      "disable-none",
		DisableEmptyList: "disable-empty-list",
		IncludeTypePath:  "include-type-path",
		IgnorePrivate:    "ignore-private",
		IgnoreNone:       "ignore-none",
	}

	return f.NewConfig()
}

// RegisterFlags adds planctl's flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Format, c.Flags.Format, "f", "yaml",
		"output format, one of: json, yaml")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.StringSliceVarP(&c.Path, c.Flags.Path, "p", nil,
		"dotted key path to project the merged input down to (repeatable)")
	flags.BoolVar(&c.SortKeys, c.Flags.SortKeys, false,
		"sort map keys alphabetically at emission time")
	flags.BoolVar(&c.DisableNone, c.Flags.DisableNone, false,
		"elide explicit null values from planned output")
	flags.BoolVar(&c.DisableEmptyList, c.Flags.DisableEmptyList, false,
		"suppress emitting an empty list as []")
	flags.BoolVar(&c.IncludeTypePath, c.Flags.IncludeTypePath, false,
		"inject a _type attribute into every planned schema instance")
	flags.BoolVar(&c.IgnorePrivate, c.Flags.IgnorePrivate, false,
		"omit keys beginning with an underscore at emission time")
	flags.BoolVar(&c.IgnoreNone, c.Flags.IgnoreNone, false,
		"omit null values at emission time")
}

// RegisterCompletions registers shell completions for planctl's own flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions([]string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	return nil
}

// rootConfig bundles every flag group registered on the root command.
type rootConfig struct {
	log     *log.Config
	profile *profile.Config
	planctl *Config
}

func newRootConfig() *rootConfig {
	return &rootConfig{
		log:     log.NewConfig(),
		profile: profile.NewConfig(),
		planctl: NewConfig(),
	}
}

func (c *rootConfig) RegisterFlags(flags *pflag.FlagSet) {
	c.log.RegisterFlags(flags)
	c.profile.RegisterFlags(flags)
	c.planctl.RegisterFlags(flags)
}

func (c *rootConfig) RegisterCompletions(cmd *cobra.Command) error {
	if err := c.log.RegisterCompletions(cmd); err != nil {
		return err
	}

	if err := c.profile.RegisterCompletions(cmd); err != nil {
		return err
	}

	return c.planctl.RegisterCompletions(cmd)
}
