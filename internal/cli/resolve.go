package cli

import (
	"errors"
	"fmt"
	"os"

	golwjgl "github.com/albertocavalcante/go-lwjgl"
	"github.com/albertocavalcante/go-lwjgl/detect"
	"github.com/albertocavalcante/go-lwjgl/format"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [config-file]",
		Short: "Resolve a selection into Maven coordinates",
		Long: `Resolve reads the selection, applies presets and version filtering, and
prints the resulting coordinates.

Without a config file argument, LWJGL.bazel and then lwjgl.toml are looked
up in the current directory; when neither exists the built-in defaults are
used. Flags are applied on top of the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runResolve,
	}

	flags := cmd.Flags()
	flags.String("version", "", "LWJGL version to request")
	flags.String("group", "", "Maven group of the LWJGL artifacts")
	flags.StringSliceP("module", "m", nil, "module to add (repeatable, comma-separated)")
	flags.StringSliceP("preset", "p", nil, "preset to apply (repeatable, comma-separated)")
	flags.StringSlice("platform", nil, "canonical native platform (repeatable, comma-separated)")
	flags.StringSlice("custom-platform", nil, "non-canonical native platform name (repeatable)")
	flags.Bool("all-platforms", false, "fetch natives for every canonical platform")
	flags.Bool("no-filter-min-version", false, "keep preset modules that are newer than the requested version")
	flags.Bool("strict", false, "fail instead of warning when a module is newer than the requested version")
	flags.StringP("format", "f", string(format.Text), fmt.Sprintf("output format %v", format.Formats()))
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	v, err := settings(cmd)
	if err != nil {
		return err
	}

	outFormat, err := format.Parse(v.GetString("format"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, v); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
	result, err := golwjgl.Resolve(cfg,
		golwjgl.WithLogger(logger),
		golwjgl.WithStrictVersions(v.GetBool("strict")),
		golwjgl.WithEnvironment(environment(v)),
	)
	if err != nil {
		return err
	}

	out, err := format.Render(result, outFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// loadConfig reads the config file named on the command line, or the
// first default config file present in the working directory.
func loadConfig(args []string) (*golwjgl.Config, error) {
	if len(args) == 1 {
		return golwjgl.LoadConfigFile(args[0])
	}
	for _, name := range []string{golwjgl.DefaultConfigFile, golwjgl.DefaultTOMLConfigFile} {
		_, err := os.Stat(name)
		if err == nil {
			return golwjgl.LoadConfigFile(name)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return golwjgl.NewConfig(), nil
}

func applyOverrides(cfg *golwjgl.Config, v *viper.Viper) error {
	if s := v.GetString("version"); s != "" {
		cfg.SetVersion(s)
	}
	if s := v.GetString("group"); s != "" {
		cfg.Group = s
	}
	if v.GetBool("no-filter-min-version") {
		cfg.Presets.FilterMinVersion = false
	}

	modules, err := golwjgl.LookupModules(listValues(v.GetStringSlice("module"))...)
	if err != nil {
		return err
	}
	cfg.Modules(modules...)

	presets, err := golwjgl.LookupPresets(listValues(v.GetStringSlice("preset"))...)
	if err != nil {
		return err
	}
	cfg.Presets.Add(presets...)

	return cfg.SelectNativePlatforms(
		v.GetBool("all-platforms"),
		listValues(v.GetStringSlice("platform")),
		listValues(v.GetStringSlice("custom-platform")),
	)
}

// environment returns the host environment with the --os-arch and
// --os-name overrides applied.
func environment(v *viper.Viper) detect.Environment {
	env := hostEnvironment()
	if arch := v.GetString("os-arch"); arch != "" {
		env.Arch = arch
	}
	if osName := v.GetString("os-name"); osName != "" {
		env.OSName = osName
	}
	return env
}
