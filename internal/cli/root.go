// Package cli implements the lwjgl-deps command line.
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of every environment variable the CLI reads,
// e.g. LWJGL_VERSION or LWJGL_OS_ARCH.
const envPrefix = "LWJGL"

// NewRootCommand returns the lwjgl-deps command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lwjgl-deps",
		Short: "Resolve LWJGL modules and natives into Maven coordinates",
		Long: `lwjgl-deps turns an LWJGL selection (modules, presets, version and native
platforms) into the Maven coordinates a build needs: one artifact per module
and one classified natives artifact per module and platform.

The selection comes from a config file (LWJGL.bazel or lwjgl.toml), from
flags, or from LWJGL_* environment variables, in increasing priority.

Examples:
  lwjgl-deps resolve --preset getting_started --platform linux
  lwjgl-deps resolve LWJGL.bazel --format starlark
  lwjgl-deps modules --version 3.2.0
  lwjgl-deps detect`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("os-arch", "", "override the detected CPU architecture (JVM os.arch vocabulary)")
	root.PersistentFlags().String("os-name", "", "override the detected OS name (JVM os.name vocabulary)")

	root.AddCommand(newResolveCommand())
	root.AddCommand(newModulesCommand())
	root.AddCommand(newPlatformsCommand())
	root.AddCommand(newDetectCommand())
	return root
}

// settings binds the command's flags, local and inherited, to LWJGL_*
// environment variables. A flag set on the command line wins over the
// environment.
func settings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

// newLogger returns a slog logger writing through charmbracelet/log.
// Warnings are always shown; --verbose adds debug output.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: "lwjgl-deps",
		Level:  level,
	})
	return slog.New(handler)
}

// listValues flattens repeated and comma-separated values:
// ["glfw,stb", "opengl"] becomes ["glfw", "stb", "opengl"].
func listValues(values []string) []string {
	var out []string
	for _, value := range values {
		for _, item := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' '
		}) {
			out = append(out, item)
		}
	}
	return out
}
