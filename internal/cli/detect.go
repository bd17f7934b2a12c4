package cli

import (
	"fmt"

	golwjgl "github.com/albertocavalcante/go-lwjgl"
	"github.com/albertocavalcante/go-lwjgl/detect"
	"github.com/spf13/cobra"
)

// hostEnvironment is the environment used when no override is given.
// Tests replace it.
var hostEnvironment = detect.Host

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Print the native platform of this machine",
		Long: `Detect prints the native platform that resolve uses when no platforms are
configured. Use --os-arch and --os-name (or LWJGL_OS_ARCH and
LWJGL_OS_NAME) to check another machine's values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := settings(cmd)
			if err != nil {
				return err
			}
			env := environment(v)
			p, ok := env.Platform()
			if !ok {
				return &golwjgl.PlatformError{Arch: env.Arch, OSName: env.OSName}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (os.name=%q, os.arch=%q)\n", p.Name, env.OSName, env.Arch)
			return err
		},
	}
}
