package cli

import (
	"fmt"
	"text/tabwriter"

	golwjgl "github.com/albertocavalcante/go-lwjgl"
	"github.com/albertocavalcante/go-lwjgl/catalog"
	"github.com/albertocavalcante/go-lwjgl/version"
	"github.com/spf13/cobra"
)

func newModulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the LWJGL modules",
		Long: `List every module in the catalog with its artifact, whether it ships
native binaries, and the first LWJGL version that includes it.

With --version, modules that the version does not include are marked.
With --preset, only the modules of that preset are listed.`,
		Args: cobra.NoArgs,
		RunE: runModules,
	}
	cmd.Flags().String("version", "", "mark modules not available in this LWJGL version")
	cmd.Flags().String("preset", "", "list only the modules of this preset")
	return cmd
}

func runModules(cmd *cobra.Command, _ []string) error {
	v, err := settings(cmd)
	if err != nil {
		return err
	}

	modules := append([]catalog.Module{catalog.Core}, catalog.Modules()...)
	if name := v.GetString("preset"); name != "" {
		presets, err := golwjgl.LookupPresets(name)
		if err != nil {
			return err
		}
		modules = presets[0].Modules()
	}
	requested := v.GetString("version")

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	header := "MODULE\tARTIFACT\tNATIVES\tSINCE"
	if requested != "" {
		header += "\tAVAILABLE"
	}
	fmt.Fprintln(w, header)
	for _, m := range modules {
		natives := "no"
		if m.HasNatives {
			natives = "yes"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%s", m.Name, m.Artifact, natives, m.MinVersion)
		if requested != "" {
			available := "no"
			if version.MeetsMinimum(m.MinVersion, requested) {
				available = "yes"
			}
			line += "\t" + available
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func newPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the canonical native platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := settings(cmd)
			if err != nil {
				return err
			}
			current, _ := environment(v).Platform()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLATFORM\tCLASSIFIER\tHOST")
			for _, p := range catalog.Platforms() {
				mark := ""
				if p == current {
					mark = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Classifier(), mark)
			}
			return w.Flush()
		},
	}
}
