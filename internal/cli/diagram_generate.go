// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pumlgen/internal/diagram"
	"pumlgen/internal/plantuml"
)

// newDiagramGenerateCommand creates the `pumlgen diagram generate` command.
func newDiagramGenerateCommand() *cobra.Command {
	var (
		force        bool
		plantumlArgs string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate discovered .puml files which have been mutated since the last generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagramGenerate(cmd, force, plantumlArgs)
		},
	}

	flags := cmd.Flags()
	flags.StringP("source", "s", "", "the directory where the .puml will be discovered")
	flags.StringP("pattern", "p", "", "comma-separated glob patterns discovering the sources")
	flags.StringP("cache", "C", "", "the cache directory")
	flags.StringP("plantuml-version", "V", "", "the PlantUML version")
	flags.StringP("plantuml", "P", "", "the path of the PlantUML jar")
	flags.StringP("java", "J", "", "the java binary path or command line")
	flags.BoolVarP(&force, "force", "f", false, "force the rendering of discovered .puml files")
	flags.StringVarP(&plantumlArgs, "args", "a", "", "extra arguments passed to PlantUML")
	cmd.MarkFlagsMutuallyExclusive("plantuml-version", "plantuml")

	return cmd
}

func runDiagramGenerate(cmd *cobra.Command, force bool, plantumlArgs string) error {
	ctx := cmd.Context()

	cfg, err := resolveDiagramConfig(cmd)
	if err != nil {
		return err
	}
	log.Info("generate the diagrams",
		"source", cfg.SourceDirectory,
		"cache", cfg.CacheDirectory,
		"force", force,
	)

	uml := plantuml.New(cfg.JavaBinary, cfg.PlantUMLJar, cfg.PlantUMLVersion)
	if err := uml.Download(ctx); err != nil {
		return err
	}

	return diagram.Run(ctx, cfg, uml, force, strings.Fields(plantumlArgs)...)
}
