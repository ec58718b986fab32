// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pumlgen/internal/generate"
	"pumlgen/internal/generate/tasks"
	"pumlgen/internal/imaging"
	"pumlgen/internal/manifest"
	"pumlgen/internal/plantuml"
	"pumlgen/internal/template"
	"pumlgen/internal/urn"
	"pumlgen/pkg/fsutil"
)

// newLibraryGenerateCommand creates the `pumlgen library generate` command.
func newLibraryGenerateCommand() *cobra.Command {
	var (
		urnValues     []string
		cleanCache    bool
		urnsToClean   []string
		cleanupScopes []string
	)
	cmd := &cobra.Command{
		Use:   "generate MANIFEST",
		Short: "Generate a library from a manifest",
		Long: `Generate a library from a manifest.

By default, artifacts which are already generated won't be generated
again. The --cleanup-scope option targets artifacts which will be
re-generated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibraryGenerate(cmd, args[0], urnValues, urnsToClean, cleanupScopes, cleanCache)
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "O", "", "the output directory")
	flags.StringP("cache", "C", "", "the cache directory")
	flags.StringP("plantuml-version", "V", "", "the PlantUML version")
	flags.StringP("plantuml", "P", "", "the path of the PlantUML jar")
	flags.StringP("java", "J", "", "the java binary path or command line")
	flags.StringP("inkscape", "I", "", "the inkscape binary path or command line")
	flags.StringArrayVarP(&urnValues, "urn", "u", nil, "handle only artifacts included in the URN")
	flags.BoolVar(&cleanCache, "clean-cache", false, "delete the cache directory before the generation")
	flags.StringArrayVar(&urnsToClean, "clean-urn", nil, "delete the given URN in the output directory before the generation")
	flags.StringArrayVarP(&cleanupScopes, "cleanup-scope", "c", nil, "the scopes to cleanup before the generation")
	cmd.MarkFlagsMutuallyExclusive("plantuml-version", "plantuml")

	return cmd
}

func runLibraryGenerate(cmd *cobra.Command, manifestPath string, urnValues, urnsToClean, cleanupScopes []string, cleanCache bool) error {
	ctx := cmd.Context()

	cfg, err := resolveGenerateConfig(cmd)
	if err != nil {
		return err
	}
	log.Info("generate the library",
		"manifest", manifestPath,
		"output", cfg.OutputDirectory,
		"cache", cfg.CacheDirectory,
	)

	if cleanCache {
		log.Info("clean the cache directory", "path", cfg.CacheDirectory)
		if err := fsutil.DeleteFileOrDirectory(cfg.CacheDirectory); err != nil {
			return err
		}
	}
	for _, value := range urnsToClean {
		path := filepath.Join(cfg.OutputDirectory, value)
		log.Info("clean the output sub-directory", "path", path)
		if err := fsutil.DeleteFileOrDirectory(path); err != nil {
			return err
		}
	}

	library, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	discoveryPattern := library.TemplateDiscoveryPattern
	if discoveryPattern == "" {
		discoveryPattern = cfg.TemplateDiscoveryPattern
	}
	engine, err := template.NewEngine(discoveryPattern)
	if err != nil {
		return err
	}

	uml := plantuml.New(cfg.JavaBinary, cfg.PlantUMLJar, cfg.PlantUMLVersion)
	if err := uml.Download(ctx); err != nil {
		return err
	}

	scopes := make([]generate.CleanupScope, 0, len(cleanupScopes))
	for _, value := range cleanupScopes {
		scope, err := generate.ParseCleanupScope(value)
		if err != nil {
			return err
		}
		scopes = append(scopes, scope)
	}

	targets := make([]urn.Urn, 0, len(urnValues))
	for _, value := range urnValues {
		targets = append(targets, urn.Parse(value))
	}
	if len(urnValues) > 0 {
		log.Info("targeted urns", "urns", strings.Join(urnValues, ", "))
	}

	scaler := imaging.NewScaler(cfg.InkscapeBinary)
	generator := generate.NewGenerator(tasks.Build(cfg, library, targets, scaler, uml))
	if err := generator.Generate(ctx, scopes, engine, uml); err != nil {
		return err
	}

	log.Info("the generation is over")
	return nil
}
