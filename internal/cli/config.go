// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pumlgen/internal/diagram"
	"pumlgen/internal/generate"
	"pumlgen/internal/imaging"
	"pumlgen/internal/plantuml"
)

// flag precedence: flag > PUMLGEN_* environment > built-in default.
var environmentBindings = map[string]string{
	"output":           "PUMLGEN_OUTPUT_DIRECTORY",
	"source":           "PUMLGEN_SOURCE_DIRECTORY",
	"pattern":          "PUMLGEN_SOURCE_PATTERNS",
	"cache":            "PUMLGEN_CACHE_DIRECTORY",
	"plantuml-version": "PUMLGEN_PLANTUML_VERSION",
	"plantuml":         "PUMLGEN_PLANTUML_JAR",
	"java":             "PUMLGEN_JAVA_BINARY",
	"inkscape":         "PUMLGEN_INKSCAPE_BINARY",
}

// newViper binds the command flags and the PUMLGEN_* environment.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	for key, envVar := range environmentBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, err
		}
		if flag := cmd.Flags().Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}
	v.SetDefault("output", generate.DefaultOutputDirectory)
	v.SetDefault("source", diagram.DefaultSourceDirectory)
	v.SetDefault("pattern", diagram.DefaultSourcePatterns)
	v.SetDefault("cache", generate.DefaultCacheDirectory)
	v.SetDefault("plantuml-version", plantuml.DefaultVersion)
	v.SetDefault("java", defaultJavaBinary())
	v.SetDefault("inkscape", imaging.DefaultInkscapeBinary)
	return v, nil
}

// defaultJavaBinary honors JAVA_HOME before falling back to the PATH lookup.
func defaultJavaBinary() string {
	if javaHome := os.Getenv("JAVA_HOME"); javaHome != "" {
		return filepath.Join(javaHome, "bin", "java")
	}
	return plantuml.DefaultJavaBinary
}

func resolveJar(v *viper.Viper) string {
	if jar := v.GetString("plantuml"); jar != "" {
		return jar
	}
	return filepath.Join(v.GetString("cache"), fmt.Sprintf("plantuml-%s.jar", v.GetString("plantuml-version")))
}

func resolveGenerateConfig(cmd *cobra.Command) (generate.Config, error) {
	v, err := newViper(cmd)
	if err != nil {
		return generate.Config{}, err
	}
	return generate.Config{
		OutputDirectory:          v.GetString("output"),
		CacheDirectory:           v.GetString("cache"),
		TemplateDiscoveryPattern: generate.DefaultTemplateDiscoveryPattern,
		PlantUMLVersion:          v.GetString("plantuml-version"),
		PlantUMLJar:              resolveJar(v),
		JavaBinary:               v.GetString("java"),
		InkscapeBinary:           v.GetString("inkscape"),
	}, nil
}

func resolveDiagramConfig(cmd *cobra.Command) (diagram.Config, error) {
	v, err := newViper(cmd)
	if err != nil {
		return diagram.Config{}, err
	}
	return diagram.Config{
		SourceDirectory: v.GetString("source"),
		SourcePatterns:  v.GetString("pattern"),
		CacheDirectory:  v.GetString("cache"),
		PlantUMLVersion: v.GetString("plantuml-version"),
		PlantUMLJar:     resolveJar(v),
		JavaBinary:      v.GetString("java"),
	}, nil
}
