// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"pumlgen/internal/plantuml"
)

// Defaults used when neither the flags nor the environment override them.
const (
	DefaultOutputDirectory          = "distribution"
	DefaultCacheDirectory           = ".cache"
	DefaultTemplateDiscoveryPattern = "templates/**"
)

// Config gathers the directories and binaries used by the generation.
type Config struct {
	// OutputDirectory hosts the generated distribution.
	OutputDirectory string
	// CacheDirectory hosts the downloaded jar and the sprite intermediates.
	CacheDirectory string
	// TemplateDiscoveryPattern locates user-provided templates.
	TemplateDiscoveryPattern string
	// PlantUMLVersion is the version of the PlantUML jar.
	PlantUMLVersion string
	// PlantUMLJar is the path of the PlantUML jar.
	PlantUMLJar string
	// JavaBinary is the command running the jar.
	JavaBinary string
	// InkscapeBinary is the command rendering SVG icons.
	InkscapeBinary string
}

// DefaultConfig resolves the configuration from the environment, falling
// back to the built-in defaults.
func DefaultConfig() Config {
	javaBinary := envOr("PUMLGEN_JAVA_BINARY", "")
	if javaBinary == "" {
		if javaHome := os.Getenv("JAVA_HOME"); javaHome != "" {
			javaBinary = filepath.Join(javaHome, "bin", "java")
		} else {
			javaBinary = plantuml.DefaultJavaBinary
		}
	}
	version := envOr("PUMLGEN_PLANTUML_VERSION", plantuml.DefaultVersion)
	cacheDirectory := envOr("PUMLGEN_CACHE_DIRECTORY", DefaultCacheDirectory)
	return Config{
		OutputDirectory:          envOr("PUMLGEN_OUTPUT_DIRECTORY", DefaultOutputDirectory),
		CacheDirectory:           cacheDirectory,
		TemplateDiscoveryPattern: envOr("PUMLGEN_DISCOVERY_PATTERN", DefaultTemplateDiscoveryPattern),
		PlantUMLVersion:          version,
		PlantUMLJar:              envOr("PUMLGEN_PLANTUML_JAR", filepath.Join(cacheDirectory, fmt.Sprintf("plantuml-%s.jar", version))),
		JavaBinary:               javaBinary,
		InkscapeBinary:           envOr("PUMLGEN_INKSCAPE_BINARY", "inkscape"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
