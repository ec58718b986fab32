// SPDX-License-Identifier: MPL-2.0

package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"pumlgen/internal/plantuml"
)

// DefaultSourceDirectory is the directory scanned for .puml files.
const DefaultSourceDirectory = "."

// DefaultSourcePatterns discovers every .puml file under the source
// directory.
const DefaultSourcePatterns = "**/*.puml"

// DefaultCacheDirectory hosts the jar and the generation watermark.
const DefaultCacheDirectory = ".cache"

// Config gathers the directories and binaries used by the diagram rendering.
type Config struct {
	// SourceDirectory is scanned recursively for .puml files.
	SourceDirectory string
	// SourcePatterns are comma-separated glob patterns, resolved relative
	// to SourceDirectory.
	SourcePatterns string
	// CacheDirectory hosts the downloaded jar and the generation watermark.
	CacheDirectory string
	// PlantUMLVersion is the version of the PlantUML jar.
	PlantUMLVersion string
	// PlantUMLJar is the path of the PlantUML jar.
	PlantUMLJar string
	// JavaBinary is the command running the jar.
	JavaBinary string
}

// DefaultConfig resolves the configuration from the environment, falling
// back to the built-in defaults.
func DefaultConfig() Config {
	javaBinary := os.Getenv("PUMLGEN_JAVA_BINARY")
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
		SourceDirectory: envOr("PUMLGEN_SOURCE_DIRECTORY", DefaultSourceDirectory),
		SourcePatterns:  envOr("PUMLGEN_SOURCE_PATTERNS", DefaultSourcePatterns),
		CacheDirectory:  cacheDirectory,
		PlantUMLVersion: version,
		PlantUMLJar:     envOr("PUMLGEN_PLANTUML_JAR", filepath.Join(cacheDirectory, fmt.Sprintf("plantuml-%s.jar", version))),
		JavaBinary:      javaBinary,
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
