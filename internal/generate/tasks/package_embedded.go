// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

type embeddedMode string

const (
	// embeddedSingle produces single.puml: library bootstrap, package
	// bootstrap and every item in one file.
	embeddedSingle embeddedMode = "single"
	// embeddedFull produces full.puml: like single without the library
	// bootstrap.
	embeddedFull embeddedMode = "full"
)

// packageEmbeddedTask generates `<output>/<package>/{single,full}.puml` by
// concatenating files produced by the atomic phase.
type packageEmbeddedTask struct {
	generate.NoopTask

	PackageUrn string

	mode                 embeddedMode
	libraryBootstrapFile string
	packageBootstrapFile string
	packageItemFiles     []string
	outputDirectory      string
	template             string
}

type packageEmbeddedData struct {
	PackageUrn       string
	LibraryBootstrap string
	PackageBootstrap string
	PackageItems     string
}

func newPackageEmbeddedTask(cfg generate.Config, pkg *manifest.Package, mode embeddedMode) *packageEmbeddedTask {
	libraryBootstrapFile := ""
	if mode == embeddedSingle {
		libraryBootstrapFile = filepath.Join(cfg.OutputDirectory, "bootstrap.puml")
	}
	var packageItemFiles []string
	for _, module := range pkg.Modules {
		for _, item := range module.Items {
			packageItemFiles = append(packageItemFiles, filepath.Join(cfg.OutputDirectory, item.Urn.Value+".puml"))
		}
	}
	return &packageEmbeddedTask{
		PackageUrn:           pkg.Urn.Value,
		mode:                 mode,
		libraryBootstrapFile: libraryBootstrapFile,
		packageBootstrapFile: filepath.Join(cfg.OutputDirectory, pkg.Urn.Value, "bootstrap.puml"),
		packageItemFiles:     packageItemFiles,
		outputDirectory:      cfg.OutputDirectory,
		template:             pkg.Templates.Embedded,
	}
}

func (t *packageEmbeddedTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, t.PackageUrn, fmt.Sprintf("%s.puml", t.mode))
}

func (t *packageEmbeddedTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("packageEmbeddedTask - cleanup", "package", t.PackageUrn, "mode", t.mode)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *packageEmbeddedTask) RenderComposedTemplates(engine *template.Engine) error {
	log.Debug("packageEmbeddedTask - render templates", "package", t.PackageUrn, "mode", t.mode)

	destination := t.destinationPath()
	if fsutil.FileExists(destination) {
		return nil
	}

	libraryBootstrap := ""
	if t.libraryBootstrapFile != "" {
		content, err := fsutil.ReadFile(t.libraryBootstrapFile)
		if err != nil {
			return err
		}
		libraryBootstrap = content
	}
	packageBootstrap, err := fsutil.ReadFile(t.packageBootstrapFile)
	if err != nil {
		return err
	}
	var items []string
	for _, file := range t.packageItemFiles {
		content, err := fsutil.ReadFile(file)
		if err != nil {
			return err
		}
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	data := packageEmbeddedData{
		PackageUrn:       t.PackageUrn,
		LibraryBootstrap: libraryBootstrap,
		PackageBootstrap: packageBootstrap,
		PackageItems:     strings.Join(items, "\n"),
	}
	return engine.RenderToFile(t.template, data, destination)
}
