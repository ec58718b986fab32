// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

// libraryBootstrapTask generates `<output>/bootstrap.puml`.
type libraryBootstrapTask struct {
	generate.NoopTask

	LibraryName    string
	RemoteURL      string
	IconFormat     string
	TextWidthMax   int
	MsgWidthMax    int
	FontSizeXS     int
	FontSizeSM     int
	FontSizeMD     int
	FontSizeLG     int
	FontColor      string
	FontColorLight string

	outputDirectory string
	template        string
}

func newLibraryBootstrapTask(cfg generate.Config, library *manifest.Library) *libraryBootstrapTask {
	c := library.Customization
	return &libraryBootstrapTask{
		LibraryName:     library.Name,
		RemoteURL:       library.RemoteURL,
		IconFormat:      c.IconFormat,
		TextWidthMax:    c.TextWidthMax,
		MsgWidthMax:     c.MsgWidthMax,
		FontSizeXS:      c.FontSizeXS,
		FontSizeSM:      c.FontSizeSM,
		FontSizeMD:      c.FontSizeMD,
		FontSizeLG:      c.FontSizeLG,
		FontColor:       c.FontColor,
		FontColorLight:  c.FontColorLight,
		outputDirectory: cfg.OutputDirectory,
		template:        library.Templates.Bootstrap,
	}
}

func (t *libraryBootstrapTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, "bootstrap.puml")
}

func (t *libraryBootstrapTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("libraryBootstrapTask - cleanup", "library", t.LibraryName)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *libraryBootstrapTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("libraryBootstrapTask - render templates", "library", t.LibraryName)
	return renderIfMissing(engine, t.template, t, t.destinationPath())
}
