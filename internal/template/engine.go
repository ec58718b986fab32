// SPDX-License-Identifier: MPL-2.0

package template

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/mattn/go-zglob"

	"pumlgen/pkg/fsutil"
)

//go:embed builtin/*.tmpl
var builtin embed.FS

// Engine renders named templates. Built-in templates are always available;
// templates discovered through the pattern override them by base name.
type Engine struct {
	templates *template.Template
}

// NewEngine loads the built-in templates and the ones matching the optional
// discovery pattern.
func NewEngine(discoveryPattern string) (*Engine, error) {
	root := template.New("root").Funcs(template.FuncMap{
		"readFileContent": readFileContent,
	})
	entries, err := builtin.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("unable to list the built-in templates: %w", err)
	}
	for _, entry := range entries {
		content, err := builtin.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("unable to read the built-in template %s: %w", entry.Name(), err)
		}
		if _, err := root.New(entry.Name()).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("unable to parse the built-in template %s: %w", entry.Name(), err)
		}
	}
	if discoveryPattern != "" {
		matches, err := zglob.Glob(discoveryPattern)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to discover templates with %s: %w", discoveryPattern, err)
		}
		for _, match := range matches {
			content, err := os.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("unable to read the template %s: %w", match, err)
			}
			if _, err := root.New(filepath.Base(match)).Parse(string(content)); err != nil {
				return nil, fmt.Errorf("unable to parse the template %s: %w", match, err)
			}
		}
	}
	return &Engine{templates: root}, nil
}

// Render executes the named template with the given data.
func (e *Engine) Render(name string, data any, w io.Writer) error {
	if err := e.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("unable to render %s: %w", name, err)
	}
	return nil
}

// RenderToFile renders the named template into the destination file, creating
// the parent directory when needed.
func (e *Engine) RenderToFile(name string, data any, path string) error {
	if err := fsutil.CreateParentDirectory(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer file.Close()
	if err := e.Render(name, data, file); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to flush %s: %w", path, err)
	}
	return nil
}

// readFileContent exposes file inclusion to the templates. A missing file
// resolves to an empty string so optional artifacts can be referenced.
func readFileContent(path string) (string, error) {
	return fsutil.ReadFile(path)
}
