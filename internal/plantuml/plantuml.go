// SPDX-License-Identifier: MPL-2.0

// Package plantuml wraps the PlantUML jar: diagram rendering, sprite
// encoding and the initial download of the jar itself.
package plantuml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"pumlgen/pkg/fsutil"
)

// Defaults used when the configuration leaves them out.
const (
	DefaultVersion    = "1.2024.7"
	DefaultJarPath    = ".cache/plantuml-1.2024.7.jar"
	DefaultJavaBinary = "java"
)

// PlantUML drives the PlantUML jar through the java binary.
type PlantUML struct {
	javaBinary string
	jarPath    string
	version    string
}

// New returns a PlantUML wrapper. Empty arguments fall back to the defaults.
func New(javaBinary, jarPath, version string) *PlantUML {
	if javaBinary == "" {
		javaBinary = DefaultJavaBinary
	}
	if jarPath == "" {
		jarPath = DefaultJarPath
	}
	if version == "" {
		version = DefaultVersion
	}
	return &PlantUML{javaBinary: javaBinary, jarPath: jarPath, version: version}
}

// JarPath returns the path of the PlantUML jar.
func (p *PlantUML) JarPath() string {
	return p.jarPath
}

// Render renders the source file in place, forwarding the extra arguments to
// the jar.
func (p *PlantUML) Render(ctx context.Context, sourcePath string, extraArgs ...string) error {
	args := append([]string{"-jar", p.jarPath, sourcePath}, extraArgs...)
	cmd := exec.CommandContext(ctx, p.javaBinary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("unable to render %s: %w", sourcePath, err)
	}
	return nil
}

// EncodeSprite encodes the icon as a PlantUML sprite and returns the sprite
// definition.
func (p *PlantUML) EncodeSprite(ctx context.Context, iconPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, p.javaBinary, "-jar", p.jarPath, "-encodesprite", "16z", iconPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Stderr.Write(stderr.Bytes())
		return nil, fmt.Errorf("unable to encode the sprite of %s: %w", iconPath, err)
	}
	return stdout.Bytes(), nil
}

// Download fetches the PlantUML jar from the GitHub releases. An already
// present jar is kept as is.
func (p *PlantUML) Download(ctx context.Context) error {
	if fsutil.FileExists(p.jarPath) {
		log.Info("the PlantUML jar is already there", "path", p.jarPath)
		return nil
	}
	url := fmt.Sprintf(
		"https://github.com/plantuml/plantuml/releases/download/v%s/plantuml-%s.jar",
		p.version, p.version,
	)
	if err := fsutil.CreateParentDirectory(p.jarPath); err != nil {
		return err
	}
	log.Info("download the PlantUML jar", "url", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("unable to build the request for %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("unable to download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unable to download %s: status %s", url, resp.Status)
	}
	file, err := os.Create(p.jarPath)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", p.jarPath, err)
	}
	defer file.Close()
	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("unable to write %s: %w", p.jarPath, err)
	}
	return nil
}
