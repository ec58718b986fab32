// SPDX-License-Identifier: MPL-2.0

package diagram

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type recordingRenderer struct {
	mu       sync.Mutex
	rendered []string
}

func (r *recordingRenderer) Render(_ context.Context, sourcePath string, _ ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rendered = append(r.rendered, sourcePath)
	return nil
}

func writeSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("@startuml\nA -> B\n@enduml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRendersChangedSources(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := Config{
		SourceDirectory: filepath.Join(root, "source"),
		CacheDirectory:  filepath.Join(root, ".cache"),
	}
	diagramA := writeSource(t, cfg.SourceDirectory, "diagram_a.puml")
	writeSource(t, cfg.SourceDirectory, "folder/diagram_b.puml")

	renderer := &recordingRenderer{}
	if err := Run(context.Background(), cfg, renderer, false); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := len(renderer.rendered), 2; got != want {
		t.Fatalf("rendered %d sources, want %d: %v", got, want, renderer.rendered)
	}

	// nothing changed, the second run renders nothing
	renderer.rendered = nil
	if err := Run(context.Background(), cfg, renderer, false); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if len(renderer.rendered) != 0 {
		t.Errorf("unchanged sources were rendered: %v", renderer.rendered)
	}

	// a touched source is rendered again, the untouched one is not
	future := time.Now().Add(time.Minute)
	if err := os.Chtimes(diagramA, future, future); err != nil {
		t.Fatal(err)
	}
	renderer.rendered = nil
	if err := Run(context.Background(), cfg, renderer, false); err != nil {
		t.Fatalf("third Run() error = %v", err)
	}
	if got, want := len(renderer.rendered), 1; got != want {
		t.Fatalf("rendered %d sources, want %d: %v", got, want, renderer.rendered)
	}
	if renderer.rendered[0] != diagramA {
		t.Errorf("rendered %s, want %s", renderer.rendered[0], diagramA)
	}
}

func TestRunForceRendersAll(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := Config{
		SourceDirectory: filepath.Join(root, "source"),
		CacheDirectory:  filepath.Join(root, ".cache"),
	}
	writeSource(t, cfg.SourceDirectory, "diagram_a.puml")

	renderer := &recordingRenderer{}
	if err := Run(context.Background(), cfg, renderer, false); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	renderer.rendered = nil
	if err := Run(context.Background(), cfg, renderer, true); err != nil {
		t.Fatalf("forced Run() error = %v", err)
	}
	if got, want := len(renderer.rendered), 1; got != want {
		t.Errorf("rendered %d sources, want %d", got, want)
	}
}

func TestRunIgnoresCorruptWatermark(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := Config{
		SourceDirectory: filepath.Join(root, "source"),
		CacheDirectory:  filepath.Join(root, ".cache"),
	}
	writeSource(t, cfg.SourceDirectory, "diagram_a.puml")
	if err := os.MkdirAll(cfg.CacheDirectory, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.CacheDirectory, watermarkFile), []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	renderer := &recordingRenderer{}
	if err := Run(context.Background(), cfg, renderer, false); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := len(renderer.rendered), 1; got != want {
		t.Errorf("rendered %d sources, want %d", got, want)
	}
}
