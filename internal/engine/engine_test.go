package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/generator"
	"github.com/ivlev/genart/internal/render"
	"github.com/ivlev/genart/internal/scene"
)

func newTestProject(t *testing.T, module string) *Project {
	t.Helper()
	cfg := config.Default()
	cfg.General.Module = module
	cfg.OutputPath = filepath.Join(t.TempDir(), "art", "piece.svg")

	p, err := NewProject(cfg, config.Record{"name": "test", "MODULE": module}, nil)
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	return p
}

func TestNewProject_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.General.ColorScheme = "Nope"
	if _, err := NewProject(cfg, nil, nil); err == nil {
		t.Error("expected unknown scheme error")
	}

	cfg = config.Default()
	cfg.General.Module = config.ModuleRadialWaves
	_, err := NewProject(cfg, nil, nil)
	if !errors.Is(err, generator.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, module := range []string{config.ModuleBubbles, config.ModuleFilters, config.ModuleWaves, config.ModuleSplotches} {
		p := newTestProject(t, module)

		var first, second bytes.Buffer
		for _, buf := range []*bytes.Buffer{&first, &second} {
			sc, err := p.Generate()
			if err != nil {
				t.Fatalf("%s: Generate: %v", module, err)
			}
			if err := render.Write(buf, sc, render.Options{}); err != nil {
				t.Fatalf("%s: Write: %v", module, err)
			}
		}

		if first.String() != second.String() {
			t.Errorf("%s: output differs between runs with the same seed", module)
		}
	}
}

func TestGenerate_Background(t *testing.T) {
	p := newTestProject(t, config.ModuleWaves)
	p.Config.General.BackgroundColor = "#FFF"

	sc, err := p.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if sc.Background != "#ffffff" {
		t.Errorf("expected #ffffff, got %q", sc.Background)
	}

	p.Config.General.BackgroundColor = "not-a-color"
	sc, err = p.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if sc.Background != "" {
		t.Errorf("expected no background, got %q", sc.Background)
	}
	if len(sc.Warnings) != 1 || !strings.Contains(sc.Warnings[0], "background") {
		t.Errorf("expected one background warning, got %v", sc.Warnings)
	}

	p.Config.General.HasBackground = false
	sc, err = p.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if sc.Background != "" || len(sc.Warnings) != 0 {
		t.Errorf("expected no background and no warnings, got %q %v", sc.Background, sc.Warnings)
	}
}

func TestRun_WritesArtworkAndScene(t *testing.T) {
	p := newTestProject(t, config.ModuleSplotches)
	p.Config.DumpScene = true

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(p.Config.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "<svg") || !strings.Contains(string(data), "<title>Splotches #3</title>") {
		t.Errorf("unexpected document head: %.200s", data)
	}
	if !strings.Contains(string(data), "<desc>test</desc>") {
		t.Error("expected preset name as description")
	}

	dump, err := scene.FindLatestScene(filepath.Dir(p.Config.OutputPath))
	if err != nil {
		t.Fatalf("FindLatestScene: %v", err)
	}
	sc, err := scene.ReadScene(dump)
	if err != nil {
		t.Fatalf("ReadScene: %v", err)
	}
	if sc.Module != config.ModuleSplotches || sc.Seed != 3 {
		t.Errorf("unexpected dump header: %s %d", sc.Module, sc.Seed)
	}
	if len(sc.Shapes) == 0 {
		t.Error("expected shapes in dump")
	}
}

func TestRun_Stamp(t *testing.T) {
	p := newTestProject(t, config.ModuleBubbles)
	p.Config.Stamp = true

	stamp, err := p.Stamp()
	if err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if !strings.HasPrefix(stamp, "genart:Bubbles:3:") || len(stamp) != len("genart:Bubbles:3:")+12 {
		t.Errorf("unexpected stamp %q", stamp)
	}

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(p.Config.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `id="stamp"`) {
		t.Error("expected stamp group")
	}
}

func TestRun_Cancelled(t *testing.T) {
	p := newTestProject(t, config.ModuleWaves)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(p.Config.OutputPath); !os.IsNotExist(err) {
		t.Error("expected no output for a cancelled run")
	}
}

func TestRun_Stats(t *testing.T) {
	old := benchmarkLog
	benchmarkLog = filepath.Join(t.TempDir(), "benchmark.log")
	defer func() { benchmarkLog = old }()

	p := newTestProject(t, config.ModuleFilters)
	p.Config.ShowStats = true
	p.Config.BuildVersion = "test-build"

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(benchmarkLog)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "Build: test-build") || !strings.Contains(line, "Module: Filters") || !strings.Contains(line, "Runs: 1") {
		t.Errorf("unexpected benchmark entry: %s", line)
	}
}

func TestRunBatch(t *testing.T) {
	p := newTestProject(t, config.ModuleBubbles)
	seeds := Seeds(10, 4)

	if err := p.RunBatch(context.Background(), seeds, 2); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}

	outputs := make(map[string]bool)
	for _, seed := range seeds {
		name := OutputName(p.Config.OutputPath, seed)
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("missing output for seed %d: %v", seed, err)
		}
		outputs[string(data)] = true
	}
	if len(outputs) != len(seeds) {
		t.Errorf("expected %d distinct artworks, got %d", len(seeds), len(outputs))
	}

	if p.Config.General.Seed != 3 || p.Record["SEED"] != nil {
		t.Error("batch must not modify the original project")
	}
}

func TestRunBatch_DefaultOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	p := newTestProject(t, config.ModuleSplotches)
	p.Config.OutputPath = ""

	if err := p.RunBatch(context.Background(), []int64{4, 5}, 2); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}

	for _, name := range []string{"splotches_seed-4.svg", "splotches_seed-5.svg"} {
		if _, err := os.Stat(filepath.Join(DefaultOutputDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	entries, err := os.ReadDir(DefaultOutputDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.Count(e.Name(), "_seed-") != 1 {
			t.Errorf("seed repeated in %s", e.Name())
		}
	}
}

func TestRunBatch_MatchesSingleRun(t *testing.T) {
	p := newTestProject(t, config.ModuleWaves)
	if err := p.RunBatch(context.Background(), []int64{7}, 0); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	batch, err := os.ReadFile(OutputName(p.Config.OutputPath, 7))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	single := p.withSeed(7, filepath.Join(t.TempDir(), "single.svg"))
	if err := single.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(single.Config.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(batch) != string(data) {
		t.Error("batch output differs from a single run with the same seed")
	}
}

func TestRunBatch_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	p := newTestProject(t, config.ModuleWaves)
	p.Config.OutputPath = filepath.Join(blocker, "art.svg")

	if err := p.RunBatch(context.Background(), Seeds(1, 3), 3); err == nil {
		t.Error("expected an error when the output directory cannot be created")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		base string
		seed int64
		want string
	}{
		{"output/art.svg", 5, "output/art_seed-5.svg"},
		{"art", 12, "art_seed-12.svg"},
		{"dir.v2/art.SVG", 0, "dir.v2/art_seed-0.SVG"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.base, tt.seed); got != tt.want {
			t.Errorf("OutputName(%q, %d) = %q, want %q", tt.base, tt.seed, got, tt.want)
		}
	}
}

func TestSeeds(t *testing.T) {
	got := Seeds(3, 3)
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("unexpected seeds %v", got)
	}
	if len(Seeds(1, 0)) != 0 {
		t.Error("expected no seeds")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	p := newTestProject(t, config.ModuleSplotches)
	p.Config.OutputPath = ""
	want := filepath.Join(DefaultOutputDir, "splotches_seed-3.svg")
	if got := p.outputPath(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInspect(t *testing.T) {
	p := newTestProject(t, config.ModuleFilters)
	sc, err := p.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := p.Inspect(sc, 0.5); n == 0 {
		t.Error("expected numeric animations in the filters scene")
	}

	empty := scene.New(10, 10)
	if n := p.Inspect(empty, 0.5); n != 0 {
		t.Errorf("expected 0 animations, got %d", n)
	}
}

func TestReplay(t *testing.T) {
	p := newTestProject(t, config.ModuleSplotches)
	p.Record = config.Record{}
	p.Config.DumpScene = true

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	original, err := os.ReadFile(p.Config.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	dump, err := scene.FindLatestScene(filepath.Dir(p.Config.OutputPath))
	if err != nil {
		t.Fatalf("FindLatestScene: %v", err)
	}

	out, err := Replay(context.Background(), dump, "")
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if out != strings.TrimSuffix(dump, ".yaml")+".svg" {
		t.Errorf("unexpected replay path %s", out)
	}

	replayed, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(replayed) != string(original) {
		t.Error("replayed artwork differs from the generated one")
	}
}

func TestReplay_Invalid(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "scene_broken.yaml")
	data := "width: 100\nheight: 100\nshapes:\n  - kind: circle\n    fill: url(#missing)\n"
	if err := os.WriteFile(dump, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.svg")
	if _, err := Replay(context.Background(), dump, out); !errors.Is(err, scene.ErrInvalidScene) {
		t.Errorf("expected ErrInvalidScene, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("expected no output for an invalid scene")
	}
}

func TestGenerate_DebugLog(t *testing.T) {
	var logs bytes.Buffer
	p := newTestProject(t, config.ModuleBubbles)
	p.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := p.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	line := logs.String()
	if !strings.Contains(line, "seed=3") || !strings.Contains(line, "draws=") {
		t.Errorf("unexpected debug log: %s", line)
	}
}
