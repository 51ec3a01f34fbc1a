package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/genart/internal/colors"
	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/generator"
	"github.com/ivlev/genart/internal/palette"
	"github.com/ivlev/genart/internal/render"
	"github.com/ivlev/genart/internal/rng"
	"github.com/ivlev/genart/internal/scene"
	"github.com/ivlev/genart/internal/system"
)

// DefaultOutputDir receives artwork when no output path is configured.
const DefaultOutputDir = "output"

// benchmarkLog collects one line per reported run.
var benchmarkLog = "benchmark.log"

type Project struct {
	Config    *config.Config
	Record    config.Record
	Palette   palette.Palette
	Generator generator.Generator
	Logger    *slog.Logger
}

// NewProject resolves the palette and generator for cfg. A nil logger
// discards everything.
func NewProject(cfg *config.Config, rec config.Record, logger *slog.Logger) (*Project, error) {
	pal, err := palette.Lookup(cfg.General.ColorScheme)
	if err != nil {
		return nil, err
	}
	gen, err := generator.New(cfg.General.Module)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Project{
		Config:    cfg,
		Record:    rec,
		Palette:   pal,
		Generator: gen,
		Logger:    logger,
	}, nil
}

// Generate builds the scene for the configured seed.
func (p *Project) Generate() (*scene.Scene, error) {
	g := p.Config.General
	r := rng.New(g.Seed)

	sc, err := p.Generator.Generate(generator.Input{
		Config:  p.Config,
		Rand:    r,
		Palette: p.Palette,
	})
	if err != nil {
		return nil, fmt.Errorf("генерация %s (seed %d): %w", g.Module, g.Seed, err)
	}

	if g.HasBackground {
		bg, err := colors.Normalize(g.BackgroundColor)
		if err != nil {
			sc.Warn("background: invalid color %q, skipped", g.BackgroundColor)
		} else {
			sc.Background = bg
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	p.Logger.Debug("scene generated", "module", g.Module, "seed", r.Seed(), "draws", r.Draws(), "shapes", len(sc.Shapes))
	return sc, nil
}

// stats describes one or more finished runs.
type stats struct {
	Runs     int
	Shapes   int
	Bytes    int
	Generate time.Duration
	Render   time.Duration
}

func (s *stats) add(o stats) {
	s.Runs += o.Runs
	s.Shapes += o.Shapes
	s.Bytes += o.Bytes
	s.Generate += o.Generate
	s.Render += o.Render
}

// Run generates the artwork and writes it to the output path.
func (p *Project) Run(ctx context.Context) error {
	startTime := time.Now()
	g := p.Config.General

	fmt.Printf("[*] Модуль: %s | Seed: %d\n", g.Module, g.Seed)
	fmt.Printf("[*] Разрешение: %dx%d | Палитра: %s\n", g.Width, g.Height, g.ColorScheme)

	st, err := p.run(ctx)
	if err != nil {
		return err
	}

	if p.Config.ShowStats {
		p.report(st, time.Since(startTime))
	}
	return nil
}

// RunBatch renders one artwork per seed, at most workers at a time. Each
// output name carries its seed. The first failure cancels pending runs.
func (p *Project) RunBatch(ctx context.Context, seeds []int64, workers int) error {
	startTime := time.Now()
	if workers < 1 {
		workers = 1
	}

	fmt.Printf("[*] Модуль: %s | Серия: %d | Потоки: %d\n", p.Config.General.Module, len(seeds), workers)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var mu sync.Mutex
	var total stats
	done := 0

	for _, seed := range seeds {
		clone := p.withSeed(seed, p.batchOutputPath(seed))
		eg.Go(func() error {
			st, err := clone.run(ctx)
			if err != nil {
				return err
			}

			mu.Lock()
			total.add(st)
			done++
			fmt.Printf("[>] Ready: %d/%d\n", done, len(seeds))
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	if p.Config.ShowStats {
		p.report(total, time.Since(startTime))
	}
	return nil
}

func (p *Project) run(ctx context.Context) (stats, error) {
	var st stats
	if err := ctx.Err(); err != nil {
		return st, err
	}

	genStart := time.Now()
	sc, err := p.Generate()
	if err != nil {
		return st, err
	}
	st.Generate = time.Since(genStart)

	for _, w := range sc.Warnings {
		p.Logger.Warn(w, "module", sc.Module, "seed", sc.Seed)
	}

	if err := ctx.Err(); err != nil {
		return st, err
	}

	opts, err := p.renderOptions()
	if err != nil {
		return st, err
	}

	out := p.outputPath()
	renderStart := time.Now()
	n, err := writeSVG(out, sc, opts)
	if err != nil {
		return st, err
	}
	st.Render = time.Since(renderStart)
	st.Runs = 1
	st.Shapes = len(sc.Shapes)
	st.Bytes = n

	p.Logger.Debug("artwork written", "path", out, "shapes", st.Shapes, "bytes", st.Bytes)

	if p.Config.DumpScene {
		dumpPath := scene.GenerateScenePath(filepath.Dir(out), sc.Module, sc.Seed)
		if err := scene.WriteScene(sc, dumpPath); err != nil {
			return st, fmt.Errorf("ошибка сохранения сцены: %w", err)
		}
		fmt.Printf("[*] Сцена сохранена: %s\n", dumpPath)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", out)
	return st, nil
}

// Replay renders a scene dump as it was saved, without generating. An empty
// out writes the SVG next to the dump.
func Replay(ctx context.Context, scenePath, out string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sc, err := scene.ReadScene(scenePath)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения сцены: %w", err)
	}
	fmt.Printf("[*] Сцена: %s | Модуль: %s | Seed: %d\n", scenePath, sc.Module, sc.Seed)

	if out == "" {
		out = strings.TrimSuffix(scenePath, filepath.Ext(scenePath)) + ".svg"
	}
	opts := render.Options{Title: fmt.Sprintf("%s #%d", sc.Module, sc.Seed)}
	if _, err := writeSVG(out, sc, opts); err != nil {
		return "", err
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", out)
	return out, nil
}

// writeSVG renders sc into out and returns the document size.
func writeSVG(out string, sc *scene.Scene, opts render.Options) (int, error) {
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return 0, err
	}

	buf := system.GetBuffer()
	defer system.PutBuffer(buf)

	if err := render.Write(buf, sc, opts); err != nil {
		return 0, fmt.Errorf("ошибка рендеринга: %w", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func (p *Project) renderOptions() (render.Options, error) {
	g := p.Config.General
	opts := render.Options{
		Title:       fmt.Sprintf("%s #%d", g.Module, g.Seed),
		Description: p.Record.Name(),
	}
	if p.Config.Stamp {
		stamp, err := p.Stamp()
		if err != nil {
			return opts, err
		}
		opts.Stamp = stamp
	}
	return opts, nil
}

// Stamp identifies the run: module, seed and a fingerprint of the record.
func (p *Project) Stamp() (string, error) {
	fp, err := p.Record.Fingerprint()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("genart:%s:%d:%s", p.Config.General.Module, p.Config.General.Seed, fp[:12]), nil
}

func (p *Project) outputPath() string {
	if p.Config.OutputPath != "" {
		return p.Config.OutputPath
	}
	return p.defaultOutputPath(p.Config.General.Seed)
}

// batchOutputPath names the artwork of one batch seed. Default names already
// carry the seed, so only explicit paths get the suffix.
func (p *Project) batchOutputPath(seed int64) string {
	if p.Config.OutputPath == "" {
		return p.defaultOutputPath(seed)
	}
	return OutputName(p.Config.OutputPath, seed)
}

func (p *Project) defaultOutputPath(seed int64) string {
	name := fmt.Sprintf("%s_seed-%d.svg", slug(p.Config.General.Module), seed)
	return filepath.Join(DefaultOutputDir, name)
}

// withSeed copies the project for another seed and output path.
func (p *Project) withSeed(seed int64, out string) *Project {
	cfg := *p.Config
	cfg.General.Seed = seed
	cfg.OutputPath = out

	rec := p.Record.Clone()
	if rec == nil {
		rec = config.Record{}
	}
	rec["SEED"] = seed

	clone := *p
	clone.Config = &cfg
	clone.Record = rec
	return &clone
}

// OutputName inserts the seed before the extension of base.
func OutputName(base string, seed int64) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".svg"
	}
	return fmt.Sprintf("%s_seed-%d%s", stem, seed, ext)
}

// Seeds lists n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	seeds := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		seeds = append(seeds, first+int64(i))
	}
	return seeds
}

// Inspect logs the eased value of every numeric animation at time fraction
// t and returns how many were evaluated.
func (p *Project) Inspect(sc *scene.Scene, t float64) int {
	n := 0
	inspect := func(owner string, a scene.Animation) {
		v, err := a.ValueAt(t)
		if errors.Is(err, scene.ErrNotNumeric) {
			return
		}
		if err != nil {
			p.Logger.Warn("animation skipped", "owner", owner, "attribute", a.Attribute, "err", err)
			return
		}
		n++
		p.Logger.Info("animation", "owner", owner, "attribute", a.Attribute, "t", t, "value", v)
	}

	for i, sh := range sc.Shapes {
		owner := fmt.Sprintf("%s[%d]", sh.Kind, i)
		for _, a := range sh.Animations {
			inspect(owner, a)
		}
	}
	for _, f := range sc.Filters {
		walkPrimitives(f.ID, f.Primitives, inspect)
	}
	return n
}

func walkPrimitives(owner string, prims []scene.Primitive, fn func(string, scene.Animation)) {
	for _, pr := range prims {
		name := owner + "/" + pr.Name
		for _, a := range pr.Animations {
			fn(name, a)
		}
		walkPrimitives(name, pr.Children, fn)
	}
}

func (p *Project) report(st stats, totalTime time.Duration) {
	usage, err := system.ReadUsage()
	if err != nil {
		p.Logger.Warn("usage unavailable", "err", err)
	}

	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Module: %s\n"+
			"Artworks: %d | Shapes: %d | Size: %.1f KiB\n"+
			"Total Time: %.3fs\n"+
			"Generation: %.3fs\n"+
			"Rendering (SVG): %.3fs\n"+
			"Host Memory: %.0f/%.0f MiB (%.1f%%)\n"+
			"Process RSS: %.1f MiB\n"+
			"----------------------------\n",
		p.Config.BuildVersion, p.Config.General.Module,
		st.Runs, st.Shapes, float64(st.Bytes)/1024,
		totalTime.Seconds(), st.Generate.Seconds(), st.Render.Seconds(),
		system.MiB(usage.HostUsed), system.MiB(usage.HostTotal), usage.HostUsedPercent,
		system.MiB(usage.ProcessRSS),
	)
	fmt.Print(report)

	// Логирование в файл
	logEntry := fmt.Sprintf("[%s] Build: %s | Module: %s | Seed: %d | Runs: %d | Total: %.3fs | Generate: %.3fs | Render: %.3fs | RSS: %.1f MiB\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		p.Config.General.Module,
		p.Config.General.Seed,
		st.Runs,
		totalTime.Seconds(),
		st.Generate.Seconds(),
		st.Render.Seconds(),
		system.MiB(usage.ProcessRSS),
	)

	f, err := os.OpenFile(benchmarkLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
	}
}

func slug(module string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(module), " ", "-"))
}
