package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/ivlev/genart/internal/config"
	"github.com/ivlev/genart/internal/engine"
	"github.com/ivlev/genart/internal/scene"
	"github.com/ivlev/genart/internal/system"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const presetsDir = "input/presets"

// setFlags collects repeated -set KEY=VALUE options.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ", ") }

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	// Создаем нужные директории, если их нет
	dirs := []string{presetsDir, engine.DefaultOutputDir}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	var sets setFlags
	presetsPtr := flag.String("presets", "", "Файл пресетов YAML (по умолчанию: самый свежий файл в input/presets/, иначе встроенные)")
	presetPtr := flag.String("preset", "Slow Splotches", "Имя пресета")
	modulePtr := flag.String("module", "", "Модуль: "+strings.Join(config.Modules, ", "))
	seedPtr := flag.Int64("seed", 0, "Seed генератора (переопределяет SEED)")
	batchPtr := flag.Int("batch", 1, "Количество работ с последовательными seed")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки для -batch")
	widthPtr := flag.Int("width", 0, "Ширина (0 - из пресета)")
	heightPtr := flag.Int("height", 0, "Высота (0 - из пресета)")
	outputPtr := flag.String("output", "", "Путь к SVG (если пусто, генерируется автоматически в output/)")
	flag.Var(&sets, "set", "Переопределение параметра KEY=VALUE (можно повторять)")
	dumpPtr := flag.Bool("dump", false, "Сохранить сцену в YAML рядом с результатом")
	stampPtr := flag.Bool("stamp", false, "Добавить QR-код с отпечатком запуска")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности")
	inspectPtr := flag.Float64("inspect", -1, "Вывести значения анимаций в доле периода 0..1 вместо записи SVG")
	replayPtr := flag.String("replay", "", "Отрисовать сохраненную сцену YAML вместо генерации (latest - самая свежая в output/)")
	listPtr := flag.Bool("list-presets", false, "Показать доступные пресеты")
	verbosePtr := flag.Bool("verbose", false, "Подробный лог")

	flag.Parse()

	level := slog.LevelInfo
	if *verbosePtr {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *replayPtr != "" {
		replay(*replayPtr, *outputPtr)
		return
	}

	presets := loadPresets(*presetsPtr)

	if *listPtr {
		for _, name := range presets.Names() {
			fmt.Println(name)
		}
		return
	}

	rec, err := presets.Find(*presetPtr)
	if err != nil {
		log.Fatalf("[-] Ошибка: %v. Доступные пресеты: %s", err, strings.Join(presets.Names(), ", "))
	}
	fmt.Printf("[*] Пресет: %s\n", rec.Name())

	overrides, err := config.ParseOverrides(sets)
	if err != nil {
		log.Fatalf("[-] Ошибка параметров: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			overrides["SEED"] = *seedPtr
		case "module":
			overrides["MODULE"] = *modulePtr
		case "width":
			overrides["W"] = *widthPtr
		case "height":
			overrides["H"] = *heightPtr
		}
	})
	rec = rec.Merge(overrides)

	cfg, err := config.Load(rec)
	if err != nil {
		log.Fatalf("[-] Ошибка конфигурации: %v", err)
	}
	cfg.OutputPath = *outputPtr
	cfg.Workers = *workersPtr
	cfg.DumpScene = *dumpPtr
	cfg.Stamp = *stampPtr
	cfg.ShowStats = *statsPtr
	cfg.BuildVersion = version

	project, err := engine.NewProject(cfg, rec, logger)
	if err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	if *inspectPtr >= 0 {
		sc, err := project.Generate()
		if err != nil {
			log.Fatalf("[-] Ошибка генерации: %v", err)
		}
		n := project.Inspect(sc, *inspectPtr)
		fmt.Printf("[*] Анимаций: %d\n", n)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *batchPtr > 1 {
		seeds := engine.Seeds(cfg.General.Seed, *batchPtr)
		if err := project.RunBatch(ctx, seeds, cfg.Workers); err != nil {
			log.Fatalf("[-] Ошибка серии: %v", err)
		}
		return
	}

	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}
}

// replay renders a scene dump; "latest" picks the newest dump in output/.
func replay(path, out string) {
	if path == "latest" {
		latest, err := scene.FindLatestScene(engine.DefaultOutputDir)
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Сохраните сцену флагом -dump", err)
		}
		path = latest
		fmt.Printf("[*] Выбрана сцена: %s\n", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := engine.Replay(ctx, path, out); err != nil {
		log.Fatalf("[-] Ошибка воспроизведения: %v", err)
	}
}

// loadPresets reads the explicit file, then the newest file in
// input/presets, then the embedded presets.
func loadPresets(path string) config.Presets {
	if path == "" {
		latest, err := system.FindLatestPreset(presetsDir)
		if err != nil {
			return config.DefaultPresets()
		}
		path = latest
		fmt.Printf("[*] Выбран файл пресетов: %s\n", path)
	}

	presets, err := config.LoadPresets(path)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения пресетов: %v", err)
	}
	return presets
}
