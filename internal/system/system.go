package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

var presetExtensions = []string{".yaml", ".yml"}

// FindLatestPreset returns the most recently modified preset file in dir.
func FindLatestPreset(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !isPreset(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено файлов пресетов", dir)
	}

	return latestFile, nil
}

func isPreset(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range presetExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Usage is a snapshot of host memory and the memory held by this process.
type Usage struct {
	HostTotal       uint64
	HostUsed        uint64
	HostUsedPercent float64
	ProcessRSS      uint64
}

// ReadUsage queries the host and the current process.
func ReadUsage() (Usage, error) {
	var u Usage

	vm, err := mem.VirtualMemory()
	if err != nil {
		return u, fmt.Errorf("не удалось получить память хоста: %w", err)
	}
	u.HostTotal = vm.Total
	u.HostUsed = vm.Used
	u.HostUsedPercent = vm.UsedPercent

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return u, fmt.Errorf("не удалось открыть процесс: %w", err)
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		return u, fmt.Errorf("не удалось получить память процесса: %w", err)
	}
	u.ProcessRSS = info.RSS

	return u, nil
}

// MiB converts a byte count for reports.
func MiB(b uint64) float64 {
	return float64(b) / (1 << 20)
}
