package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const dumpPrefix = "scene_"

// GenerateScenePath creates a timestamped scene dump filename in dir
func GenerateScenePath(dir, module string, seed int64) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(module), " ", "-"))
	return filepath.Join(dir, fmt.Sprintf("%s%s_seed-%d_%s.yaml", dumpPrefix, slug, seed, timestamp))
}

// FindLatestScene returns the most recently modified scene dump in dir.
func FindLatestScene(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read scenes directory: %w", err)
	}

	var latest string
	var latestTime time.Time
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, dumpPrefix) || filepath.Ext(name) != ".yaml" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latest = filepath.Join(dir, name)
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no scene files found in %s", dir)
	}
	return latest, nil
}
