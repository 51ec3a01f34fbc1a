package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAnimateKeys(t *testing.T) {
	a := Animate("z", 5, true, Loop("5", "500")...)

	if a.KeyTimesAttr() != "0;0.5;1" {
		t.Errorf("Expected key times 0;0.5;1, got %s", a.KeyTimesAttr())
	}
	if a.KeySplinesAttr() != "0.42 0 0.58 1;0.42 0 0.58 1" {
		t.Errorf("Unexpected key splines: %s", a.KeySplinesAttr())
	}
	if a.ValuesAttr() != "5;500;5" {
		t.Errorf("Unexpected values: %s", a.ValuesAttr())
	}
	if a.Repeat != RepeatIndefinite {
		t.Errorf("Expected indefinite repeat, got %s", a.Repeat)
	}
	if a.CalcMode() != "spline" {
		t.Errorf("Expected spline calc mode, got %q", a.CalcMode())
	}

	five := Animate("z", 5, false, "5", "500", "5", "500", "5")
	if five.KeyTimesAttr() != "0;0.25;0.5;0.75;1" {
		t.Errorf("Expected quarter key times, got %s", five.KeyTimesAttr())
	}
	if len(five.KeySplines) != 4 {
		t.Errorf("Expected 4 key splines, got %d", len(five.KeySplines))
	}
	if five.Repeat != RepeatOnce {
		t.Errorf("Expected single repeat, got %s", five.Repeat)
	}
}

func TestAnimateTransformTargetsTransform(t *testing.T) {
	a := AnimateTransform("translate", 5, true, Loop("0 0", "10 20")...)
	if a.Attribute != "transform" || a.Type != "translate" || a.Element != ElementAnimateTransform {
		t.Errorf("Unexpected transform animation: %+v", a)
	}

	r := Rotate(7.5, 300, 150)
	if r.Attribute != "transform" || r.From != "0 300 150" || r.To != "360 300 150" || r.Additive != "sum" {
		t.Errorf("Unexpected rotation: %+v", r)
	}
	if r.Repeat != RepeatIndefinite {
		t.Errorf("Rotation must repeat forever, got %s", r.Repeat)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Rotation should validate: %v", err)
	}
}

func TestAnimationValidate(t *testing.T) {
	good := Animate("cx", 5, true, Loop("10", "20")...)
	if err := good.Validate(); err != nil {
		t.Fatalf("Expected valid animation, got %v", err)
	}

	tests := []struct {
		name string
		edit func(a *Animation)
	}{
		{"no attribute", func(a *Animation) { a.Attribute = "" }},
		{"open loop", func(a *Animation) { a.Values = []string{"10", "20", "30"} }},
		{"key time count", func(a *Animation) { a.KeyTimes = a.KeyTimes[:2] }},
		{"non monotonic", func(a *Animation) { a.KeyTimes = []float64{0, 0.8, 0.5, 1}; a.Values = []string{"1", "2", "3", "1"} }},
		{"negative duration", func(a *Animation) { a.Duration = -1 }},
		{"spline count", func(a *Animation) { a.KeySplines = a.KeySplines[:1] }},
		{"transform attribute", func(a *Animation) { a.Element = ElementAnimateTransform }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Animate("cx", 5, true, Loop("10", "20")...)
			tt.edit(&a)
			if err := a.Validate(); !errors.Is(err, ErrInvalidAnimation) {
				t.Errorf("Expected ErrInvalidAnimation, got %v", err)
			}
		})
	}
}

func TestValueAt(t *testing.T) {
	a := Animate("cx", 5, true, Loop("0", "10")...)

	tests := []struct {
		at   float64
		want float64
	}{
		{0, 0},
		{0.25, 5},
		{0.5, 10},
		{0.75, 5},
		{1, 0},
		{2, 0},
	}

	for _, tt := range tests {
		got, err := a.ValueAt(tt.at)
		if err != nil {
			t.Fatalf("ValueAt(%v) failed: %v", tt.at, err)
		}
		if math.Abs(got[0]-tt.want) > 1e-9 {
			t.Errorf("At %.2f: expected %.2f, got %.6f", tt.at, tt.want, got[0])
		}
	}

	// easing is slower than linear near the keyframes
	got, _ := a.ValueAt(0.05)
	if got[0] >= 1 {
		t.Errorf("Expected eased value below linear 1.0, got %.4f", got[0])
	}
}

func TestValueAtPairs(t *testing.T) {
	a := AnimateTransform("translate", 5, true, Loop("0 0", "30 60")...)
	got, err := a.ValueAt(0.25)
	if err != nil {
		t.Fatalf("ValueAt failed: %v", err)
	}
	if len(got) != 2 || math.Abs(got[0]-15) > 1e-9 || math.Abs(got[1]-30) > 1e-9 {
		t.Errorf("Expected [15 30], got %v", got)
	}

	r := Rotate(5, 100, 100)
	got, err = r.ValueAt(0.5)
	if err != nil {
		t.Fatalf("ValueAt failed: %v", err)
	}
	if got[0] != 180 || got[1] != 100 {
		t.Errorf("Expected half turn, got %v", got)
	}
}

func TestValueAtPathData(t *testing.T) {
	a := Animate("d", 5, true, Loop("M 0,0 Z", "M 1,1 Z")...)
	if _, err := a.ValueAt(0.5); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("Expected ErrNotNumeric, got %v", err)
	}
}

func TestSceneValidate(t *testing.T) {
	sc := New(600, 400)
	sc.AddFilter(Filter{ID: "shadow", Primitives: []Primitive{Fe("feGaussianBlur", "in", "SourceAlpha")}})
	sc.AddGradient(Gradient{ID: "gradient-0", X2: 100, Y2: 100})
	sc.Add(
		Circle(10, 10, 5, URL("gradient-0")),
		Path("M 0,0 Z", "#ff0000").Animate(Animate("d", 5, true, Loop("M 0,0 Z", "M 1,1 Z")...)),
	)
	sc.Shapes[1].Filter = "shadow"

	if err := sc.Validate(); err != nil {
		t.Fatalf("Expected valid scene, got %v", err)
	}

	sc.Shapes[0].Fill = URL("gradient-9")
	if err := sc.Validate(); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene for missing gradient, got %v", err)
	}

	sc.Shapes[0].Fill = "#000000"
	sc.Shapes[1].Filter = "noiseFilter"
	if err := sc.Validate(); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene for missing filter, got %v", err)
	}
}

func TestAddFilterOnce(t *testing.T) {
	sc := New(10, 10)
	sc.AddFilter(Filter{ID: "noiseFilter"})
	sc.AddFilter(Filter{ID: "noiseFilter"})
	if len(sc.Filters) != 1 {
		t.Errorf("Expected 1 filter, got %d", len(sc.Filters))
	}
}

func TestSceneWriteRead(t *testing.T) {
	sc := New(600, 600)
	sc.Module = "Splotches"
	sc.Seed = 3
	sc.Background = "#ffffff"
	sc.Add(Path("M 1,2 Z", "#ff4800").Animate(Rotate(5, 300, 300)))
	sc.Warn("invalid color %q", "nope")

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := WriteScene(sc, path); err != nil {
		t.Fatalf("WriteScene failed: %v", err)
	}

	got, err := ReadScene(path)
	if err != nil {
		t.Fatalf("ReadScene failed: %v", err)
	}

	if got.Module != sc.Module || got.Seed != sc.Seed || got.Width != 600 {
		t.Errorf("Header mismatch: %+v", got)
	}
	if len(got.Shapes) != 1 || got.Shapes[0].Animations[0].To != "360 300 300" {
		t.Errorf("Shape mismatch: %+v", got.Shapes)
	}
	if len(got.Warnings) != 1 {
		t.Errorf("Expected 1 warning, got %d", len(got.Warnings))
	}
}

func TestReadSceneRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	data := "width: 100\nheight: 100\nshapes:\n  - kind: circle\n    filter: missing\n"
	if err := os.WriteFile(broken, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadScene(broken); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene for undefined filter, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("width: [1"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadScene(garbage); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene for malformed YAML, got %v", err)
	}

	if err := WriteScene(New(0, 10), filepath.Join(dir, "empty.yaml")); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected WriteScene to refuse an invalid scene, got %v", err)
	}
}

func TestGenerateScenePath(t *testing.T) {
	path := GenerateScenePath("output", "Radial Waves", 7)

	if !strings.HasPrefix(filepath.Base(path), "scene_radial-waves_seed-7_") {
		t.Errorf("Unexpected file name: %s", path)
	}
	if filepath.Dir(path) != "output" {
		t.Errorf("Path should be in output: %s", path)
	}
}

func TestFindLatestScene(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		filepath.Join(dir, "scene_waves_seed-1_2026-02-12_10-00-00.yaml"),
		filepath.Join(dir, "scene_waves_seed-2_2026-02-13_01-00-00.yaml"),
		filepath.Join(dir, "scene_waves_seed-3_2026-02-11_15-30-00.yaml"),
	}

	for i, f := range files {
		if err := os.WriteFile(f, []byte("width: 1"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		os.Chtimes(f, modTime, modTime)
	}

	latest, err := FindLatestScene(dir)
	if err != nil {
		t.Fatalf("FindLatestScene failed: %v", err)
	}
	if latest != files[2] {
		t.Errorf("Expected %s, got %s", files[2], latest)
	}

	if _, err := FindLatestScene(t.TempDir()); err == nil {
		t.Error("Expected error for empty directory")
	}
}
