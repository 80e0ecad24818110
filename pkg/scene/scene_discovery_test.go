package scene

import (
	"errors"
	"sort"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"random-spheres", "Random Spheres"},
		{"dragon_gold", "Dragon Gold"},
		{"default", "Default"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}

	for _, expected := range []string{"default", "materials", "random-spheres"} {
		found := false
		for _, name := range names {
			if name == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected scene %q to be registered, got %v", expected, names)
		}
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(Names()) {
		t.Fatalf("Expected %d scenes, got %d", len(Names()), len(scenes))
	}

	for _, info := range scenes {
		if info.ID == "" || info.DisplayName == "" || info.Description == "" {
			t.Errorf("Incomplete scene info: %+v", info)
		}
	}
}

func TestNew_AllRegisteredScenes(t *testing.T) {
	override := renderer.CameraConfig{Width: 32, Height: 16}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, override)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.SamplingConfig.Width != 32 || s.SamplingConfig.Height != 16 {
				t.Errorf("Expected camera override in sampling config, got %+v", s.SamplingConfig)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Expected a populated world")
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	for _, name := range []string{"", "cornell-box", "DEFAULT"} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err == nil {
				t.Fatal("Expected error for unknown scene")
			}
			if !errors.Is(err, ErrUnknownScene) {
				t.Errorf("Expected ErrUnknownScene, got %v", err)
			}
			if s != nil {
				t.Error("Expected nil scene on error")
			}
		})
	}
}
