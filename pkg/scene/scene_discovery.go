package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name passed to New
	DisplayName string // Human readable name
	Description string
}

type sceneFactory func(cameraOverrides ...renderer.CameraConfig) (*Scene, error)

type registeredScene struct {
	info    SceneInfo
	factory sceneFactory
}

var builtInScenes = map[string]registeredScene{
	"default": {
		info: SceneInfo{
			Description: "Diffuse sphere resting on a large ground sphere",
		},
		factory: NewDefaultScene,
	},
	"materials": {
		info: SceneInfo{
			Description: "Hollow glass, diffuse and fuzzy metal spheres side by side",
		},
		factory: NewMaterialsScene,
	},
	"random-spheres": {
		info: SceneInfo{
			Description: "Field of small random spheres around three large ones",
		},
		factory: func(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
			return NewRandomSpheresScene(renderer.DefaultSeed, cameraOverrides...)
		},
	},
}

// Names returns the IDs of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for name := range builtInScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for all built-in scenes, sorted by ID
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		info := builtInScenes[name].info
		info.ID = name
		info.DisplayName = titleCase(name)
		scenes = append(scenes, info)
	}
	return scenes
}

// New creates the named built-in scene with optional camera overrides
func New(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return entry.factory(cameraOverrides...)
}

// titleCase converts a scene ID to title case
// e.g., "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
