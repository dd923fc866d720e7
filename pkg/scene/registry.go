package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/passaro/ray-tracer/pkg/geometry"
)

// ErrUnknownScene is returned (wrapped) when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name passed to Create
	DisplayName string
	Description string
}

type builder func(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene

type entry struct {
	description string
	build       builder
}

var registry = map[string]entry{
	"random": {
		description: "ground sphere, 23x23 grid of random small spheres and three large spheres",
		build:       NewRandomScene,
	},
	"random-large": {
		description: "wider 31x31 random sphere field with green diffuse and red mirror spheres",
		build:       NewLargeRandomScene,
	},
	"default": {
		description: "three spheres, a solid and a hollow glass sphere on a green ground",
		build: func(_ int64, cameraOverrides ...geometry.CameraConfig) *Scene {
			return NewDefaultScene(cameraOverrides...)
		},
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for every registered scene, sorted by name
func List() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: registry[name].description,
		})
	}
	return scenes
}

// Create builds the named scene. The seed only affects randomly generated scenes.
func Create(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return e.build(seed, cameraOverrides...), nil
}

// titleCase converts scene names like "random-large" into "Random Large"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
