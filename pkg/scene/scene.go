package scene

import (
	"github.com/passaro/ray-tracer/pkg/geometry"
	"github.com/passaro/ray-tracer/pkg/integrator"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	World        *geometry.World // Objects in the scene
	Background   integrator.Background
}

func newScene(name string, cameraConfig geometry.CameraConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Name:         name,
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        geometry.NewWorld(),
		Background:   integrator.DefaultBackground(),
	}
}

// SetCameraConfig replaces the camera configuration and rebuilds the camera.
// Unlike overrides passed to a constructor, zero fields are applied as given.
func (s *Scene) SetCameraConfig(config geometry.CameraConfig) {
	s.CameraConfig = config
	s.Camera = geometry.NewCamera(config)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetWorld returns the shapes to intersect
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackground returns the sky gradient seen by escaping rays
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
