package scene

import (
	"github.com/passaro/ray-tracer/pkg/core"
	"github.com/passaro/ray-tracer/pkg/geometry"
	"github.com/passaro/ray-tracer/pkg/material"
)

// NewDefaultScene creates a small scene with three spheres on a ground sphere,
// plus a solid and a hollow glass sphere in front
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Distance to LookAt
	}

	s := newScene("default", defaultCameraConfig, cameraOverrides)

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, lambertianGreen))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver))
	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold))
	s.World.Add(geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass))

	// Hollow glass sphere: the negative radius flips the inner surface normals
	s.World.Add(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass))
	s.World.Add(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, materialGlass))
	s.World.Add(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue))

	return s
}
