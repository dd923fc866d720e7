package scene

import (
	"github.com/passaro/ray-tracer/pkg/core"
	"github.com/passaro/ray-tracer/pkg/geometry"
	"github.com/passaro/ray-tracer/pkg/material"
)

const smallSphereRadius = 0.2

// randomSceneCamera is the camera used by both random sphere fields
func randomSceneCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10,
	}
}

// NewRandomScene creates the classic cover scene: a grey ground sphere, a field of
// small random spheres on a [-11, 11] grid and three large spheres. The same seed
// always yields the same scene.
func NewRandomScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene("random", randomSceneCamera(), cameraOverrides)
	sampler := core.NewSeededSampler(seed)

	addGround(s.World)
	addSphereField(s.World, sampler, 11)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}

// NewLargeRandomScene is the wider [-15, 15] variant with green diffuse and red
// mirror feature spheres
func NewLargeRandomScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene("random-large", randomSceneCamera(), cameraOverrides)
	sampler := core.NewSeededSampler(seed)

	addGround(s.World)
	addSphereField(s.World, sampler, 15)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.1, 0.5, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.1, 0.1), 0.0)))

	return s
}

func addGround(world *geometry.World) {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))
}

// addSphereField places one small sphere per grid cell in [-extent, extent]²:
// 80% diffuse, 15% metal, 5% glass
func addSphereField(world *geometry.World, sampler core.Sampler, extent int) {
	glass := material.NewDielectric(1.5)

	for a := -extent; a <= extent; a++ {
		for b := -extent; b <= extent; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+core.RandomInRange(sampler, 0, 0.9),
				smallSphereRadius,
				float64(b)+core.RandomInRange(sampler, 0, 0.9),
			)

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.4, 1)
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = glass
			}

			world.Add(geometry.NewSphere(center, smallSphereRadius, mat))
		}
	}
}
