package geometry

import (
	"math"
	"testing"

	"github.com/passaro/ray-tracer/pkg/core"
)

func TestViewportCamera_GetRay(t *testing.T) {
	camera := NewViewportCamera(4.0, 2.0, 1.0)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, nil)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected origin at zero, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_LookAtBasis(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 1.5,
	}
	camera := NewCamera(config)

	forward := camera.Forward()
	expected := core.NewVec3(-13, -2, -3).Normalize()
	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}

	// The center ray points straight at the target
	center := camera.GetRay(0.5, 0.5, nil)
	if center.Direction.Normalize().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Center ray should point at LookAt, got %v", center.Direction)
	}
	if center.Origin != config.Center {
		t.Errorf("Pinhole ray should start at the camera center, got %v", center.Origin)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2.0,
	}
	camera := NewCamera(config)

	// vfov 90 => viewport height 2 at unit distance, width 4
	top := camera.GetRay(0.5, 1.0, nil)
	if top.Direction.Subtract(core.NewVec3(0, 1, -1)).Length() > 1e-9 {
		t.Errorf("Expected top-center direction (0, 1, -1), got %v", top.Direction)
	}
	right := camera.GetRay(1.0, 0.5, nil)
	if right.Direction.Subtract(core.NewVec3(2, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected right-center direction (2, 0, -1), got %v", right.Direction)
	}
}

func TestCamera_ThinLensJittersOriginAndKeepsFocus(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -10),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0.5,
		FocusDistance: 10,
	}
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(42)

	focusPoint := core.NewVec3(0, 0, -10)
	for i := 0; i < 50; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		if ray.Origin.Length() > config.Aperture/2+1e-12 {
			t.Fatalf("Origin %v lies outside the lens", ray.Origin)
		}
		if ray.Origin.Z != 0 {
			t.Fatalf("Lens samples should stay in the lens plane, got %v", ray.Origin)
		}
		// Every ray through the image center converges on the focal plane
		p := ray.At(1.0)
		if p.Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Ray %v misses the focus point, reached %v", ray, p)
		}
	}
}

func TestCamera_ZeroFocusDistanceUsesLookAt(t *testing.T) {
	withDistance := NewCamera(CameraConfig{
		Center: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -4), Up: core.NewVec3(0, 1, 0),
		VFov: 30, AspectRatio: 1, Aperture: 0.1, FocusDistance: 4,
	})
	automatic := NewCamera(CameraConfig{
		Center: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -4), Up: core.NewVec3(0, 1, 0),
		VFov: 30, AspectRatio: 1, Aperture: 0.1,
	})

	a := withDistance.GetRay(0.2, 0.7, nil)
	b := automatic.GetRay(0.2, 0.7, nil)
	if a.Direction.Subtract(b.Direction).Length() > 1e-12 {
		t.Errorf("Expected identical rays, got %v and %v", a.Direction, b.Direction)
	}
	if math.Abs(a.Direction.Z+4) > 1e-12 {
		t.Errorf("Image plane should sit at the focus distance, got z=%f", a.Direction.Z)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   1.5,
		Aperture:      0.1,
		FocusDistance: 10,
	}

	merged := MergeCameraConfig(base, CameraConfig{VFov: 45, AspectRatio: 2})

	if merged.VFov != 45 || merged.AspectRatio != 2 {
		t.Errorf("Expected overrides to apply, got vfov %v aspect %v", merged.VFov, merged.AspectRatio)
	}
	if merged.Center != base.Center || merged.Aperture != 0.1 || merged.FocusDistance != 10 {
		t.Errorf("Expected zero override fields to keep base values, got %+v", merged)
	}

	if got := MergeCameraConfig(base, CameraConfig{}); got != base {
		t.Errorf("Expected empty override to be a no-op, got %+v", got)
	}
}

func TestCamera_OriginIsLookFrom(t *testing.T) {
	center := core.NewVec3(13, 2, 3)
	camera := NewCamera(CameraConfig{
		Center:      center,
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 1.5,
	})

	if camera.Origin() != center {
		t.Errorf("Expected origin %v, got %v", center, camera.Origin())
	}
	if origin := NewViewportCamera(2, 2, 1).Origin(); origin != (core.Vec3{}) {
		t.Errorf("Expected viewport camera at the origin, got %v", origin)
	}
}
