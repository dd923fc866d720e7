package material

import (
	"github.com/passaro/ray-tracer/pkg/core"
)

// Material decides what happens to light arriving at a surface.
// Implementations are immutable and may be shared by any number of shapes
// and goroutines; all randomness comes from the sampler argument.
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false if the
	// ray was absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray, starting at the hit point
	Attenuation core.Color // Per-channel filter applied to light along the scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, always opposing the incoming ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether the geometric normal already opposed the ray
	Material  Material    // Material of the hit object, shared with the shape
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
