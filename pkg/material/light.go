package material

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// PointLight is a dimensionless light source at a position in world space.
type PointLight struct {
	Position  math.Tuple
	Intensity canvas.Color
}

// NewPointLight creates a point light.
func NewPointLight(position math.Tuple, intensity canvas.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting computes the Phong model contribution of one light at a point.
// Ambient always contributes; diffuse and specular are zeroed when the
// point is shadowed or the light is behind the surface.
func Lighting(m Material, object Surface, light PointLight, point, eye, normal math.Tuple, inShadow bool) canvas.Color {
	effective := m.colorAt(object, point).Multiply(light.Intensity)
	ambient := effective.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()

	// cosine of the angle between light direction and surface normal;
	// negative means the light is on the other side of the surface
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	specular := canvas.Black()
	reflectv := lightv.Negate().Reflect(normal)
	if reflectDotEye := reflectv.Dot(eye); reflectDotEye > 0 {
		factor := gomath.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
