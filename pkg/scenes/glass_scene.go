package scenes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/material"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
	"github.com/mboyd/go-whitted-raytracer/pkg/scene"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
)

// NewGlassScene is a hollow glass sphere over a checkered floor, lit
// from above. Refraction, the air pocket, and the Fresnel falloff near
// the silhouette carry the image.
func NewGlassScene(width, height int) (*scene.World, *scene.Camera, error) {
	w := scene.NewWorld()

	floor := shapes.NewPlane()
	if err := floor.SetTransform(math.Translation(0, -1, 0)); err != nil {
		return nil, nil, err
	}
	floorMat := material.Default()
	checkers := material.NewCheckerPattern(
		canvas.NewColor(0.85, 0.85, 0.85),
		canvas.NewColor(0.15, 0.15, 0.15),
	)
	floorMat.Pattern = checkers
	floorMat.Ambient = 0.8
	floorMat.Diffuse = 0.2
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)
	w.AddShape(floor)

	outer := shapes.NewGlassSphere()
	outerMat := outer.Material()
	outerMat.Color = canvas.NewColor(0.05, 0.05, 0.05)
	outerMat.Ambient = 0
	outerMat.Diffuse = 0.05
	outerMat.Specular = 0.9
	outerMat.Shininess = 300
	outerMat.Reflective = 0.9
	outer.SetMaterial(outerMat)
	w.AddShape(outer)

	// Air pocket inside the glass shell.
	inner := shapes.NewSphere()
	if err := inner.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		return nil, nil, err
	}
	innerMat := outerMat
	innerMat.RefractiveIndex = 1.0
	inner.SetMaterial(innerMat)
	w.AddShape(inner)

	w.AddLight(material.NewPointLight(
		math.NewPoint(2, 10, -5),
		canvas.NewColor(0.9, 0.9, 0.9),
	))

	cam := scene.NewCamera(width, height, gomath.Pi/6)
	if err := cam.SetTransform(scene.ViewTransform(
		math.NewPoint(0, 2.5, 0),
		math.NewPoint(0, 0, 0),
		math.NewVector(1, 0, 0),
	)); err != nil {
		return nil, nil, err
	}
	return w, cam, nil
}
