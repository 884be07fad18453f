package scenes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/material"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
	"github.com/mboyd/go-whitted-raytracer/pkg/scene"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
)

// NewDefaultScene creates three spheres over a checkered floor with a
// striped backdrop. It exercises patterns, shadows, and reflection.
func NewDefaultScene(width, height int) (*scene.World, *scene.Camera, error) {
	w := scene.NewWorld()

	floor := shapes.NewPlane()
	floorMat := material.Default()
	floorPattern := material.NewCheckerPattern(
		canvas.NewColor(0.9, 0.9, 0.9),
		canvas.NewColor(0.35, 0.35, 0.35),
	)
	floorMat.Pattern = floorPattern
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floor.SetMaterial(floorMat)
	w.AddShape(floor)

	backdrop := shapes.NewPlane()
	if err := backdrop.SetTransform(
		math.Translation(0, 0, 6).Multiply(math.RotationX(gomath.Pi / 2)),
	); err != nil {
		return nil, nil, err
	}
	backdropMat := material.Default()
	stripes := material.NewStripePattern(
		canvas.NewColor(0.6, 0.6, 0.75),
		canvas.NewColor(0.45, 0.45, 0.6),
	)
	if err := stripes.SetTransform(math.RotationY(gomath.Pi / 4).Multiply(math.Scaling(0.5, 0.5, 0.5))); err != nil {
		return nil, nil, err
	}
	backdropMat.Pattern = stripes
	backdropMat.Specular = 0
	backdrop.SetMaterial(backdropMat)
	w.AddShape(backdrop)

	middle := shapes.NewSphere()
	if err := middle.SetTransform(math.Translation(-0.5, 1, 0.5)); err != nil {
		return nil, nil, err
	}
	middleMat := material.Default()
	middleMat.Color = canvas.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflective = 0.25
	middle.SetMaterial(middleMat)
	w.AddShape(middle)

	right := shapes.NewSphere()
	if err := right.SetTransform(
		math.Translation(1.5, 0.5, -0.5).Multiply(math.Scaling(0.5, 0.5, 0.5)),
	); err != nil {
		return nil, nil, err
	}
	rightMat := material.Default()
	gradient := material.NewGradientPattern(
		canvas.NewColor(1, 0.3, 0.3),
		canvas.NewColor(0.3, 0.3, 1),
	)
	if err := gradient.SetTransform(
		math.Translation(1, 0, 0).Multiply(math.Scaling(2, 2, 2)),
	); err != nil {
		return nil, nil, err
	}
	rightMat.Pattern = gradient
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)
	w.AddShape(right)

	left := shapes.NewSphere()
	if err := left.SetTransform(
		math.Translation(-1.5, 0.33, -0.75).Multiply(math.Scaling(0.33, 0.33, 0.33)),
	); err != nil {
		return nil, nil, err
	}
	leftMat := material.Default()
	leftMat.Color = canvas.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)
	w.AddShape(left)

	w.AddLight(material.NewPointLight(
		math.NewPoint(-10, 10, -10),
		canvas.White(),
	))

	cam := scene.NewCamera(width, height, gomath.Pi/3)
	if err := cam.SetTransform(scene.ViewTransform(
		math.NewPoint(0, 1.5, -5),
		math.NewPoint(0, 1, 0),
		math.NewVector(0, 1, 0),
	)); err != nil {
		return nil, nil, err
	}
	return w, cam, nil
}
