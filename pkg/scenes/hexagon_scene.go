package scenes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/material"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
	"github.com/mboyd/go-whitted-raytracer/pkg/scene"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
)

// NewHexagonScene builds a hexagonal ring out of nested groups, each
// side a corner sphere joined to an edge cylinder. It exercises group
// transform composition.
func NewHexagonScene(width, height int) (*scene.World, *scene.Camera, error) {
	w := scene.NewWorld()

	floor := shapes.NewPlane()
	floorMat := material.Default()
	floorMat.Pattern = material.NewRingPattern(
		canvas.NewColor(0.75, 0.75, 0.85),
		canvas.NewColor(0.4, 0.4, 0.55),
	)
	floorMat.Specular = 0
	floorMat.Reflective = 0.15
	floor.SetMaterial(floorMat)
	w.AddShape(floor)

	hex, err := buildHexagon()
	if err != nil {
		return nil, nil, err
	}
	w.AddShape(hex)

	w.AddLight(material.NewPointLight(
		math.NewPoint(-6, 8, -8),
		canvas.White(),
	))

	cam := scene.NewCamera(width, height, gomath.Pi/3)
	if err := cam.SetTransform(scene.ViewTransform(
		math.NewPoint(0, 3, -4),
		math.NewPoint(0, 0.6, 0),
		math.NewVector(0, 1, 0),
	)); err != nil {
		return nil, nil, err
	}
	return w, cam, nil
}

func buildHexagon() (*shapes.Group, error) {
	shiny := material.Default()
	shiny.Color = canvas.NewColor(0.9, 0.7, 0.2)
	shiny.Specular = 0.8
	shiny.Shininess = 250
	shiny.Reflective = 0.2

	hex := shapes.NewGroup()
	if err := hex.SetTransform(math.Translation(0, 0.75, 0)); err != nil {
		return nil, err
	}
	for n := 0; n < 6; n++ {
		side, err := hexagonSide(float64(n)*gomath.Pi/3, shiny)
		if err != nil {
			return nil, err
		}
		hex.AddChild(side)
	}
	return hex, nil
}

func hexagonSide(rotation float64, m material.Material) (*shapes.Group, error) {
	corner := shapes.NewSphere()
	if err := corner.SetTransform(
		math.Translation(0, 0, -1).Multiply(math.Scaling(0.25, 0.25, 0.25)),
	); err != nil {
		return nil, err
	}
	corner.SetMaterial(m)

	edge := shapes.NewCylinder()
	edge.Minimum = 0
	edge.Maximum = 1
	if err := edge.SetTransform(
		math.Translation(0, 0, -1).
			Multiply(math.RotationY(-gomath.Pi / 6)).
			Multiply(math.RotationZ(-gomath.Pi / 2)).
			Multiply(math.Scaling(0.25, 1, 0.25)),
	); err != nil {
		return nil, err
	}
	edge.SetMaterial(m)

	side := shapes.NewGroup()
	if err := side.SetTransform(math.RotationY(rotation)); err != nil {
		return nil, err
	}
	side.AddChild(corner)
	side.AddChild(edge)
	return side, nil
}
