package scenes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/material"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
	"github.com/mboyd/go-whitted-raytracer/pkg/scene"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
)

// NewCSGScene shows all three set operations: a lens (intersection of
// two spheres), a die body (cube minus a carving sphere), and a pipe
// fitting (union of two cylinders).
func NewCSGScene(width, height int) (*scene.World, *scene.Camera, error) {
	w := scene.NewWorld()

	floor := shapes.NewPlane()
	floorMat := material.Default()
	floorMat.Pattern = material.NewCheckerPattern(
		canvas.NewColor(0.8, 0.8, 0.8),
		canvas.NewColor(0.4, 0.4, 0.4),
	)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)
	w.AddShape(floor)

	lens, err := buildLens()
	if err != nil {
		return nil, nil, err
	}
	w.AddShape(lens)

	die, err := buildDie()
	if err != nil {
		return nil, nil, err
	}
	w.AddShape(die)

	pipe, err := buildPipe()
	if err != nil {
		return nil, nil, err
	}
	w.AddShape(pipe)

	w.AddLight(material.NewPointLight(
		math.NewPoint(-8, 10, -10),
		canvas.White(),
	))

	cam := scene.NewCamera(width, height, gomath.Pi/3)
	if err := cam.SetTransform(scene.ViewTransform(
		math.NewPoint(0, 2.5, -6),
		math.NewPoint(0, 0.8, 0),
		math.NewVector(0, 1, 0),
	)); err != nil {
		return nil, nil, err
	}
	return w, cam, nil
}

func buildLens() (shapes.Shape, error) {
	a := shapes.NewSphere()
	b := shapes.NewSphere()
	if err := b.SetTransform(math.Translation(0, 0, 0.8)); err != nil {
		return nil, err
	}
	glassy := material.Default()
	glassy.Color = canvas.NewColor(0.3, 0.5, 0.9)
	glassy.Diffuse = 0.4
	glassy.Reflective = 0.3
	a.SetMaterial(glassy)
	b.SetMaterial(glassy)

	lens := shapes.NewCSG(shapes.Intersect, a, b)
	if err := lens.SetTransform(math.Translation(-2.2, 1, 0.6)); err != nil {
		return nil, err
	}
	return lens, nil
}

func buildDie() (shapes.Shape, error) {
	body := shapes.NewCube()
	bodyMat := material.Default()
	bodyMat.Color = canvas.NewColor(0.9, 0.2, 0.2)
	bodyMat.Reflective = 0.05
	body.SetMaterial(bodyMat)

	pip := shapes.NewSphere()
	if err := pip.SetTransform(
		math.Translation(0, 1, 0).Multiply(math.Scaling(0.55, 0.55, 0.55)),
	); err != nil {
		return nil, err
	}
	pipMat := material.Default()
	pipMat.Color = canvas.NewColor(0.95, 0.95, 0.95)
	pip.SetMaterial(pipMat)

	die := shapes.NewCSG(shapes.Difference, body, pip)
	if err := die.SetTransform(
		math.Translation(0, 1, 0.5).Multiply(math.RotationY(gomath.Pi / 6)),
	); err != nil {
		return nil, err
	}
	return die, nil
}

func buildPipe() (shapes.Shape, error) {
	upright := shapes.NewCylinder()
	upright.Minimum = -1
	upright.Maximum = 1
	upright.Closed = true

	crossbar := shapes.NewCylinder()
	crossbar.Minimum = -1
	crossbar.Maximum = 1
	crossbar.Closed = true
	if err := crossbar.SetTransform(math.RotationZ(gomath.Pi / 2)); err != nil {
		return nil, err
	}

	metal := material.Default()
	metal.Color = canvas.NewColor(0.7, 0.7, 0.75)
	metal.Diffuse = 0.6
	metal.Specular = 0.8
	metal.Shininess = 300
	metal.Reflective = 0.4
	upright.SetMaterial(metal)
	crossbar.SetMaterial(metal)

	pipe := shapes.NewCSG(shapes.Union, upright, crossbar)
	if err := pipe.SetTransform(
		math.Translation(2.4, 0.6, 0.8).Multiply(math.Scaling(0.6, 0.6, 0.6)),
	); err != nil {
		return nil, err
	}
	return pipe, nil
}
