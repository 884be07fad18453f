package scenes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/material"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
	"github.com/mboyd/go-whitted-raytracer/pkg/scene"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
)

// NewMeshScene wraps a loaded triangle mesh in a lit stage: a matte
// floor, a single key light, and a camera aimed at the mesh bounds.
// The mesh is recentered so its bounding box sits on the floor.
func NewMeshScene(mesh *shapes.Group) Builder {
	return func(width, height int) (*scene.World, *scene.Camera, error) {
		w := scene.NewWorld()

		floor := shapes.NewPlane()
		floorMat := material.Default()
		floorMat.Color = canvas.NewColor(0.7, 0.7, 0.7)
		floorMat.Specular = 0
		floor.SetMaterial(floorMat)
		w.AddShape(floor)

		b := mesh.Bounds()
		center := b.Min.Add(b.Max).Multiply(0.5)
		extent := b.Max.Subtract(b.Min)
		size := gomath.Max(extent.X, gomath.Max(extent.Y, extent.Z))
		if size < math.Epsilon {
			size = 1
		}
		// Fit the longest axis to two units and drop the box onto y=0.
		scale := 2 / size
		if err := mesh.SetTransform(
			math.Scaling(scale, scale, scale).
				Multiply(math.Translation(-center.X, -b.Min.Y, -center.Z)),
		); err != nil {
			return nil, nil, err
		}
		w.AddShape(mesh)

		w.AddLight(material.NewPointLight(
			math.NewPoint(-5, 8, -6),
			canvas.White(),
		))

		cam := scene.NewCamera(width, height, gomath.Pi/3)
		if err := cam.SetTransform(scene.ViewTransform(
			math.NewPoint(0, 1.8, -4),
			math.NewPoint(0, 1, 0),
			math.NewVector(0, 1, 0),
		)); err != nil {
			return nil, nil, err
		}
		return w, cam, nil
	}
}
