package scenes

import (
	"context"
	"testing"

	"github.com/mboyd/go-whitted-raytracer/pkg/renderer"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
	"github.com/mboyd/go-whitted-raytracer/pkg/wavefront"
)

func TestLookup_KnownScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			build, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", name, err)
			}
			w, cam, err := build(32, 24)
			if err != nil {
				t.Fatalf("building %q: %v", name, err)
			}
			if len(w.Shapes()) == 0 {
				t.Error("world has no shapes")
			}
			if len(w.Lights()) == 0 {
				t.Error("world has no lights")
			}
			if cam.HSize() != 32 || cam.VSize() != 24 {
				t.Errorf("camera is %dx%d, want 32x24", cam.HSize(), cam.VSize())
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("no-such-scene"); err == nil {
		t.Error("expected an error for an unknown scene")
	}
}

func TestScenes_RenderSmall(t *testing.T) {
	// A tiny render of each scene catches panics and wiring mistakes
	// that construction alone cannot.
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			build, _ := Lookup(name)
			w, cam, err := build(8, 6)
			if err != nil {
				t.Fatalf("building %q: %v", name, err)
			}
			img, err := renderer.Render(context.Background(), cam, w, renderer.Options{Workers: 2})
			if err != nil {
				t.Fatalf("rendering %q: %v", name, err)
			}
			if img.Width() != 8 || img.Height() != 6 {
				t.Errorf("canvas is %dx%d, want 8x6", img.Width(), img.Height())
			}
		})
	}
}

func TestNewMeshScene(t *testing.T) {
	doc := `v 0 1 0
v -1 0 0
v 1 0 0
f 1 2 3
`
	p, err := wavefront.ParseString(doc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	build := NewMeshScene(p.Group())
	w, cam, err := build(16, 12)
	if err != nil {
		t.Fatalf("building mesh scene: %v", err)
	}
	if cam == nil {
		t.Fatal("nil camera")
	}
	var hasGroup bool
	for _, s := range w.Shapes() {
		if _, ok := s.(*shapes.Group); ok {
			hasGroup = true
		}
	}
	if !hasGroup {
		t.Error("mesh group not added to the world")
	}
}
