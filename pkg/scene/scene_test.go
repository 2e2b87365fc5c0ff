package scene

import (
	"testing"

	"github.com/jfeld/go-pathtracer/pkg/geometry"
)

func TestNewCoverScene(t *testing.T) {
	s, err := NewCoverScene(3.0/2.0, 42)
	if err != nil {
		t.Fatalf("NewCoverScene: %v", err)
	}
	if s.Camera == nil {
		t.Fatal("scene has no camera")
	}
	if s.CameraConfig.AspectRatio != 1.5 {
		t.Errorf("aspect ratio = %v, want 1.5", s.CameraConfig.AspectRatio)
	}
	// Ground plus the three feature spheres plus a random grid
	if len(s.World.Objects) <= 4 {
		t.Errorf("object count = %d, want the fixed spheres plus the random grid", len(s.World.Objects))
	}
}

func TestNewCoverScene_DeterministicForSeed(t *testing.T) {
	a, err := NewCoverScene(3.0/2.0, 7)
	if err != nil {
		t.Fatalf("NewCoverScene: %v", err)
	}
	b, err := NewCoverScene(3.0/2.0, 7)
	if err != nil {
		t.Fatalf("NewCoverScene: %v", err)
	}

	if len(a.World.Objects) != len(b.World.Objects) {
		t.Fatalf("object counts differ: %d vs %d", len(a.World.Objects), len(b.World.Objects))
	}
	for i := range a.World.Objects {
		sa := a.World.Objects[i].(*geometry.Sphere)
		sb := b.World.Objects[i].(*geometry.Sphere)
		if sa.Center != sb.Center || sa.Radius != sb.Radius {
			t.Fatalf("object %d differs between same-seed builds", i)
		}
	}
}

func TestNewCoverScene_DiffersAcrossSeeds(t *testing.T) {
	a, err := NewCoverScene(3.0/2.0, 1)
	if err != nil {
		t.Fatalf("NewCoverScene: %v", err)
	}
	b, err := NewCoverScene(3.0/2.0, 2)
	if err != nil {
		t.Fatalf("NewCoverScene: %v", err)
	}
	if len(a.World.Objects) == len(b.World.Objects) {
		same := true
		for i := range a.World.Objects {
			if a.World.Objects[i].(*geometry.Sphere).Center != b.World.Objects[i].(*geometry.Sphere).Center {
				same = false
				break
			}
		}
		if same {
			t.Error("different seeds produced identical scenes")
		}
	}
}

func TestNewSimpleScene(t *testing.T) {
	s, err := NewSimpleScene(16.0 / 9.0)
	if err != nil {
		t.Fatalf("NewSimpleScene: %v", err)
	}
	if s.Camera == nil {
		t.Fatal("scene has no camera")
	}
	if len(s.World.Objects) != 5 {
		t.Fatalf("object count = %d, want 5", len(s.World.Objects))
	}

	// The hollow glass shell needs its negative-radius inner sphere
	var sawNegativeRadius bool
	for _, obj := range s.World.Objects {
		if obj.(*geometry.Sphere).Radius < 0 {
			sawNegativeRadius = true
		}
	}
	if !sawNegativeRadius {
		t.Error("simple scene is missing the hollow glass inner sphere")
	}
}
