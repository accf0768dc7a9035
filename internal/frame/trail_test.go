package frame

import (
	"testing"

	"github.com/tmarkov/physviz/internal/phys"
)

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(phys.Vec2{X: float64(i)})
	}

	if tr.Len() != 3 {
		t.Fatalf("expected len 3, got %d", tr.Len())
	}
	for i, want := range []float64{2, 3, 4} {
		if got := tr.At(i).X; got != want {
			t.Errorf("position %d: expected %f, got %f", i, want, got)
		}
	}
}

func TestTrailPartialFill(t *testing.T) {
	tr := NewTrail(10)
	tr.Push(phys.Vec2{X: 1})
	tr.Push(phys.Vec2{X: 2})

	if tr.Len() != 2 {
		t.Fatalf("expected len 2, got %d", tr.Len())
	}
	if tr.At(0).X != 1 || tr.At(1).X != 2 {
		t.Error("oldest-first order broken")
	}
}

func TestTrailClear(t *testing.T) {
	tr := NewTrail(4)
	for i := 0; i < 6; i++ {
		tr.Push(phys.Vec2{X: float64(i)})
	}
	tr.Clear()

	if tr.Len() != 0 {
		t.Fatalf("expected empty trail, got len %d", tr.Len())
	}
	tr.Push(phys.Vec2{X: 9})
	if tr.At(0).X != 9 {
		t.Error("push after clear should start fresh")
	}
}

func TestTrailMinimumCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(phys.Vec2{X: 1})
	tr.Push(phys.Vec2{X: 2})

	if tr.Len() != 1 || tr.Cap() != 1 {
		t.Errorf("expected single-slot trail, got len=%d cap=%d", tr.Len(), tr.Cap())
	}
	if tr.At(0).X != 2 {
		t.Error("expected newest value to survive")
	}
}
