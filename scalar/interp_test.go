package scalar

import "testing"

func TestSplineEndpoints(t *testing.T) {
	if got := CatmullRom[float64](0, 1, 2, 3, 0); got != 1 {
		t.Fatalf("CatmullRom(t=0) = %v, want 1", got)
	}
	if got := CatmullRom[float64](0, 1, 2, 3, 1); got != 2 {
		t.Fatalf("CatmullRom(t=1) = %v, want 2", got)
	}
	if got := CatmullRom[float64](0, 1, 2, 3, 0.5); got != 1.5 {
		t.Fatalf("CatmullRom on a line = %v, want 1.5", got)
	}
	if got := Hermite[float32](1, 0, 5, 0, 0); got != 1 {
		t.Fatalf("Hermite(s=0) = %v, want 1", got)
	}
	if got := Hermite[float32](1, 0, 5, 0, 1); got != 5 {
		t.Fatalf("Hermite(s=1) = %v, want 5", got)
	}
}

func TestBarycentric(t *testing.T) {
	if got := Barycentric[int32](0, 10, 20, 0.5, 0.25); got != 10 {
		t.Fatalf("Barycentric = %d, want 10", got)
	}
	if got := Barycentric[float64](1, 2, 3, 0, 0); got != 1 {
		t.Fatalf("Barycentric(0, 0) = %v, want 1", got)
	}
	const exact = int64(1<<53 + 1)
	if got := Barycentric[int64](exact, exact, exact, 0.3, 0.3); got != exact {
		t.Fatalf("Barycentric of equal points = %d, want %d", got, exact)
	}
	if got := Barycentric[uint8](0, 10, 0, -1, 0); got != 246 {
		t.Fatalf("Barycentric[uint8] below range = %d, want 246", got)
	}
}
