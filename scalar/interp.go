package scalar

// Barycentric returns a + u*(b-a) + v*(c-a) computed in float64 and
// converted back to T the way Lerp converts.
func Barycentric[T Number](a, b, c T, u, v float64) T {
	if a == b && a == c {
		return a
	}
	fa := float64(a)
	return fromFloat[T](fa + u*(float64(b)-fa) + v*(float64(c)-fa))
}

// CatmullRom evaluates the Catmull-Rom spline through p1 and p2 with
// neighbors p0 and p3 at t in [0,1]. t = 0 yields p1, t = 1 yields p2.
func CatmullRom[T Float](p0, p1, p2, p3, t T) T {
	t2 := t * t
	t3 := t * t2
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// Hermite evaluates the cubic Hermite spline from position p1 with tangent
// t1 to position p2 with tangent t2 at s in [0,1].
func Hermite[T Float](p1, t1, p2, t2, s T) T {
	s2 := s * s
	s3 := s * s2
	h1 := 2*s3 - 3*s2 + 1
	h2 := -2*s3 + 3*s2
	h3 := s3 - 2*s2 + s
	h4 := s3 - s2
	return p1*h1 + p2*h2 + t1*h3 + t2*h4
}
