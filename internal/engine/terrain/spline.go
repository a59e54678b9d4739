package terrain

// CatmullRom evaluates a uniform Catmull-Rom spline through four control
// values at parameter t. The curve passes through p1 at t=0 and p2 at t=1,
// with a continuous first derivative when chained across adjacent 4-tuples
// of a uniform sequence.
func CatmullRom(p0, p1, p2, p3, t float32) float32 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2.0*p1 +
		(-p0+p2)*t +
		(2.0*p0-5.0*p1+4.0*p2-p3)*t2 +
		(-p0+3.0*p1-3.0*p2+p3)*t3)
}
