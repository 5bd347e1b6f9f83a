package types

// LaneWidth is the number of values carried by a Lanes batch, matching an
// AVX register of doubles.
const LaneWidth = 4

/*
Real is the arithmetic required by the kernels that run unchanged on a single
value or on a batch of values evaluated in lockstep. The zero value of T must be
the additive identity.
*/
type Real[T any] interface {
	Add(b T) T
	Mul(b T) T
	Scale(a float64) T
}

// Scalar is a single real value
type Scalar float64

func (a Scalar) Add(b Scalar) Scalar    { return a + b }
func (a Scalar) Mul(b Scalar) Scalar    { return a * b }
func (a Scalar) Scale(s float64) Scalar { return Scalar(s) * a }
func (a Scalar) Float64() float64       { return float64(a) }
func (a Scalar) Equal(b Scalar, tol float64) bool {
	d := float64(a - b)
	return d <= tol && d >= -tol
}

// Lanes is a fixed-width batch of reals, every operation applies elementwise
type Lanes [LaneWidth]float64

func Broadcast(v float64) (l Lanes) {
	for i := range l {
		l[i] = v
	}
	return
}

func (a Lanes) Add(b Lanes) (c Lanes) {
	for i := range a {
		c[i] = a[i] + b[i]
	}
	return
}

func (a Lanes) Mul(b Lanes) (c Lanes) {
	for i := range a {
		c[i] = a[i] * b[i]
	}
	return
}

func (a Lanes) Scale(s float64) (c Lanes) {
	for i := range a {
		c[i] = s * a[i]
	}
	return
}

// Lane extracts a single value from the batch
func (a Lanes) Lane(i int) Scalar {
	return Scalar(a[i])
}

// SetLane returns a copy of the batch with lane i replaced
func (a Lanes) SetLane(i int, v Scalar) Lanes {
	a[i] = float64(v)
	return a
}
