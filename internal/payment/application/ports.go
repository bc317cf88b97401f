package application

// RandomSource yields values in [0, 1). The gateway only calls it under its
// own lock, so implementations need not be safe for concurrent use.
type RandomSource interface {
	Float64() float64
}

type RandomFunc func() float64

func (f RandomFunc) Float64() float64 { return f() }
