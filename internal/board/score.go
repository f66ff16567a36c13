package board

// Score is a (midgame, endgame) centipawn pair. The evaluator combines the
// two components with a phase-driven linear interpolation.
type Score struct {
	Mg int
	Eg int
}

// Add returns the componentwise sum.
func (s Score) Add(o Score) Score {
	return Score{s.Mg + o.Mg, s.Eg + o.Eg}
}

// Sub returns the componentwise difference.
func (s Score) Sub(o Score) Score {
	return Score{s.Mg - o.Mg, s.Eg - o.Eg}
}

// Mul returns the score scaled by an integer factor.
func (s Score) Mul(n int) Score {
	return Score{s.Mg * n, s.Eg * n}
}

// Neg returns the componentwise negation.
func (s Score) Neg() Score {
	return Score{-s.Mg, -s.Eg}
}

// Less compares by the midgame component.
func (s Score) Less(o Score) bool {
	return s.Mg < o.Mg
}

// Taper interpolates between the midgame and endgame components.
// phase ranges over [0, limit]; limit means pure midgame.
func (s Score) Taper(phase, limit int) int {
	return (s.Mg*phase + s.Eg*(limit-phase)) / limit
}
