package round

import "lukechampine.com/frand"

// LengthPolicy picks the word length a round requires.
type LengthPolicy interface {
	RequiredLength() int
}

type FixedLength int

func (f FixedLength) RequiredLength() int {
	return int(f)
}

// RandomLength picks uniformly from [Min, Max].
type RandomLength struct {
	Min int
	Max int
}

func (r RandomLength) RequiredLength() int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + frand.Intn(r.Max-r.Min+1)
}
