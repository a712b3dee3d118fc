package core

// DefaultSeedSalt is XORed into the host clock seed at initialization.
const DefaultSeedSalt uint32 = 0xA53

// Rand is a 32-bit xorshift generator. Its state is never zero.
type Rand struct {
	state uint32
}

// NewRand creates a generator seeded with s.
func NewRand(s uint32) *Rand {
	r := &Rand{}
	r.Seed(s)
	return r
}

// Seed resets the generator. A zero seed is replaced with 1.
func (r *Rand) Seed(s uint32) {
	if s == 0 {
		s = 1
	}
	r.state = s
}

// Next advances the generator and returns the new state.
func (r *Rand) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	if x == 0 {
		x = 1
	}
	r.state = x
	return x
}

// Range returns a value in [0, n) by modulo. n must be positive.
func (r *Rand) Range(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}

// Shuffle performs a Fisher-Yates shuffle of all board indices and
// returns the permutation.
func (r *Rand) Shuffle() [Cells]int {
	var cells [Cells]int
	for i := range cells {
		cells[i] = i
	}
	for i := Cells - 1; i > 0; i-- {
		j := r.Range(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
