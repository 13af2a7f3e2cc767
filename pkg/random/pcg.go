// Package random provides the PCG pseudo-random source used for every
// Monte Carlo draw in the renderer.
package random

// Pcg is a 64-state/64-increment permuted congruential generator
// (https://www.pcg-random.org). It is deterministic across platforms: the
// same seed pair always produces the same sequence of outputs.
type Pcg struct {
	state uint64
	inc   uint64
}

// NewPcg seeds a generator from initState and initSeq. The two advance
// calls bracketing the state assignment match the reference PCG
// initialization and must not be reordered.
func NewPcg(initState, initSeq uint64) *Pcg {
	p := &Pcg{state: 0, inc: (initSeq << 1) | 1}
	p.NextU32()
	p.state += initState
	p.NextU32()
	return p
}

// NewDefaultPcg seeds a generator with the conventional (42, 54) seed pair.
func NewDefaultPcg() *Pcg { return NewPcg(42, 54) }

// NextU32 advances the generator and returns the next 32-bit output.
func (p *Pcg) NextU32() uint32 {
	old := p.state
	p.state = old*6364136223846793005 + p.inc
	xorShifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorShifted >> rot) | (xorShifted << ((-rot) & 31))
}

// NextFloat32 returns the next output divided by the largest uint32, a value
// in [0, 1]; outputs near the top of the uint32 range round to exactly 1.
func (p *Pcg) NextFloat32() float32 {
	return float32(p.NextU32()) / float32(^uint32(0))
}
