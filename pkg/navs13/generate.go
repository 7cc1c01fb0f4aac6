package navs13

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// MaxBatch is the largest number of identifiers generated in one request.
const MaxBatch = 255

// DigitSource yields uniformly distributed digits in [0,9].
type DigitSource interface {
	Digit() uint8
}

// Generate returns a structurally valid NAVS13 whose nine free digits are
// drawn from src. It is meant for test data only.
func Generate(src DigitSource) Number {
	var n Number
	copy(n.digits[:3], swissCountryCode[:])
	for i := 3; i < PayloadLength; i++ {
		n.digits[i] = src.Digit() % 10
	}
	n.check = Checksum(n.digits)
	return n
}

// GenerateN returns count numbers drawn from src.
func GenerateN(src DigitSource, count int) []Number {
	numbers := make([]Number, 0, count)
	for i := 0; i < count; i++ {
		numbers = append(numbers, Generate(src))
	}
	return numbers
}

// RandSource is a DigitSource backed by a PCG generator. It is safe for
// concurrent use.
type RandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource returns a RandSource seeded from crypto/rand.
func NewRandSource() *RandSource {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("navs13: reading random seed: " + err.Error())
	}
	return NewSeededSource(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
}

// NewSeededSource returns a RandSource with a fixed seed, for reproducible
// output.
func NewSeededSource(seed1, seed2 uint64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Digit implements DigitSource.
func (s *RandSource) Digit() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint8(s.rng.IntN(10))
}

// SequenceSource replays a fixed list of digits, wrapping around at the end.
// The zero value yields zeros.
type SequenceSource struct {
	mu     sync.Mutex
	digits []uint8
	pos    int
}

// NewSequenceSource returns a SequenceSource over digits.
func NewSequenceSource(digits ...uint8) *SequenceSource {
	return &SequenceSource{digits: digits}
}

// Digit implements DigitSource.
func (s *SequenceSource) Digit() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.digits) == 0 {
		return 0
	}
	d := s.digits[s.pos%len(s.digits)]
	s.pos++
	return d
}
