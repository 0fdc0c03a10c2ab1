package deck

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Seed identifies an independent PCG stream.
type Seed [2]uint64

// NewSeed draws a fresh master seed from the suite's random stream.
func NewSeed() uint64 {
	var buf [8]byte
	suite.RandomStream().XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// WorkerSeeds expands master into n seeds through the suite's XOF, so that
// parallel workers never share a random stream and a master seed always
// yields the same partition.
func WorkerSeeds(master uint64, n int) ([]Seed, error) {
	if n <= 0 {
		return nil, fmt.Errorf("worker count must be positive, got %d", n)
	}
	var in [8]byte
	binary.LittleEndian.PutUint64(in[:], master)
	xof := suite.XOF(in[:])

	seeds := make([]Seed, n)
	buf := make([]byte, 16)
	for i := range seeds {
		if _, err := io.ReadFull(xof, buf); err != nil {
			return nil, fmt.Errorf("failed to derive seed %d: %w", i, err)
		}
		seeds[i] = Seed{binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:])}
	}
	return seeds, nil
}

// Rand returns a generator reading the stream identified by s.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(s[0], s[1]))
}
