package crypto

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/crypto/chacha20"
)

// stream is a single-use random source: a ChaCha20 keystream keyed from an
// entropy reader. It is not safe for concurrent use; each Generate call
// owns its own stream.
type stream struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

// newStream reads a fresh key and nonce from entropy.
func newStream(entropy io.Reader) (*stream, error) {
	seed := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	if _, err := io.ReadFull(entropy, seed); err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}

	c, err := chacha20.NewUnauthenticatedCipher(seed[:chacha20.KeySize], seed[chacha20.KeySize:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return &stream{cipher: c}, nil
}

func (s *stream) uint64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// intn returns a uniform value in [0, n). Draws at or above the largest
// multiple of n are rejected so every residue is equally likely.
func (s *stream) intn(n int) int {
	if n <= 0 {
		panic("crypto: intn called with non-positive bound")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := s.uint64()
		if v < limit {
			return int(v % bound)
		}
	}
}

// pick returns a uniformly chosen byte of charset.
func (s *stream) pick(charset string) byte {
	return charset[s.intn(len(charset))]
}

// shuffle performs an unbiased Fisher-Yates shuffle in place.
func (s *stream) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
