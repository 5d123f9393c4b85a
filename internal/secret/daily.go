package secret

import (
	"encoding/binary"
	"errors"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/mastermind/internal/peg"
)

var ErrNoSalt = errors.New("daily secret needs a salt")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CodeIndex returns a deterministic index in [0, size) for a date using
// BLAKE2b-256 keyed with salt over the date key.
func CodeIndex(date time.Time, salt string, size int) (int, error) {
	if size <= 0 {
		return 0, nil
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		return 0, err
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(size)), nil
}

// Daily yields the code of the day: the same for every call on a given UTC
// date, different across dates and salts.
type Daily struct {
	universe []peg.Code
	salt     string
	now      func() time.Time
}

// NewDaily builds a Daily over universe. now defaults to time.Now.
func NewDaily(universe []peg.Code, salt string, now func() time.Time) (*Daily, error) {
	if salt == "" {
		return nil, ErrNoSalt
	}
	if now == nil {
		now = time.Now
	}
	return &Daily{universe: universe, salt: salt, now: now}, nil
}

func (d *Daily) Secret() (peg.Code, error) {
	i, err := CodeIndex(d.now(), d.salt, len(d.universe))
	if err != nil {
		return peg.Code{}, err
	}
	return d.universe[i], nil
}
