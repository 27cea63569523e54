// Package timing wraps a block cipher with per-operation call counters and elapsed-time accounting.
//
// The wrapper sits outside the cipher: it times each call to New, ChangeKey, Encrypt, and Decrypt as a whole and
// leaves the cipher's transforms untouched.
package timing

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/codahale/aes128"
)

// Cipher is the set of block cipher operations the wrapper instruments. *aes128.Engine implements it.
type Cipher interface {
	ChangeKey(key []byte) error
	Encrypt(block []byte) ([]byte, error)
	Decrypt(block []byte) ([]byte, error)
}

// Op identifies an instrumented operation.
type Op int

const (
	OpNew Op = iota
	OpChangeKey
	OpEncrypt
	OpDecrypt

	opCount
)

// String returns the operation's name.
func (op Op) String() string {
	switch op {
	case OpNew:
		return "new"
	case OpChangeKey:
		return "change_key"
	case OpEncrypt:
		return "encrypt"
	case OpDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// OpStats are the accumulated counters for one operation.
type OpStats struct {
	Calls  uint64
	Errors uint64
	Total  time.Duration
}

// Mean returns the mean duration of a call, or zero if there were no calls.
func (s OpStats) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

// Stats is a snapshot of every operation's counters, indexed by Op.
type Stats [opCount]OpStats

type counter struct {
	calls, errors, nanos atomic.Uint64
}

func (c *counter) record(start time.Time, err error) {
	c.nanos.Add(uint64(time.Since(start))) //nolint:gosec // durations are non-negative
	c.calls.Add(1)
	if err != nil {
		c.errors.Add(1)
	}
}

// A Timed wraps a Cipher and records how often and for how long each operation runs. It is safe for concurrent use
// if the wrapped Cipher is.
type Timed struct {
	c        Cipher
	counters [opCount]counter
}

// Wrap returns a Timed which forwards every call to c.
func Wrap(c Cipher) *Timed {
	return &Timed{c: c}
}

// New creates an aes128.Engine with the given key and wraps it, counting the construction as an OpNew call.
//
// The Timed is returned even when construction fails, so the failure shows up in its Stats. In that case it wraps an
// Engine with no key, whose Encrypt and Decrypt return aes128.ErrUninitializedKey until ChangeKey succeeds.
func New(key []byte) (*Timed, error) {
	start := time.Now()
	e, err := aes128.New(key)
	if err != nil {
		e = new(aes128.Engine)
	}
	t := Wrap(e)
	t.counters[OpNew].record(start, err)
	return t, err
}

// Unwrap returns the wrapped Cipher.
func (t *Timed) Unwrap() Cipher {
	return t.c
}

// ChangeKey forwards to the wrapped Cipher's ChangeKey.
func (t *Timed) ChangeKey(key []byte) error {
	start := time.Now()
	err := t.c.ChangeKey(key)
	t.counters[OpChangeKey].record(start, err)
	return err
}

// Encrypt forwards to the wrapped Cipher's Encrypt.
func (t *Timed) Encrypt(block []byte) ([]byte, error) {
	start := time.Now()
	out, err := t.c.Encrypt(block)
	t.counters[OpEncrypt].record(start, err)
	return out, err
}

// Decrypt forwards to the wrapped Cipher's Decrypt.
func (t *Timed) Decrypt(block []byte) ([]byte, error) {
	start := time.Now()
	out, err := t.c.Decrypt(block)
	t.counters[OpDecrypt].record(start, err)
	return out, err
}

// Stats returns a snapshot of the counters.
func (t *Timed) Stats() Stats {
	var s Stats
	for op := range s {
		c := &t.counters[op]
		s[op] = OpStats{
			Calls:  c.calls.Load(),
			Errors: c.errors.Load(),
			Total:  time.Duration(c.nanos.Load()), //nolint:gosec // sum of non-negative durations
		}
	}
	return s
}

// Reset zeroes the counters.
func (t *Timed) Reset() {
	for op := range t.counters {
		c := &t.counters[op]
		c.calls.Store(0)
		c.errors.Store(0)
		c.nanos.Store(0)
	}
}

// LogValue implements slog.LogValuer, grouping the counters of every operation which has been called.
func (t *Timed) LogValue() slog.Value {
	stats := t.Stats()
	attrs := make([]slog.Attr, 0, len(stats))
	for op, s := range stats {
		if s.Calls == 0 {
			continue
		}
		attrs = append(attrs, slog.Group(Op(op).String(),
			"calls", s.Calls,
			"errors", s.Errors,
			"total", s.Total,
			"mean", s.Mean(),
		))
	}
	return slog.GroupValue(attrs...)
}

// Report logs one record per called operation to log.
func (t *Timed) Report(log *slog.Logger) {
	for op, s := range t.Stats() {
		if s.Calls == 0 {
			continue
		}
		log.Info("timing",
			"op", Op(op).String(),
			"calls", s.Calls,
			"errors", s.Errors,
			"total", s.Total,
			"mean", s.Mean(),
		)
	}
}
