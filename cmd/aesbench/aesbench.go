// Command aesbench times the AES-128 engine against the standard library's crypto/aes and checks that the two agree.
//
// For each requested operation count it runs that many encrypt-then-decrypt pairs through a timed engine and a timed
// reference, then compares the two on a stream of pseudorandom blocks and on Monte Carlo chains.
package main

import (
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/codahale/aes128"
	"github.com/codahale/aes128/internal/harness"
	"github.com/codahale/aes128/timing"
)

//nolint:gochecknoglobals // FIPS 197 Appendix B
var (
	benchKey   = []byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
	benchBlock = []byte{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34}
)

func main() {
	var (
		opsList      = flag.String("ops", "2,4,8", "comma-separated numbers of encrypt/decrypt pairs to time")
		blocks       = flag.Int("blocks", 4096, "number of pseudorandom blocks to compare against crypto/aes")
		iterations   = flag.Int("iterations", 1000, "length of each Monte Carlo chain")
		seed         = flag.String("seed", "aesbench", "seed for the pseudorandom comparison blocks")
		constantTime = flag.Bool("constant-time", false, "use the bitsliced, table-free S-box")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	flags := aes128.FlagDefault
	if *constantTime {
		flags = aes128.FlagConstantTime
	}
	log.Info("starting", "flags", flags, "reference_accelerated", harness.ReferenceAccelerated())

	ops, err := parseOps(*opsList)
	if err != nil {
		log.Error("invalid -ops", "err", err)
		os.Exit(1)
	}

	for _, n := range ops {
		engine, err := aes128.NewWithFlags(benchKey, flags)
		if err != nil {
			log.Error("engine setup failed", "err", err)
			os.Exit(1)
		}
		ref, err := harness.Reference(benchKey)
		if err != nil {
			log.Error("reference setup failed", "err", err)
			os.Exit(1)
		}

		impls := []struct {
			name string
			c    timing.Cipher
		}{
			{"engine", engine},
			{"reference", &blockCipher{ref}},
		}
		for _, impl := range impls {
			timed := timing.Wrap(impl.c)
			if err := roundTrips(timed, n); err != nil {
				log.Error("round trip failed", "impl", impl.name, "ops", n, "err", err)
				os.Exit(1)
			}
			timed.Report(log.With("impl", impl.name, "ops", n))
		}
	}

	engine, err := aes128.NewWithFlags(benchKey, flags)
	if err != nil {
		log.Error("engine setup failed", "err", err)
		os.Exit(1)
	}
	ref, err := harness.Reference(benchKey)
	if err != nil {
		log.Error("reference setup failed", "err", err)
		os.Exit(1)
	}

	report, err := harness.Compare(engine.Block(), ref, *blocks, []byte(*seed))
	if err != nil {
		log.Error("comparison failed", "err", err)
		os.Exit(1)
	}
	for _, m := range report.Mismatches {
		log.Error("mismatch", "index", m.Index, "plaintext", hex.EncodeToString(m.Plaintext),
			"engine", hex.EncodeToString(m.A), "reference", hex.EncodeToString(m.B))
	}
	log.Info("compared", "blocks", report.Blocks, "mismatches", len(report.Mismatches),
		"digest", hex.EncodeToString(report.DigestA))

	var iv [aes128.BlockSize]byte
	copy(iv[:], benchBlock)
	got, want := harness.MonteCarlo(engine.Block(), iv, *iterations), harness.MonteCarlo(ref, iv, *iterations)
	log.Info("monte carlo", "iterations", *iterations, "engine", hex.EncodeToString(got[:]),
		"reference", hex.EncodeToString(want[:]))

	if !report.OK() || got != want {
		log.Error("engine and reference disagree")
		os.Exit(1)
	}
}

// roundTrips runs n encrypt-then-decrypt pairs over the benchmark block.
func roundTrips(c timing.Cipher, n int) error {
	for range n {
		ct, err := c.Encrypt(benchBlock)
		if err != nil {
			return err
		}
		pt, err := c.Decrypt(ct)
		if err != nil {
			return err
		}
		if string(pt) != string(benchBlock) {
			return errors.New("decrypted block does not match plaintext")
		}
	}
	return nil
}

func parseOps(s string) ([]int, error) {
	var ops []int
	for f := range strings.SplitSeq(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("operation count must be positive, got %d", n)
		}
		ops = append(ops, n)
	}
	return ops, nil
}

// blockCipher adapts a cipher.Block to timing.Cipher so the reference can be timed the same way as the engine.
type blockCipher struct {
	b cipher.Block
}

func (c *blockCipher) ChangeKey(key []byte) error {
	b, err := harness.Reference(key)
	if err != nil {
		return err
	}
	c.b = b
	return nil
}

func (c *blockCipher) Encrypt(block []byte) ([]byte, error) {
	if len(block) != aes128.BlockSize {
		return nil, aes128.ErrInvalidBlockLength
	}
	out := make([]byte, aes128.BlockSize)
	c.b.Encrypt(out, block)
	return out, nil
}

func (c *blockCipher) Decrypt(block []byte) ([]byte, error) {
	if len(block) != aes128.BlockSize {
		return nil, aes128.ErrInvalidBlockLength
	}
	out := make([]byte, aes128.BlockSize)
	c.b.Decrypt(out, block)
	return out, nil
}
