// Command aes128 encrypts or decrypts 128-bit blocks given as hex on the command line and prints one result per line.
//
//	aes128 -key 0x2b7e151628aed2a6abf7158809cf4f3c 0x3243f6a8885a308d313198a2e0370734
//	aes128 -key 2b7e151628aed2a6abf7158809cf4f3c -decrypt 3925841d02dc09fbdc118597196a0b32
package main

import (
	"crypto/cipher"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/aes128"
	"github.com/codahale/aes128/internal/harness"
)

func main() {
	var (
		keyHex       = flag.String("key", "", "the 128-bit key as 32 hex digits, optionally 0x-prefixed")
		decrypt      = flag.Bool("decrypt", false, "decrypt the blocks instead of encrypting them")
		constantTime = flag.Bool("constant-time", false, "use the bitsliced, table-free S-box")
		selfTest     = flag.Bool("self-test", false, "run the known-answer tests and exit")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	flags := aes128.FlagDefault
	if *constantTime {
		flags = aes128.FlagConstantTime
	}

	if *selfTest {
		err := harness.Check(func(key []byte) (cipher.Block, error) {
			e, err := aes128.NewWithFlags(key, flags)
			if err != nil {
				return nil, err
			}
			return e.Block(), nil
		})
		if err != nil {
			log.Error("self-test failed", "flags", flags, "err", err)
			os.Exit(1)
		}
		log.Info("self-test passed", "flags", flags, "vectors", len(harness.KnownAnswers))
		return
	}

	key, err := aes128.ParseUint128(*keyHex)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(1)
	}
	keyBytes := key.Bytes()

	e, err := aes128.NewWithFlags(keyBytes[:], flags)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(1)
	}

	op := e.EncryptUint128
	if *decrypt {
		op = e.DecryptUint128
	}

	for _, arg := range flag.Args() {
		in, err := aes128.ParseUint128(arg)
		if err != nil {
			log.Error("invalid block", "block", arg, "err", err)
			os.Exit(1)
		}

		out, err := op(in)
		if err != nil {
			log.Error("block operation failed", "block", arg, "err", err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}
