package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing of the word key.
type ID uint64

// IDFromWord generates a deterministic ID from a word key using BLAKE2b
// hashing. Identical words always produce identical IDs, so stored entries
// can be addressed by fixed-length key material regardless of word length.
func IDFromWord(word string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(word))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Entry pairs a word key with its embedding vector. It is the unit of
// serialization for persisted embedding sets.
type Entry struct {
	Word   string
	Vector []float64
}
