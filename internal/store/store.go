// Package store reads and writes the flat text files the cipher works with.
package store

import (
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultEncrypted is where encryption saves its result and where
	// decryption always reads from.
	DefaultEncrypted = "encrypted.txt"
	// DefaultDecrypted is where decryption saves its result.
	DefaultDecrypted = "decrypted.txt"
)

var stripNewlines = strings.NewReplacer("\r\n", "", "\n", "")

// ReadText reads a whole file as text, strips the newlines and joins the
// lines with no separator.
func ReadText(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", filename, err)
	}
	return stripNewlines.Replace(string(data)), nil
}

// Store holds the paths of the two fixed-name output files.
type Store struct {
	Encrypted string
	Decrypted string
}

func (s Store) WriteCiphertext(text string) error {
	err := os.WriteFile(s.Encrypted, []byte(text), 0644)
	if err != nil {
		return fmt.Errorf("write %q: %w", s.Encrypted, err)
	}
	return nil
}

// ReadCiphertext returns the most recently stored ciphertext, newline
// stripped like any other input.
func (s Store) ReadCiphertext() (string, error) {
	return ReadText(s.Encrypted)
}

func (s Store) WritePlaintext(text string) error {
	err := os.WriteFile(s.Decrypted, []byte(text), 0644)
	if err != nil {
		return fmt.Errorf("write %q: %w", s.Decrypted, err)
	}
	return nil
}
