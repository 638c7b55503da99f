package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextJoinsLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single line", "hello world", "hello world"},
		{"trailing newline", "hello world\n", "hello world"},
		{"lines joined without separator", "one\ntwo\nthree\n", "onetwothree"},
		{"crlf", "one\r\ntwo\r\n", "onetwo"},
		{"empty", "", ""},
		{"blank lines collapse", "a\n\n\nb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := ReadText(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTextMissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestStoreCiphertextRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := Store{
		Encrypted: filepath.Join(dir, DefaultEncrypted),
		Decrypted: filepath.Join(dir, DefaultDecrypted),
	}

	require.NoError(t, s.WriteCiphertext("sbwkrq"))

	got, err := s.ReadCiphertext()
	require.NoError(t, err)
	assert.Equal(t, "sbwkrq", got)
}

func TestStoreReadCiphertextMissing(t *testing.T) {
	s := Store{Encrypted: filepath.Join(t.TempDir(), DefaultEncrypted)}

	_, err := s.ReadCiphertext()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestStoreWritePlaintext(t *testing.T) {
	dir := t.TempDir()
	s := Store{Decrypted: filepath.Join(dir, DefaultDecrypted)}

	require.NoError(t, s.WritePlaintext("Hello world"))

	data, err := os.ReadFile(s.Decrypted)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", string(data))
}
