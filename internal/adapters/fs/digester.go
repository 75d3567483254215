package fs

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is mandated by the Maven checksum sidecar format
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// Digester streams files through cryptographic hashes.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// SHA256File computes the SHA-256 of a file's content.
func (d *Digester) SHA256File(path string) (domain.Digest, error) {
	return d.digestFile(path, sha256.New())
}

// SHA1File computes the SHA-1 of a file's content.
func (d *Digester) SHA1File(path string) (domain.Digest, error) {
	return d.digestFile(path, sha1.New()) //nolint:gosec // see import
}

func (d *Digester) digestFile(path string, h hash.Hash) (domain.Digest, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	n, err := io.Copy(h, f)
	if err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return domain.Digest{Hex: hex.EncodeToString(h.Sum(nil)), Size: n}, nil
}
