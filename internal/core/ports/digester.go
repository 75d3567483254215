package ports

import "go.trai.ch/dex/internal/core/domain"

// Digester computes content digests of files.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// SHA256File streams the file at path through SHA-256.
	SHA256File(path string) (domain.Digest, error)

	// SHA1File streams the file at path through SHA-1.
	SHA1File(path string) (domain.Digest, error)
}
