package interfaces

import "context"

// DocumentStore persists documents as flat files inside a single directory.
// Names are the public document identifiers.
type DocumentStore interface {
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, name string) bool
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, content []byte) error
	CreateEmpty(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}

// CredentialVerifier checks a username/password pair against the static
// credential list. An unknown username verifies as false, not as an error.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}
