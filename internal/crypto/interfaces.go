package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// checks plaintext candidates against them.
//
// Hash output embeds its own salt and work factor, so Verify needs nothing
// but the stored string.
//
// Both methods are CPU bound. Implementations run the work off the caller's
// goroutine and return early with ctx.Err() if ctx is done first; the
// computation itself may still finish in the background.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash.
	// Returns (true, nil) on match, (false, nil) on mismatch and an error
	// when the hash is malformed or the computation fails.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
