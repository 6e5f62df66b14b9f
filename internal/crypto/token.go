package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// SessionTokenBytes is the amount of randomness in a session token.
// 32 bytes give 64 hex characters.
const SessionTokenBytes = 32

// GenerateSessionToken reads [SessionTokenBytes] from the OS CSPRNG and
// returns the hex-encoded token together with its [HashSessionToken] digest.
// The plaintext goes to the client; only the hash is stored.
func GenerateSessionToken() (token, hash string, err error) {
	return generateSessionToken(rand.Reader)
}

func generateSessionToken(r io.Reader) (token, hash string, err error) {
	raw := make([]byte, SessionTokenBytes)
	if _, err = io.ReadFull(r, raw); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}

	token = hex.EncodeToString(raw)
	return token, HashSessionToken(token), nil
}

// HashSessionToken returns the hex-encoded SHA-256 of token.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
