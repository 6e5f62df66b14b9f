package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signatureSeparator splits a signed value into the value and its signature.
// Hex signatures never contain it.
const signatureSeparator = "."

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// SignValue returns value followed by a dot and its hex HMAC-SHA256
// signature under hashKey.
//
// Example usage:
//
//	cookieValue := utils.SignValue(token, secret) // "<token>.<hmac>"
func SignValue(value string, hashKey string) string {
	return value + signatureSeparator + HashString(value, hashKey)
}

// VerifySignedValue checks a value produced by SignValue and returns the
// unsigned value. ok is false when the input is malformed or the signature
// does not match. The comparison runs in constant time.
func VerifySignedValue(signed string, hashKey string) (string, bool) {
	i := strings.LastIndex(signed, signatureSeparator)
	if i <= 0 || i == len(signed)-1 {
		return "", false
	}

	value, signature := signed[:i], signed[i+1:]
	got, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}

	if !hmac.Equal(got, hashString([]byte(value), hashKey)) {
		return "", false
	}

	return value, true
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
