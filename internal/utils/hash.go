package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignaturePrefix is prepended to the hex digest in the X-Signature header.
const SignaturePrefix = "sha256="

// SignBody computes an HMAC-SHA256 signature over body using the shared
// webhook secret and returns it in header form: "sha256=<hex digest>".
//
// Parameters:
//
//	body   - raw request body bytes to be signed
//	secret - shared webhook secret used as the HMAC key
//
// Returns:
//
//	string - signature header value
//
// Example usage:
//
//	req.Header.Set("X-Signature", utils.SignBody(payload, secret))
func SignBody(body []byte, secret string) string {
	return SignaturePrefix + hex.EncodeToString(hashBody(body, secret))
}

// VerifySignature reports whether the signature header value matches the
// HMAC-SHA256 digest of body under the shared webhook secret.
//
// The comparison is constant-time (hmac.Equal on decoded digest bytes), so a
// caller cannot learn the expected signature through timing. A header without
// the "sha256=" prefix, with a malformed hex digest, or with a digest of the
// wrong length never verifies.
//
// Parameters:
//
//	body      - raw request body bytes as received
//	signature - the X-Signature header value
//	secret    - shared webhook secret used as the HMAC key
//
// Returns:
//
//	bool - true only when the signature is well-formed and matches
func VerifySignature(body []byte, signature string, secret string) bool {
	hexDigest, found := strings.CutPrefix(signature, SignaturePrefix)
	if !found {
		return false
	}

	got, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}

	return hmac.Equal(got, hashBody(body, secret))
}

// hashBody computes a raw HMAC-SHA256 digest over body using secret as key.
// A new HMAC instance is created on each call; webhook traffic is far too
// infrequent to justify pooling hashers.
func hashBody(body []byte, secret string) []byte {
	hasher := hmac.New(sha256.New, []byte(secret))
	hasher.Write(body)
	return hasher.Sum(nil)
}
