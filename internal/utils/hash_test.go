package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignBody_VerifiesRoundTrip(t *testing.T) {
	body := []byte(`{"source":"laptop","timestamp":"2026-08-31T10:00:00Z"}`)

	signature := SignBody(body, "shared-secret")

	assert.True(t, strings.HasPrefix(signature, SignaturePrefix))
	assert.True(t, VerifySignature(body, signature, "shared-secret"))
}

func TestVerifySignature_RejectsTamperedBody(t *testing.T) {
	body := []byte(`{"source":"laptop"}`)
	signature := SignBody(body, "shared-secret")

	assert.False(t, VerifySignature([]byte(`{"source":"desktop"}`), signature, "shared-secret"))
}

func TestVerifySignature_RejectsWrongSecret(t *testing.T) {
	body := []byte(`{"source":"laptop"}`)
	signature := SignBody(body, "shared-secret")

	assert.False(t, VerifySignature(body, signature, "other-secret"))
}

func TestVerifySignature_RejectsMalformedHeader(t *testing.T) {
	body := []byte(`{"source":"laptop"}`)

	tests := []struct {
		name      string
		signature string
	}{
		{name: "missing prefix", signature: "deadbeef"},
		{name: "wrong prefix", signature: "sha512=deadbeef"},
		{name: "not hex", signature: SignaturePrefix + "zzzz"},
		{name: "empty", signature: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.False(t, VerifySignature(body, test.signature, "shared-secret"))
		})
	}
}
