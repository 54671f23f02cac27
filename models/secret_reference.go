// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrInvalidSecretReference is returned when a reference string does not
// consist of exactly three non-empty slash-separated parts.
var ErrInvalidSecretReference = errors.New("invalid secret reference")

// SecretReference addresses one secret value inside the external vault as a
// (vault, item, field) triple. It never carries the value itself.
type SecretReference struct {
	Vault string `json:"vault"`
	Item  string `json:"item"`
	Field string `json:"field"`
}

// ParseSecretReference parses a "vault/item/field" string.
func ParseSecretReference(s string) (SecretReference, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return SecretReference{}, ErrInvalidSecretReference
	}
	for _, p := range parts {
		if p == "" {
			return SecretReference{}, ErrInvalidSecretReference
		}
	}

	return SecretReference{Vault: parts[0], Item: parts[1], Field: parts[2]}, nil
}

// String renders the reference in the vault CLI's "vault/item/field" form.
func (r SecretReference) String() string {
	return r.Vault + "/" + r.Item + "/" + r.Field
}
