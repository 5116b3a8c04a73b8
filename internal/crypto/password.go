// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the credential-hashing primitives of the
// application: one-way, salted password digests with a tunable work factor.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2Version is the Argon2 version encoded into every hash string
// (argon2.Version is 0x13).
const argon2Version = 19

// PasswordHasher produces and verifies salted Argon2id password digests.
// Each call to Hash draws a fresh random salt, so hashing the same
// plaintext twice yields different outputs. The salt and tuning parameters
// are embedded in the encoded hash, letting Verify recompute the digest for
// hashes created under older settings.
type PasswordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so the work factor
	// can be adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//   - salt length: 16 bytes
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		saltLen:      16,
	}
}

// Hash derives a salted Argon2id digest of password and returns it in the
// standard encoded form:
//
//	$argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>
//
// Returns an error only if the OS CSPRNG fails to produce a salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	b64 := base64.RawStdEncoding
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Version,
		h.argonMemory,
		h.argonTime,
		h.argonThreads,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	)

	return encoded, nil
}

// Verify recomputes the digest of password using the salt and parameters
// embedded in encodedHash and compares the two in constant time.
//
// Returns (true, nil) on a match and (false, nil) on a simple mismatch.
// An error is returned only for malformed or unsupported hash strings
// ([ErrInvalidHash]), including hashes whose parameters exceed the
// configured maximums by a wide margin — a stored hash should never demand
// pathological resources from the verifying server.
func (h *PasswordHasher) Verify(password, encodedHash string) (bool, error) {
	params, salt, expected, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	if !h.withinBounds(params) {
		return false, ErrInvalidHash
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		params.time,
		params.memory,
		params.threads,
		uint32(len(expected)),
	)

	if subtle.ConstantTimeCompare(key, expected) == 1 {
		return true, nil
	}

	return false, nil
}

// hashParams is the parameter set parsed out of an encoded hash string.
type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// withinBounds accepts hashes produced under equal or smaller settings but
// rejects ones wildly larger than the configured maximums.
func (h *PasswordHasher) withinBounds(p hashParams) bool {
	if p.memory > h.argonMemory*2 {
		return false
	}
	if p.time > h.argonTime*2 {
		return false
	}
	if p.threads > h.argonThreads*2 {
		return false
	}

	return true
}

// decodeHash splits an encoded Argon2id hash string into its parameter set,
// salt, and derived key. Returns [ErrInvalidHash] for any structural
// problem: wrong segment count, unknown variant, unsupported version, or
// undecodable base64 payloads.
func decodeHash(encodedHash string) (hashParams, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	if parts[1] != "argon2id" {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2Version {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	var params hashParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 || len(salt) > 64 {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) < 16 || len(key) > 128 {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	return params, salt, key, nil
}
