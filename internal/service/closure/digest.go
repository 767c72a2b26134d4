package closure

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// Canonicalize re-encodes a JSON document with sorted object keys, no
// insignificant whitespace and no HTML escaping. Numbers keep their literal
// text. The stored form may reorder keys (JSONB does), so both sealing and
// verification hash the canonical form.
func Canonicalize(payload []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func newHash(algo domain.HashAlgorithm) (hash.Hash, error) {
	switch algo {
	case domain.HashMD5, "":
		return md5.New(), nil
	case domain.HashBlake2b256:
		return blake2b.New256(nil)
	}
	return nil, fmt.Errorf("hash algorithm %q: %w", algo, domain.ErrValidation)
}

// Digest hashes canonical(payload) + monthKey + outletID and returns it
// hex-encoded. The concatenation order is part of every sealed hash and
// must not change.
func Digest(algo domain.HashAlgorithm, payload []byte, monthKey, outletID string) (string, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}

	h, err := newHash(algo)
	if err != nil {
		return "", err
	}
	h.Write(canonical)
	h.Write([]byte(monthKey))
	h.Write([]byte(outletID))
	return hex.EncodeToString(h.Sum(nil)), nil
}
