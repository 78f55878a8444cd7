package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher turns client IPs into stable, salted pseudonyms.
type Hasher struct {
	salt []byte
}

func NewHasher(salt []byte) *Hasher {
	return &Hasher{salt: append([]byte(nil), salt...)}
}

// NewRandomHasher salts with 32 random bytes, so hashes are only comparable
// within one process lifetime.
func NewRandomHasher() (*Hasher, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return &Hasher{salt: salt}, nil
}

// Hash returns the first 16 hex characters of sha256(ip || salt).
func (h *Hasher) Hash(ip string) string {
	sum := sha256.New()
	sum.Write([]byte(ip))
	sum.Write(h.salt)
	return hex.EncodeToString(sum.Sum(nil))[:16]
}
