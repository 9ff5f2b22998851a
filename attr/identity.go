package attr

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"
)

// TypeIdentity names a concrete attribute type across independently built
// components. Two identities are equal iff Name and Version both match, so
// == is the comparison to use.
//
// Changing either field breaks compatibility with components built against
// the old pair. Bump Version on a breaking payload change.
type TypeIdentity struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Version uint64 `json:"version" yaml:"version" toml:"version"`
}

// String returns "name@vN"
func (id TypeIdentity) String() string {
	return fmt.Sprintf("%s@v%d", id.Name, id.Version)
}

// IsZero reports whether id is the zero identity, which no kind may use.
func (id TypeIdentity) IsZero() bool {
	return id.Name == "" && id.Version == 0
}

// Fingerprint returns a short base58 digest of the identity.
// It is stable across processes and used to compare identities in logs
// and audit output without printing long names.
func (id TypeIdentity) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(id.Name))
	h.Write([]byte{0})
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id.Version)
	h.Write(buf[:])
	return base58.Encode(h.Sum(nil)[:12])
}
