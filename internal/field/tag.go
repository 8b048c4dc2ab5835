package field

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// TagFromBytes hashes input with SHAKE-256 and reduces the first 8 bytes
// of the digest into the field. It is deterministic and collision
// resistant up to the field's size, which is all §4.1 requires of a Tag
// implementation.
func TagFromBytes(input []byte) Elem {
	h := make([]byte, 8)
	sponge := sha3.NewShake256()
	sponge.Write(input)
	sponge.Read(h)
	return FromUint64(binary.BigEndian.Uint64(h))
}
