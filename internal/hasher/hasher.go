package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length. 16 hex chars (64 bits) is collision-
// safe for any realistic batch of output files.
func ContentHash(data []byte, hexLen int) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(data))
	full := hex.EncodeToString(b[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

// VariantSeed derives the random-stream seed for one output variant
// from the source name, the variant index and an entropy word. The
// same triple always yields the same seed, which is what makes a
// variant reproducible once its seed is known.
func VariantSeed(name string, index int, entropy uint64) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%s\x00%d\x00%d", name, index, entropy)
	return d.Sum64()
}
