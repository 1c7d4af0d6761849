package glitch

import "math/rand"

// Band is a contiguous run of pixels along one sorting line. Bands on
// the same line never overlap; bands on adjacent lines almost always
// do, because each line draws its own boundary jitter. That
// misalignment is what produces the streaky glitch look.
type Band struct {
	Start int
	Len   int
}

// maxOffset is the largest boundary perturbation for a line split into
// the given number of blocks. Grows with intensity: about half a band
// at intensity 0, small near the 3-blocks floor.
func maxOffset(base, blocks, intensity int) int {
	return int(float64(base) * float64(blocks+intensity) / float64(2*blocks))
}

// partitionLine splits a line of the given length into non-overlapping
// bands that cover it exactly. Boundaries start evenly spaced and each
// internal one is shifted by a uniform random offset, then clamped so
// the sequence stays strictly increasing within the line. One block
// (or a one-pixel line) yields a single band spanning everything; a
// line shorter than the block count is split into at most one band per
// pixel.
func partitionLine(length, blocks, intensity int, rng *rand.Rand) []Band {
	if blocks > length {
		blocks = length
	}
	if blocks <= 1 || length <= 1 {
		return []Band{{Start: 0, Len: length}}
	}

	base := length / blocks
	max := maxOffset(base, blocks, intensity)

	bands := make([]Band, 0, blocks)
	prev := 0
	for k := 1; k < blocks; k++ {
		cut := k * length / blocks
		if max > 0 {
			cut += rng.Intn(2*max+1) - max
		}
		// Keep at least one pixel per remaining band.
		if lo := prev + 1; cut < lo {
			cut = lo
		}
		if hi := length - (blocks - k); cut > hi {
			cut = hi
		}
		bands = append(bands, Band{Start: prev, Len: cut - prev})
		prev = cut
	}
	return append(bands, Band{Start: prev, Len: length - prev})
}
