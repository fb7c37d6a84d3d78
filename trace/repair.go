package trace

// Repair fills short unknown runs in seq by linear interpolation, in place.
//
// A run of consecutive unknown entries is filled only when it is bounded by
// resolved entries on both sides and its length does not exceed maxGap.
// Interior position start+j receives a + (b-a)*j/(gap+1), evenly spaced
// between the bounding values. Leading and trailing runs have no bound on
// one side and are never filled, regardless of length.
//
// Repair is deterministic and idempotent: a second pass finds no unknown
// run it could fill that the first pass did not.
func Repair(seq Sequence, maxGap int) {
	if maxGap <= 0 {
		return
	}

	i := 0
	for i < len(seq) {
		if seq[i].Known {
			i++
			continue
		}

		// Unknown run [i, j).
		j := i
		for j < len(seq) && !seq[j].Known {
			j++
		}

		gap := j - i
		hasLeft := i > 0
		hasRight := j < len(seq)

		if hasLeft && hasRight && gap <= maxGap {
			a := seq[i-1].Value
			b := seq[j].Value
			step := (b - a) / float64(gap+1)

			for k := 0; k < gap; k++ {
				seq[i+k] = Known(a + step*float64(k+1))
			}
		}

		i = j
	}
}
