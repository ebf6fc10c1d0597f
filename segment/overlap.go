package segment

// Stats summarizes the overlapping speech found in a segment sequence.
type Stats struct {
	// Total is the accumulated overlap duration in seconds.
	Total float64
	// Relative is Total divided by the end of the last overlap interval
	// seen, or 0 when no overlap was found.
	Relative float64
}

// Overlap computes overlapping speech across a sequence ordered by start
// time, regardless of speaker. Only consecutive pairs are compared, so an
// overlap between non-adjacent segments goes undetected; this mirrors the
// published metric and is kept as-is.
//
// Chained overlaps are not double-counted: when an overlap interval begins
// before the previous interval's end, only the part past that end is added.
func Overlap(segs []Segment) (Stats, error) {
	if len(segs) == 0 {
		return Stats{}, ErrEmptyInput
	}

	type interval struct{ start, end float64 }
	var found []interval
	for i := 0; i+1 < len(segs); i++ {
		start := segs[i].Start
		if segs[i+1].Start > start {
			start = segs[i+1].Start
		}
		end := segs[i].End
		if segs[i+1].End < end {
			end = segs[i+1].End
		}
		if start < end {
			found = append(found, interval{start, end})
		}
	}

	lastEnd := 0.0
	total := 0.0
	for _, ov := range found {
		if ov.start <= lastEnd {
			total += ov.end - lastEnd
		} else {
			total += ov.end - ov.start
		}
		lastEnd = ov.end
	}

	st := Stats{Total: total}
	if len(found) > 0 && lastEnd > 0 {
		st.Relative = total / lastEnd
	}
	return st, nil
}
