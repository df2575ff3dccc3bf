package geometry

// EuclideanPattern distributes pulses onsets over n steps as evenly as
// possible. Initial placement is floor(i*n/pulses); a correction pass then
// adds onsets into the largest gaps or removes them from the shortest gaps
// until exactly pulses onsets remain, yielding a Bjorklund-equivalent
// maximally even pattern.
func EuclideanPattern(n, pulses int) []bool {
	if n <= 0 {
		return nil
	}
	pattern := make([]bool, n)
	if pulses <= 0 {
		return pattern
	}
	if pulses >= n {
		for i := range pattern {
			pattern[i] = true
		}
		return pattern
	}

	for i := 0; i < pulses; i++ {
		pattern[i*n/pulses] = true
	}

	// Rounding can drift the count; settle it gap by gap
	for count := countOnsets(pattern); count != pulses; count = countOnsets(pattern) {
		if count < pulses {
			fillLargestGap(pattern)
		} else {
			removeShortestGapOnset(pattern)
		}
	}
	return pattern
}

func countOnsets(pattern []bool) int {
	n := 0
	for _, on := range pattern {
		if on {
			n++
		}
	}
	return n
}

// fillLargestGap turns on the middle step of the widest run of silent steps
func fillLargestGap(pattern []bool) {
	n := len(pattern)
	bestStart, bestLen := -1, 0

	for i := 0; i < n; i++ {
		if pattern[i] {
			continue
		}
		// Walk the silent run starting at i, wrapping once
		length := 0
		for j := i; length < n && !pattern[j%n]; j++ {
			length++
		}
		if length > bestLen {
			bestStart, bestLen = i, length
		}
	}
	if bestStart < 0 {
		return
	}
	pattern[(bestStart+bestLen/2)%n] = true
}

// removeShortestGapOnset clears the onset whose following silent gap is the
// shortest, i.e. the most crowded onset
func removeShortestGapOnset(pattern []bool) {
	n := len(pattern)
	bestIdx, bestGap := -1, n+1

	for i := 0; i < n; i++ {
		if !pattern[i] {
			continue
		}
		gap := 0
		for j := 1; j < n && !pattern[(i+j)%n]; j++ {
			gap++
		}
		if gap < bestGap {
			bestIdx, bestGap = i, gap
		}
	}
	if bestIdx >= 0 {
		pattern[bestIdx] = false
	}
}
