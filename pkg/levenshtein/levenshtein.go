// Package levenshtein computes edit distances between short strings and
// picks the closest candidate for "did you mean" hints.
package levenshtein

// Distance returns the number of single-rune insertions, deletions and
// substitutions that turn a into b. It keeps one row of the edit matrix.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range ra {
		diag := row[0]
		row[0] = i + 1

		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}

			next := min(row[j+1]+1, row[j]+1, diag+cost)
			diag = row[j+1]
			row[j+1] = next
		}
	}

	return row[len(rb)]
}

// Closest returns the candidate nearest to word, if its distance is at most
// maxDistance. Ties go to the earlier candidate.
func Closest(word string, candidates []string, maxDistance int) (string, bool) {
	best, bestDistance := "", maxDistance+1

	for _, c := range candidates {
		if d := Distance(word, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, bestDistance <= maxDistance
}
