package essential

// Meek orientation rules R1–R3 over the working relation matrix.
//
// Each rule turns one undirected pair into a compelled arc. The closure
// loops until no rule fires; every firing strictly reduces the number
// of undirected pairs, so termination is immediate to see. The rule set
// is confluent: application order never changes the fixpoint.

// closeMeek applies R1, R2 and R3 in rounds until none of them fires.
func closeMeek(rel [][]int8) {
	for {
		changed := applyR1(rel)
		if applyR2(rel) {
			changed = true
		}
		if applyR3(rel) {
			changed = true
		}
		if !changed {
			return
		}
	}
}

// adjacent reports whether any relation exists between i and j.
func adjacent(rel [][]int8, i, j int) bool {
	return rel[i][j] != relNone || rel[j][i] != relNone
}

// applyR1: a→b, b—c, a and c non-adjacent ⇒ b→c.
// A collider a→b←c would have been flagged as a v-structure already, so
// the only consistent completion points b at c.
func applyR1(rel [][]int8) bool {
	n := len(rel)
	changed := false
	for b := 0; b < n; b++ {
		for c := 0; c < n; c++ {
			if rel[b][c] != relUndir {
				continue
			}
			for a := 0; a < n; a++ {
				if a == c || rel[a][b] != relArc || adjacent(rel, a, c) {
					continue
				}
				orient(rel, b, c)
				changed = true

				break
			}
		}
	}

	return changed
}

// applyR2: a→c, c→b, a—b ⇒ a→b.
// Orienting b→a instead would close the directed cycle a→c→b→a.
func applyR2(rel [][]int8) bool {
	n := len(rel)
	changed := false
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if rel[a][b] != relUndir {
				continue
			}
			for c := 0; c < n; c++ {
				if rel[a][c] != relArc || rel[c][b] != relArc {
					continue
				}
				orient(rel, a, b)
				changed = true

				break
			}
		}
	}

	return changed
}

// applyR3: a—b, a—c, a—d, c→b, d→b, c and d non-adjacent ⇒ a→b.
// Any other completion either creates a new v-structure at b or a cycle.
func applyR3(rel [][]int8) bool {
	n := len(rel)
	changed := false
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if rel[a][b] != relUndir {
				continue
			}
			if fireR3(rel, a, b) {
				orient(rel, a, b)
				changed = true
			}
		}
	}

	return changed
}

// fireR3 searches a non-adjacent witness pair {c, d} for the a—b edge.
func fireR3(rel [][]int8, a, b int) bool {
	n := len(rel)
	for c := 0; c < n; c++ {
		if rel[a][c] != relUndir || rel[c][b] != relArc {
			continue
		}
		for d := c + 1; d < n; d++ {
			if rel[a][d] != relUndir || rel[d][b] != relArc {
				continue
			}
			if !adjacent(rel, c, d) {
				return true
			}
		}
	}

	return false
}
