// SPDX-License-Identifier: MIT

package gridsearch

import (
	"fmt"

	"github.com/mathisemb/cbnsl-benchmark/metric"
)

// Best — the winning trial for one objective.
//
// Failed trials are skipped; among the rest the trial with the best
// score under the metric's direction wins, earlier trials breaking
// ties (stable under the deterministic combination order).
//
// Errors:
//   - ErrNotRun           — no trial succeeded.
//   - ErrUnknownObjective — no successful trial carries the metric.
func Best(trials []Trial, m metric.Metric) (Trial, error) {
	best := -1
	for i, t := range trials {
		if t.Err != nil {
			continue
		}
		score, ok := t.Scores[m.Name()]
		if !ok {
			continue
		}
		if best == -1 || better(score, trials[best].Scores[m.Name()], m.Direction()) {
			best = i
		}
	}
	if best == -1 {
		if !anySuccessful(trials) {
			return Trial{}, ErrNotRun
		}

		return Trial{}, fmt.Errorf("%w: %q", ErrUnknownObjective, m.Name())
	}

	return trials[best], nil
}

// ParetoFront — the non-dominated trials under several objectives.
//
// A trial dominates another when it is at least as good on every
// metric and strictly better on one. The front keeps every trial no
// other trial dominates, in original order. Failed trials and trials
// missing any of the metrics never enter the front.
//
// Complexity: O(k² · len(metrics)) over k trials.
func ParetoFront(trials []Trial, metrics []metric.Metric) []Trial {
	var front []Trial
	for i, t := range trials {
		if !scoredOnAll(t, metrics) {
			continue
		}
		dominated := false
		for j, other := range trials {
			if i == j || !scoredOnAll(other, metrics) {
				continue
			}
			if dominates(other, t, metrics) {
				dominated = true

				break
			}
		}
		if !dominated {
			front = append(front, t)
		}
	}

	return front
}

// BestOnFront — Pareto filter, then rank the front by one metric.
//
// Errors: as Best, evaluated over the front.
func BestOnFront(trials []Trial, metrics []metric.Metric, rank metric.Metric) (Trial, error) {
	return Best(ParetoFront(trials, metrics), rank)
}

// better reports whether a beats b under the direction.
func better(a, b float64, d metric.Direction) bool {
	if d == metric.LowerIsBetter {
		return a < b
	}

	return a > b
}

// dominates reports whether a is at least as good as b everywhere and
// strictly better somewhere.
func dominates(a, b Trial, metrics []metric.Metric) bool {
	strict := false
	for _, m := range metrics {
		sa, sb := a.Scores[m.Name()], b.Scores[m.Name()]
		if better(sb, sa, m.Direction()) {
			return false
		}
		if better(sa, sb, m.Direction()) {
			strict = true
		}
	}

	return strict
}

// scoredOnAll reports whether a successful trial carries every metric.
func scoredOnAll(t Trial, metrics []metric.Metric) bool {
	if t.Err != nil {
		return false
	}
	for _, m := range metrics {
		if _, ok := t.Scores[m.Name()]; !ok {
			return false
		}
	}

	return true
}

// anySuccessful reports whether at least one trial carries no error.
func anySuccessful(trials []Trial) bool {
	for _, t := range trials {
		if t.Err == nil {
			return true
		}
	}

	return false
}
