// SPDX-License-Identifier: MIT

// Package pipeline orchestrates one benchmark sweep: several structure
// learners, one dataset, one optional golden structure, a set of
// scoring metrics.
//
// 🚀 What a run does:
//
//  1. Adapt the dataset per learner: a learner that consumes discrete
//     data gets the continuous input discretized through the configured
//     strategy (and it is an error to need one that was never set).
//  2. Run every registered learner sequentially, timing each.
//  3. When a golden structure is present, score every learned structure
//     against it with every registered metric — one comparison per
//     learner, all metrics read from that single result.
//  4. Collect everything into a Report: one Result per learner with its
//     structure, scores, duration and error, under a fresh run ID.
//
// A learner failure is data, not a crash: it is recorded on its Result
// and the sweep moves on, so one broken external tool cannot sink an
// overnight benchmark. Only caller bugs (no learners, nil dataset, a
// discrete learner with no strategy) abort the run.
//
// ⚙️ Usage:
//
//	p := pipeline.New(pipeline.WithLogger(log))
//	p.AddLearner(cpc)
//	p.AddLearner(notears)
//	p.AddMetric(metric.SHD{})
//	p.AddMetric(metric.F1{})
//	p.SetGolden(golden)
//	rep, err := p.Run(ctx, ds)
//
// The pipeline never looks inside a learner and never renders output;
// reporting lives in the report package.
package pipeline
