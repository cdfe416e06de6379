package compare_test

import (
	"fmt"

	"github.com/mathisemb/cbnsl-benchmark/compare"
	"github.com/mathisemb/cbnsl-benchmark/cpdag"
)

// ExampleCompare scores a candidate that recovered the skeleton of the
// reference but reversed one arc.
//
// Scenario:
//
//	reference: A→B, B—C
//	candidate: B→A, B—C
//
// The pair {A,B} exists in both structures but with the wrong
// orientation, so it costs one false positive (not a false negative)
// and one SHD point.
func ExampleCompare() {
	ref := cpdag.New()
	_ = ref.AddArc("A", "B")
	_ = ref.AddEdge("B", "C")

	cand := cpdag.New()
	_ = cand.AddArc("B", "A")
	_ = cand.AddEdge("B", "C")

	res, err := compare.Compare(ref, cand)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("TP=%d FP=%d FN=%d SHD=%d\n", res.TP, res.FP, res.FN, res.SHD)
	fmt.Printf("precision=%.3f recall=%.3f F1=%.3f\n", res.Precision, res.Recall, res.F1)
	// Output:
	// TP=1 FP=1 FN=0 SHD=1
	// precision=0.500 recall=1.000 F1=0.667
}

// ExampleCompare_policy contrasts the two counting conventions on the
// same misoriented arc.
func ExampleCompare_policy() {
	ref := cpdag.New()
	_ = ref.AddArc("A", "B")

	cand := cpdag.New()
	_ = cand.AddArc("B", "A")

	lenient, _ := compare.Compare(ref, cand)
	strict, _ := compare.Compare(ref, cand, compare.WithPolicy(compare.PenalizeTwice))

	fmt.Printf("%s: FP=%d FN=%d SHD=%d\n", compare.PenalizeOnce, lenient.FP, lenient.FN, lenient.SHD)
	fmt.Printf("%s: FP=%d FN=%d SHD=%d\n", compare.PenalizeTwice, strict.FP, strict.FN, strict.SHD)
	// Output:
	// penalize-once: FP=1 FN=0 SHD=1
	// penalize-twice: FP=1 FN=1 SHD=1
}
