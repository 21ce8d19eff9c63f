package engine

// Aggregate sums a batch of pay records componentwise. Empty input yields
// the all-zero identity. The fold is commutative and associative, so
// aggregate(A ++ B) equals aggregate(A) merged with aggregate(B) for any
// partition of the records.
func Aggregate(records []PayRecord) Totals {
	var t Totals
	for _, r := range records {
		t = t.Add(r)
	}
	return t
}
