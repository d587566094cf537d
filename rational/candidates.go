package rational

// Ratio is an exact candidate p/q, kept next to its float value so the
// search can verify it without rounding.
type Ratio struct {
	Num int64
	Den int64
}

// CandidateSet is the output of Candidates.
//
// Values[k] is the k-th generated ratio, or the sentinel 0 when an equal
// ratio was generated earlier. Ratios[k] holds the matching exact pair
// (zeroed for sentinels). Distinct counts the non-sentinel entries.
type CandidateSet struct {
	Values   []float64
	Ratios   []Ratio
	Distinct int
}

// Candidates builds every ratio num[i]/den[j].
//
// Generation is row-major with the denominator in the outer loop and the
// numerator in the inner loop. A ratio equal to one produced earlier in the
// same pass is overwritten with 0: the first occurrence wins. Zero can never
// be a root when the constant term is non-zero, so it is safe as a
// "discard" marker.
//
// Complexity: O((nN·nD)²) comparisons, one allocation per slice.
func Candidates(num, den []int64) CandidateSet {
	total := len(num) * len(den)
	set := CandidateSet{
		Values: make([]float64, total),
		Ratios: make([]Ratio, total),
	}

	var (
		i, j, k, l int
		v          float64
	)
	for j = 0; j < len(den); j++ {
		for i = 0; i < len(num); i++ {
			v = float64(num[i]) / float64(den[j])
			for l = 0; l < k; l++ {
				if set.Values[l] == v {
					v = 0
					break
				}
			}
			set.Values[k] = v
			if v != 0 {
				set.Ratios[k] = Ratio{Num: num[i], Den: den[j]}
				set.Distinct++
			}
			k++
		}
	}

	return set
}

// Unique returns the non-sentinel values in generation order.
func (s CandidateSet) Unique() []float64 {
	out := make([]float64, 0, s.Distinct)
	for _, v := range s.Values {
		if v != 0 {
			out = append(out, v)
		}
	}

	return out
}
