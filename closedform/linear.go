package closedform

// linearRoots returns −b/a. Requires a ≠ 0.
func linearRoots(a, b float64) []complex128 {
	return []complex128{complex(-b/a, 0)}
}
