package kernel

// Bridge computes the fixed 5-component bridge-topology reliability at
// time index t (spec §4.5). rows must have exactly 5 entries, in R1..R5
// positional order.
//
// Uses the reduced form spec.md mandates for operation-count parity with
// the reference:
//
//	VAL1 = (R1+R3-R1*R3) * (R2+R4-R2*R4)
//	VAL2 = R1*R2 + R3*R4 - R1*R2*R3*R4
//	output = R5*(VAL1-VAL2) + VAL2
//
// Complexity: O(1).
func Bridge(rows [][]float64, t int) float64 {
	r1, r2, r3, r4, r5 := rows[0][t], rows[1][t], rows[2][t], rows[3][t], rows[4][t]

	val1 := (r1 + r3 - r1*r3) * (r2 + r4 - r2*r4)
	val2 := r1*r2 + r3*r4 - r1*r2*r3*r4

	return Cap(r5*(val1-val2) + val2)
}

// BridgeVec computes w consecutive Bridge outputs starting at t into out.
// Complexity: O(w).
func BridgeVec(rows [][]float64, t, w int, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = Bridge(rows, t+lane)
	}
}
