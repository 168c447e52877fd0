package engine

// SweepStep returns the widest grid spacing for which every point on the map
// lies within tolerance of some grid point.
func SweepStep(tolerance int) int {
	if tolerance < 0 {
		tolerance = 0
	}
	step := 1
	for {
		next := step + 1
		half := next / 2
		if 2*half*half > tolerance*tolerance || next > MapMax {
			return step
		}
		step = next
	}
}

// SweepAxis lists the sweep coordinates along one axis, always ending at MapMax
func SweepAxis(step int) []int {
	if step < 1 {
		step = 1
	}
	var coords []int
	for v := MapMin; v < MapMax; v += step {
		coords = append(coords, v)
	}
	return append(coords, MapMax)
}

// SweepSize is the number of checks needed to cover the map once
func SweepSize(tolerance int) int {
	n := len(SweepAxis(SweepStep(tolerance)))
	return n * n
}
