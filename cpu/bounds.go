package cpu

// inRange reports whether index addresses a slot in [0, size).
//
// Out-of-range access is absorbed, never raised: reads return zero
// and writes report ok=false. Every register and memory bounds check
// routes through here, so a stricter policy could be swapped in at a
// single point.
func inRange(index, size int) bool {
	return index >= 0 && index < size
}
