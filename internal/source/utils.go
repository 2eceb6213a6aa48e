package source

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) //nolint:gosec // i < len(content) <= max uint32
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Binary search for the number of newlines strictly before off.
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	start := lineIdx[lo-1] + 1 // first byte of the line off sits on
	return LineCol{Line: uint32(lo + 1), Col: off - start + 1} //nolint:gosec
}
