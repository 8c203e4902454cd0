/*
  solver.go
  Description: resolves per-column widths from per-column extents and the
  available content width
  -----------------------------------------------------------------------------
*/

package table

// computeActualColumnWidths implements the algorithm of spec.md section 4.5.
//
//	sumMin = sum(minWidth)
//	sumMax = sum(maxWidth)
//	if sumMax <= available:      widths[c] = maxWidth[c]
//	else if sumMin >= available: widths[c] = minWidth[c]
//	else:
//	    W = available - sumMin
//	    D = sumMax - sumMin
//	    widths[c] = minWidth[c] + W*(maxWidth[c]-minWidth[c])/D
//
// Integer division rounds toward zero; the resulting sum of widths may fall
// short of available by up to columns-1 -- this rounding residual is
// accepted, not redistributed, per spec.md's open question on the topic.
func computeActualColumnWidths(extents []Extent, available int) []int {
	n := len(extents)
	widths := make([]int, n)
	if n == 0 {
		return widths
	}

	sumMin, sumMax := 0, 0
	for _, e := range extents {
		sumMin += e.Min
		sumMax += e.Max
	}

	switch {
	case sumMax <= available:
		for c, e := range extents {
			widths[c] = e.Max
		}
	case sumMin >= available:
		for c, e := range extents {
			widths[c] = e.Min
		}
	default:
		w := available - sumMin
		d := sumMax - sumMin
		for c, e := range extents {
			widths[c] = e.Min + w*(e.Max-e.Min)/d
		}
	}

	return widths
}
