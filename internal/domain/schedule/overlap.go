package schedule

// Overlaps testa sobreposição de intervalos semiabertos [aStart, aEnd) e
// [bStart, bEnd). Pontas encostadas (aEnd == bStart) não são sobreposição.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}
