package viral

// LengthScore grades a clip duration in seconds against the target band for
// short-form video. The 30-90s sweet spot scores highest; scores fall off in
// 10-second steps on both sides, bottoming out for anything past two minutes.
// The same table is spelled out verbatim inside the selection prompt, so the
// two must be kept in sync.
func LengthScore(d float64) int {
	switch {
	case d > 120:
		return 2
	case d >= 30 && d <= 90:
		return 10
	case (d >= 20 && d < 30) || (d > 90 && d <= 100):
		return 8
	case (d >= 10 && d < 20) || (d > 100 && d <= 110):
		return 6
	default:
		return 4
	}
}
