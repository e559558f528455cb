package common

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatDistance renders meters for people: "850 m" below a kilometer,
// "12.35 km" (or "1,204.5 km") above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%s m", humanize.FtoaWithDigits(meters, 0))
	}
	return fmt.Sprintf("%s km", humanize.CommafWithDigits(meters/1000, 2))
}

// FormatDuration renders seconds as "d days, h hours, m minutes, s seconds".
// Negative durations (out-of-order tracks) keep their sign on the first field.
func FormatDuration(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	d := seconds / 86400
	h := seconds % 86400 / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%s%d days, %d hours, %d minutes, %d seconds", sign, d, h, m, s)
}
