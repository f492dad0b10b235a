package maintenance

import "time"

// Season names the northern-hemisphere season for month.
func Season(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return "Spring"
	case month >= time.June && month <= time.August:
		return "Summer"
	case month >= time.September && month <= time.November:
		return "Fall"
	default:
		return "Winter"
	}
}
