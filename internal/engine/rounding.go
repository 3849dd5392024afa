package engine

import "math"

// RoundToSlot snaps minutes to the nearest 10-minute slot with ties rounding
// away from zero (spreadsheet MROUND semantics): 105 rounds to 110, never
// 100. NaN and negative inputs round to 0.
func RoundToSlot(minutes float64) int {
	if math.IsNaN(minutes) || minutes < 0 {
		return 0
	}
	return int(math.Floor(minutes/slotMinutes+0.5)) * slotMinutes
}

// RoundUpToSlot always rounds up to the next 10-minute slot, for schedules
// that must never under-book. NaN and non-positive inputs round to 0.
func RoundUpToSlot(minutes float64) int {
	if math.IsNaN(minutes) || minutes <= 0 {
		return 0
	}
	return int(math.Ceil(minutes/slotMinutes)) * slotMinutes
}
