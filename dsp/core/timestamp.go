package core

import "time"

// Timestamp returns the current local date and time as "20060102_150405".
// Useful for tagging simulation output files.
func Timestamp() string {
	return time.Now().Format("20060102_150405")
}
