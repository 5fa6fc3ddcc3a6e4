package main

import "time"

// nextRun: próxima ocurrencia de las hh:mm (UTC) estrictamente después
// de now. Si la hora de hoy ya pasó (o es exactamente ahora), va mañana.
func nextRun(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
