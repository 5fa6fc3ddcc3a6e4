package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRun(t *testing.T) {
	base := time.Date(2025, 8, 30, 4, 30, 0, 0, time.UTC)

	// la hora de hoy todavía no llegó
	next := nextRun(base, 6, 0)
	assert.Equal(t, time.Date(2025, 8, 30, 6, 0, 0, 0, time.UTC), next)

	// la hora de hoy ya pasó → mañana
	next = nextRun(base, 3, 0)
	assert.Equal(t, time.Date(2025, 8, 31, 3, 0, 0, 0, time.UTC), next)

	// exactamente ahora → mañana, nunca doble refresh en el mismo tick
	next = nextRun(base, 4, 30)
	assert.Equal(t, time.Date(2025, 8, 31, 4, 30, 0, 0, time.UTC), next)

	// cruce de fin de mes
	eom := time.Date(2025, 8, 31, 23, 59, 0, 0, time.UTC)
	next = nextRun(eom, 6, 0)
	assert.Equal(t, time.Date(2025, 9, 1, 6, 0, 0, 0, time.UTC), next)
}
