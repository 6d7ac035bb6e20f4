package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bloom/internal/platform/clock"
)

func TestDateKeyUsesLocation(t *testing.T) {
	t.Parallel()
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	late := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01", clock.DateKey(late, time.UTC))
	assert.Equal(t, "2026-03-02", clock.DateKey(late, paris))
}

func TestDaysSince(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	fiveDays := now.Add(-5*24*time.Hour - time.Hour)
	almostOne := now.Add(-23 * time.Hour)
	future := now.Add(time.Hour)

	assert.Equal(t, clock.NeverDays, clock.DaysSince(now, nil))
	assert.Equal(t, 5, clock.DaysSince(now, &fiveDays))
	assert.Equal(t, 0, clock.DaysSince(now, &almostOne))
	assert.Equal(t, 0, clock.DaysSince(now, &future))
}
