package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/gw2-api/internal/pkg/clock"
)

func TestFixed(t *testing.T) {
	start := time.Date(2012, 8, 28, 0, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())
	c.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now()
	now := clock.New().Now()
	assert.False(t, now.Before(before))
}
