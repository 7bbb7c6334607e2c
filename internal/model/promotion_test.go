package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotionIsCurrent(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	promo := &Promotion{Active: true, ValidFrom: from, ValidUntil: until}

	assert.True(t, promo.IsCurrent(from), "window start is inclusive")
	assert.True(t, promo.IsCurrent(until), "window end is inclusive")
	assert.True(t, promo.IsCurrent(from.AddDate(0, 0, 15)))

	assert.False(t, promo.IsCurrent(from.Add(-time.Second)))
	assert.False(t, promo.IsCurrent(until.Add(time.Second)))

	promo.Active = false
	assert.False(t, promo.IsCurrent(from.AddDate(0, 0, 15)), "inactive promotions are never current")
}
