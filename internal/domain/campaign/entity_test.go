//go:build unit

package campaign_test

import (
	"testing"
	"time"

	"petpromise/internal/domain/campaign"

	"github.com/stretchr/testify/assert"
)

func TestExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	c := campaign.Campaign{LastDate: now.Add(24 * time.Hour)}
	assert.False(t, c.Expired(now))
	assert.True(t, c.AcceptsDonations(now))

	c.LastDate = now.Add(-time.Minute)
	assert.True(t, c.Expired(now))
	assert.False(t, c.AcceptsDonations(now))
}

func TestAcceptsDonations_Paused(t *testing.T) {
	now := time.Now()
	c := campaign.Campaign{LastDate: now.Add(time.Hour), IsPaused: true}
	assert.False(t, c.AcceptsDonations(now))
}
