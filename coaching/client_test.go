package coaching_test

import (
	"testing"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c := coaching.NewClient("  Sam ", "2026-03-18", "Auto-added")

	require.NotEmpty(t, c.ID)
	assert.Equal(t, "Sam", c.Name)
	assert.Equal(t, coaching.RankBronze, c.CurrentRank)
	assert.Equal(t, coaching.RankBronze, c.StartingRank)
	assert.Equal(t, coaching.RankDiamond, c.GoalRank)
	assert.Equal(t, []coaching.RankEntry{{Rank: coaching.RankBronze, Date: "2026-03-18", Note: "Auto-added"}}, c.RankHistory)
}

func TestSyncRank(t *testing.T) {
	t.Run("history wins when current is empty", func(t *testing.T) {
		c := coaching.Client{RankHistory: []coaching.RankEntry{{Rank: coaching.RankGold}}}
		assert.True(t, c.SyncRank("2026-03-18", "sync"))

		assert.Equal(t, coaching.RankGold, c.CurrentRank)
		assert.Len(t, c.RankHistory, 1)
	})

	t.Run("diverging current rank is recorded", func(t *testing.T) {
		c := coaching.Client{
			CurrentRank: coaching.RankPlatinum,
			RankHistory: []coaching.RankEntry{{Rank: coaching.RankGold}},
		}
		assert.True(t, c.SyncRank("2026-03-18", "sync"))

		latest, ok := c.LatestRank()
		require.True(t, ok)
		assert.Equal(t, coaching.RankPlatinum, latest)
		assert.Len(t, c.RankHistory, 2)
	})

	t.Run("matching rank is a no-op", func(t *testing.T) {
		c := coaching.Client{
			CurrentRank: coaching.RankGold,
			RankHistory: []coaching.RankEntry{{Rank: coaching.RankGold}},
		}
		assert.False(t, c.SyncRank("2026-03-18", "sync"))
		assert.Len(t, c.RankHistory, 1)
	})
}

func TestRankLevel(t *testing.T) {
	assert.Equal(t, 0, coaching.RankBronze.Level())
	assert.Equal(t, 7, coaching.RankTop500.Level())
	assert.Equal(t, -1, coaching.Rank("Iron").Level())
	assert.True(t, coaching.RankDiamond.Level() > coaching.RankGold.Level())
}

func TestNormalize(t *testing.T) {
	s := coaching.State{
		Clients: []coaching.Client{
			{ID: "c1", Name: "Alex", CurrentRank: coaching.RankSilver},
		},
		Bookings: []coaching.Booking{
			{ID: "b1", ClientName: "alex"},
			{ID: "b2", ClientName: "Jordan"},
		},
		Testimonials: []coaching.Testimonial{{ID: "t1", ClientName: " ALEX "}},
	}

	require.True(t, coaching.Normalize(&s, "2026-03-18"))

	assert.Equal(t, coaching.DefaultSettings(), s.Settings)
	assert.NotNil(t, s.Leads)
	assert.NotNil(t, s.Reminders)
	assert.Equal(t, coaching.ID("c1"), s.Bookings[0].ClientID)
	assert.Empty(t, s.Bookings[1].ClientID)
	assert.Equal(t, coaching.ID("c1"), s.Testimonials[0].ClientID)
	assert.Equal(t, []coaching.RankEntry{{Rank: coaching.RankSilver, Date: "2026-03-18", Note: "Synced from current rank"}}, s.Clients[0].RankHistory)

	assert.True(t, s.Bookings[0].Belongs(s.Clients[0]))
	assert.False(t, s.Bookings[1].Belongs(s.Clients[0]))

	assert.False(t, coaching.Normalize(&s, "2026-03-19"), "a normalized state needs no further repair")
	assert.Len(t, s.Clients[0].RankHistory, 1)
}

func TestNormalize_EmptyCollectionsAreNotRepairs(t *testing.T) {
	s := coaching.State{Settings: coaching.DefaultSettings()}

	assert.False(t, coaching.Normalize(&s, "2026-03-18"))
	assert.NotNil(t, s.Bookings)
	assert.NotNil(t, s.Clients)
}

func TestStateClone(t *testing.T) {
	n := 4
	s := coaching.NewState()
	s.Clients = append(s.Clients, coaching.Client{ID: "c1", ManualSessionCount: &n, RankHistory: []coaching.RankEntry{{Rank: coaching.RankGold}}})

	c := s.Clone()
	*c.Clients[0].ManualSessionCount = 9
	c.Clients[0].RankHistory[0].Rank = coaching.RankBronze

	assert.Equal(t, 4, *s.Clients[0].ManualSessionCount)
	assert.Equal(t, coaching.RankGold, s.Clients[0].RankHistory[0].Rank)
}
