package coaching

import "strings"

type Rank string

const (
	RankBronze      Rank = "Bronze"
	RankSilver      Rank = "Silver"
	RankGold        Rank = "Gold"
	RankPlatinum    Rank = "Platinum"
	RankDiamond     Rank = "Diamond"
	RankMaster      Rank = "Master"
	RankGrandmaster Rank = "Grandmaster"
	RankTop500      Rank = "Top 500"
)

// Ranks is the ladder, lowest first.
var Ranks = []Rank{RankBronze, RankSilver, RankGold, RankPlatinum, RankDiamond, RankMaster, RankGrandmaster, RankTop500}

// Level returns the position of r on the ladder, or -1 for an unknown rank.
func (r Rank) Level() int {
	for i, known := range Ranks {
		if r == known {
			return i
		}
	}
	return -1
}

func (r Rank) Valid() bool { return r.Level() >= 0 }

type RankEntry struct {
	Rank Rank   `json:"rank"`
	Date Date   `json:"date"`
	Note string `json:"note"`
}

type Client struct {
	ID                 ID          `json:"id"`
	Name               string      `json:"name"`
	Discord            string      `json:"discord"`
	CurrentRank        Rank        `json:"currentRank"`
	StartingRank       Rank        `json:"startingRank"`
	GoalRank           Rank        `json:"goalRank"`
	Notes              string      `json:"notes"`
	RankHistory        []RankEntry `json:"rankHistory"`
	ManualSessionCount *int        `json:"manualSessionCount"`
}

// SameName reports whether two client names refer to the same person.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// LatestRank is the rank of the newest history entry.
func (c Client) LatestRank() (Rank, bool) {
	if len(c.RankHistory) == 0 {
		return "", false
	}
	return c.RankHistory[len(c.RankHistory)-1].Rank, true
}

// AppendRank records a new rank and makes it current.
func (c *Client) AppendRank(rank Rank, date Date, note string) {
	c.RankHistory = append(c.RankHistory, RankEntry{Rank: rank, Date: date, Note: note})
	c.CurrentRank = rank
}

// SyncRank makes the history the source of truth for the current rank. A
// current rank that disagrees with the history is recorded as a new entry
// first, so no edit is lost.
func (c *Client) SyncRank(today Date, note string) bool {
	latest, ok := c.LatestRank()
	if c.CurrentRank != "" && (!ok || latest != c.CurrentRank) {
		c.AppendRank(c.CurrentRank, today, note)
		return true
	}
	if ok && c.CurrentRank != latest {
		c.CurrentRank = latest
		return true
	}
	return false
}

// NewClient returns a client with the default ladder positions and a history
// seeded with a single entry.
func NewClient(name string, today Date, note string) Client {
	c := Client{
		ID:           NewID(),
		Name:         strings.TrimSpace(name),
		StartingRank: RankBronze,
		GoalRank:     RankDiamond,
	}
	c.AppendRank(RankBronze, today, note)
	return c
}
