package coaching

import "time"

type LeadSource string

const (
	SourceTwitch         LeadSource = "Twitch"
	SourceDiscord        LeadSource = "Discord"
	SourceTwitter        LeadSource = "Twitter"
	SourceReddit         LeadSource = "Reddit"
	SourceFriendReferral LeadSource = "Friend Referral"
	SourceOther          LeadSource = "Other"
)

var LeadSources = []LeadSource{SourceTwitch, SourceDiscord, SourceTwitter, SourceReddit, SourceFriendReferral, SourceOther}

func (s LeadSource) Valid() bool {
	for _, known := range LeadSources {
		if s == known {
			return true
		}
	}
	return false
}

type LeadStatus string

const (
	LeadNew        LeadStatus = "new"
	LeadContacted  LeadStatus = "contacted"
	LeadInterested LeadStatus = "interested"
	LeadConverted  LeadStatus = "converted"
	LeadLost       LeadStatus = "lost"
)

type Lead struct {
	ID          ID         `json:"id"`
	Name        string     `json:"name"`
	Source      LeadSource `json:"source"`
	ContactInfo string     `json:"contactInfo"`
	Status      LeadStatus `json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

type Reminder struct {
	ID        ID       `json:"id"`
	Title     string   `json:"title"`
	DueDate   Date     `json:"dueDate"`
	Notes     string   `json:"notes"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

type Testimonial struct {
	ID         ID     `json:"id"`
	ClientID   ID     `json:"clientId,omitempty"`
	ClientName string `json:"clientName"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	Date       Date   `json:"date"`
}
