// Package model contains domain entities and DTOs used across layers.
// Data shapes only, no behavior.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatsOverview is the consumer-ready view of the LeetCode data, rebuilt from
// scratch on every aggregation cycle. Every field is always present: missing
// upstream data is defaulted, never omitted.
type StatsOverview struct {
	Profile              Profile        `json:"profile"`
	Contest              Contest        `json:"contest"`
	Solved               Solved         `json:"solved"`
	Badges               Badges         `json:"badges"`
	Stats                CommunityStats `json:"stats"`
	ContributionCalendar map[string]int `json:"contributionCalendar"`
}

// Profile carries identity and global ranking.
// Rank is a thousands-grouped string, or "N/A" when the upstream has none —
// "N/A" and "0" mean different things and must stay distinct.
type Profile struct {
	Username string `json:"username"`
	Tag      string `json:"tag"`
	Rank     string `json:"rank"`
	ImageURL string `json:"imageUrl"`
}

// Contest summarizes contest standing. All fields default to zero values
// ("N/A" for the rank) when the contest query yields nothing.
type Contest struct {
	Rating     int    `json:"rating"`
	GlobalRank string `json:"globalRank"`
	Attended   int    `json:"attended"`
	TopPercent int    `json:"topPercent"`
}

// Solved carries solve counts. Breakdown always has exactly easy, medium and
// hard entries; a difficulty the upstream omits becomes a zero entry.
type Solved struct {
	Total      int       `json:"total"`
	Current    int       `json:"current"`
	Breakdown  Breakdown `json:"breakdown"`
	Attempting string    `json:"attempting"`
}

// Breakdown is the fixed per-difficulty solve table.
type Breakdown struct {
	Easy   DifficultyStat `json:"easy"`
	Medium DifficultyStat `json:"medium"`
	Hard   DifficultyStat `json:"hard"`
}

// DifficultyStat mirrors one acSubmissionNum entry.
type DifficultyStat struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// Badges models only whether a badge is currently active (count is 0 or 1).
type Badges struct {
	Count    int     `json:"count"`
	Recent   string  `json:"recent"`
	ImageURL *string `json:"imageUrl"`
}

// CommunityStats currently carries only the top languages; the public profile
// exposes nothing else reliable.
type CommunityStats struct {
	Languages []Language `json:"languages"`
}

// Language is one per-language solve count, ordered by solves descending.
type Language struct {
	Name   string `json:"name"`
	Solved int    `json:"solved"`
}

// Contact statuses tracked for the admin view.
const (
	ContactStatusPending = "pending"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact is a stored contact-form submission.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Website   string             `bson:"website" json:"website"`
	Message   string             `bson:"message" json:"message"`
	IPAddress string             `bson:"ipAddress" json:"ipAddress"`
	UserAgent string             `bson:"userAgent" json:"userAgent"`
	Referrer  string             `bson:"referrer" json:"referrer"`
	Status    string             `bson:"status" json:"status"`
	RepliedAt *time.Time         `bson:"repliedAt" json:"repliedAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
