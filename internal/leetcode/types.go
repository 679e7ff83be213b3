package leetcode

// Raw response payloads, mirroring the upstream schema. Pointer fields mark
// data the upstream may legitimately omit.

// DifficultyCount is one entry of acSubmissionNum or allQuestionsCount.
// Submissions is only populated on the former.
type DifficultyCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// Badge is the currently active achievement badge.
type Badge struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// LanguageCount is one per-language solve count. Upstream order is not
// guaranteed.
type LanguageCount struct {
	LanguageName   string `json:"languageName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

// UserProfile is the profile subtree of matchedUser.
type UserProfile struct {
	Ranking    *int   `json:"ranking"`
	UserAvatar string `json:"userAvatar"`
}

// SubmitStats wraps the accepted-submission counts.
type SubmitStats struct {
	ACSubmissionNum []DifficultyCount `json:"acSubmissionNum"`
}

// MatchedUser is the user subtree of the basic-profile query. A nil
// MatchedUser in BasicData means the username did not resolve.
type MatchedUser struct {
	Username             string          `json:"username"`
	SubmitStats          SubmitStats     `json:"submitStats"`
	Profile              UserProfile     `json:"profile"`
	ActiveBadge          *Badge          `json:"activeBadge"`
	LanguageProblemCount []LanguageCount `json:"languageProblemCount"`
}

// BasicData is the required basic-profile payload.
type BasicData struct {
	MatchedUser       *MatchedUser      `json:"matchedUser"`
	AllQuestionsCount []DifficultyCount `json:"allQuestionsCount"`
}

// ContestRanking is the contest standing subtree.
type ContestRanking struct {
	Rating                float64 `json:"rating"`
	GlobalRanking         *int    `json:"globalRanking"`
	AttendedContestsCount int     `json:"attendedContestsCount"`
	TopPercentage         float64 `json:"topPercentage"`
}

// ContestData is the optional contest-ranking payload.
type ContestData struct {
	UserContestRanking *ContestRanking `json:"userContestRanking"`
}

// CalendarUser carries the string-encoded submission calendar. The value is a
// JSON document (epoch-day → count) that must be decoded before use.
type CalendarUser struct {
	SubmissionCalendar string `json:"submissionCalendar"`
}

// CalendarData is the optional submission-calendar payload.
type CalendarData struct {
	MatchedUser *CalendarUser `json:"matchedUser"`
}
