package service

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/akhilkushwaha/portfolio-backend/internal/leetcode"
	"github.com/akhilkushwaha/portfolio-backend/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// aggregateDifficulty is the sentinel label the upstream uses for the
	// all-difficulties aggregate row.
	aggregateDifficulty = "All"

	// placeholderAvatarURL stands in when the profile has no avatar.
	placeholderAvatarURL = "https://placehold.co/100x100/363636/ffffff?text=A"

	// noActiveBadge is the display sentinel when no badge is active.
	noActiveBadge = "No Active Badge"

	// rankUnknown distinguishes "unknown" from a legitimate zero.
	rankUnknown = "N/A"

	topLanguageCount = 3
)

var rankPrinter = message.NewPrinter(language.English)

// formatRank renders a ranking with thousands separators, or "N/A" when the
// upstream reported none. Absent and zero must never be conflated.
func formatRank(rank *int) string {
	if rank == nil {
		return rankUnknown
	}
	return rankPrinter.Sprintf("%d", *rank)
}

// buildOverview merges the three raw payloads into the view-model. Contest
// and calendar may be nil; every missing piece becomes a documented default,
// so the result is always fully populated.
//
// Pure apart from the warn log on a malformed calendar document.
func buildOverview(basic *leetcode.BasicData, contest *leetcode.ContestData, calendar *leetcode.CalendarData, log zerolog.Logger) model.StatsOverview {
	user := basic.MatchedUser

	totalProblems := findDifficulty(basic.AllQuestionsCount, aggregateDifficulty).Count
	submissionStats := user.SubmitStats.ACSubmissionNum
	totalSolved := findDifficulty(submissionStats, aggregateDifficulty).Count

	overview := model.StatsOverview{
		Profile: model.Profile{
			Username: user.Username,
			Tag:      user.Username,
			Rank:     formatRank(user.Profile.Ranking),
			ImageURL: user.Profile.UserAvatar,
		},
		Contest: model.Contest{
			Rating:     0,
			GlobalRank: rankUnknown,
			Attended:   0,
			TopPercent: 0,
		},
		Solved: model.Solved{
			Total:   totalProblems,
			Current: totalSolved,
			Breakdown: model.Breakdown{
				Easy:   difficultyStat(submissionStats, "Easy"),
				Medium: difficultyStat(submissionStats, "Medium"),
				Hard:   difficultyStat(submissionStats, "Hard"),
			},
			Attempting: rankUnknown,
		},
		Badges: model.Badges{
			Count:  0,
			Recent: noActiveBadge,
		},
		Stats: model.CommunityStats{
			Languages: topLanguages(user.LanguageProblemCount),
		},
		ContributionCalendar: map[string]int{},
	}

	if overview.Profile.ImageURL == "" {
		overview.Profile.ImageURL = placeholderAvatarURL
	}

	if badge := user.ActiveBadge; badge != nil {
		overview.Badges.Count = 1
		if badge.Name != "" {
			overview.Badges.Recent = badge.Name
		}
		if badge.Icon != "" {
			icon := badge.Icon
			overview.Badges.ImageURL = &icon
		}
	}

	if contest != nil && contest.UserContestRanking != nil {
		ranking := contest.UserContestRanking
		overview.Contest = model.Contest{
			Rating:     int(math.Round(ranking.Rating)),
			GlobalRank: formatRank(ranking.GlobalRanking),
			Attended:   ranking.AttendedContestsCount,
			TopPercent: int(math.Round(ranking.TopPercentage)),
		}
	}

	if calendar != nil && calendar.MatchedUser != nil && calendar.MatchedUser.SubmissionCalendar != "" {
		decoded := map[string]int{}
		if err := json.Unmarshal([]byte(calendar.MatchedUser.SubmissionCalendar), &decoded); err != nil {
			log.Warn().Err(err).Msg("failed to decode submission calendar, using empty calendar")
		} else {
			overview.ContributionCalendar = decoded
		}
	}

	return overview
}

// findDifficulty looks up a row by its exact difficulty label; a zero row
// comes back when the upstream omitted it.
func findDifficulty(rows []leetcode.DifficultyCount, difficulty string) leetcode.DifficultyCount {
	for _, row := range rows {
		if row.Difficulty == difficulty {
			return row
		}
	}
	return leetcode.DifficultyCount{Difficulty: difficulty}
}

// difficultyStat converts one lookup into the view-model shape. The breakdown
// always carries every difficulty key, so omissions become zero entries.
func difficultyStat(rows []leetcode.DifficultyCount, difficulty string) model.DifficultyStat {
	row := findDifficulty(rows, difficulty)
	return model.DifficultyStat{
		Difficulty:  row.Difficulty,
		Count:       row.Count,
		Submissions: row.Submissions,
	}
}

// topLanguages sorts languages by solves descending and keeps the top three.
// The sort is stable: ties retain upstream order.
func topLanguages(langs []leetcode.LanguageCount) []model.Language {
	sorted := make([]leetcode.LanguageCount, len(langs))
	copy(sorted, langs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProblemsSolved > sorted[j].ProblemsSolved
	})

	if len(sorted) > topLanguageCount {
		sorted = sorted[:topLanguageCount]
	}

	top := make([]model.Language, 0, len(sorted))
	for _, lang := range sorted {
		top = append(top, model.Language{Name: lang.LanguageName, Solved: lang.ProblemsSolved})
	}
	return top
}
