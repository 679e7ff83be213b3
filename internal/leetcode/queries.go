package leetcode

// The three query documents sent to the upstream GraphQL API. Field names are
// dictated by the third party and must not drift.

const basicDataQuery = `
  query getUserProfile($username: String!) {
    matchedUser(username: $username) {
      username
      submitStats {
        acSubmissionNum {
          difficulty
          count
          submissions
        }
      }
      profile {
        ranking
        userAvatar
      }
      activeBadge {
        name
        icon
      }
      languageProblemCount {
        languageName
        problemsSolved
      }
    }
    allQuestionsCount {
      difficulty
      count
    }
  }
`

const contestDataQuery = `
  query getContestRanking($username: String!) {
    userContestRanking(username: $username) {
      rating
      globalRanking
      attendedContestsCount
      topPercentage
    }
  }
`

const calendarDataQuery = `
  query getRecentAcSubmissions($username: String!) {
    matchedUser(username: $username) {
      submissionCalendar
    }
  }
`
