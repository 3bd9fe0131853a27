// Package metrics computes the scalar headline statistics shown above
// the dashboard charts. Every function is a pure pass over a
// (filtered) account snapshot; missing numeric fields count as zero
// and empty denominators yield zero, never an error.
package metrics

import (
	"fmt"
	"math"

	"github.com/thesixthai/brandpulse/internal/model"
)

// Reach heuristic: roughly 10% of followers see a post, plus a boost
// from engagement.
const (
	reachFollowerShare   = 0.1
	reachEngagementShare = 0.05
)

// TotalAccounts returns the number of accounts in the snapshot.
func TotalAccounts(accounts []model.Account) int {
	return len(accounts)
}

// TotalCountries returns the number of distinct non-empty countries.
func TotalCountries(accounts []model.Account) int {
	countries := map[string]bool{}
	for _, a := range accounts {
		if a.Country != "" {
			countries[a.Country] = true
		}
	}
	return len(countries)
}

// TotalPosts returns the post count summed across accounts.
func TotalPosts(accounts []model.Account) int {
	total := 0
	for _, a := range accounts {
		total += len(a.Posts)
	}
	return total
}

// TotalEngagements sums likes + comments + video views over all posts.
func TotalEngagements(accounts []model.Account) int {
	total := 0
	for _, a := range accounts {
		for _, p := range a.Posts {
			total += p.Engagement()
		}
	}
	return total
}

// AvgPostEngagement is the rounded mean engagement per post, 0 when
// the snapshot has no posts.
func AvgPostEngagement(accounts []model.Account) int {
	posts := TotalPosts(accounts)
	if posts == 0 {
		return 0
	}
	return int(math.Round(float64(TotalEngagements(accounts)) / float64(posts)))
}

// PostReach estimates one post's reach from its account's follower
// count and its own engagement.
func PostReach(p model.Post, followers int) float64 {
	return reachFollowerShare*float64(followers) + reachEngagementShare*float64(p.Engagement())
}

// EstimatedReach sums the per-post reach estimates over the snapshot,
// truncating to an integer once at the end.
func EstimatedReach(accounts []model.Account) int {
	reach := 0.0
	for _, a := range accounts {
		for _, p := range a.Posts {
			reach += PostReach(p, a.Followers)
		}
	}
	return int(reach)
}

// FormatNumber renders a count for display: one decimal with a B/M/K
// suffix from a thousand up, otherwise the plain integer.
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
