package logo

import (
	"sort"
	"strings"

	"subtrack/internal/entity"
)

// Known self-service cancellation pages for popular services.
var cancelURLs = map[string]string{
	"netflix":      "https://www.netflix.com/cancelplan",
	"disney plus":  "https://www.disneyplus.com/account/subscription",
	"disney+":      "https://www.disneyplus.com/account/subscription",
	"spotify":      "https://www.spotify.com/account/subscription/",
	"prime video":  "https://www.amazon.com/gp/video/mystuff/managesubscriptions",
	"amazon prime": "https://www.amazon.com/gp/video/mystuff/managesubscriptions",
	"hbo":          "https://play.hbomax.com/subscription",
	"viaplay":      "https://viaplay.dk/account/subscription",
	"yousee":       "https://mit.yousee.dk/privat/abonnement",
	"telia":        "https://mit.telia.dk/abonnement",
	"tryg":         "https://www.tryg.dk/privat/min-side",
}

// CancelURL returns the best cancellation link for a subscription:
// a curated per-service page when its title matches one, otherwise the
// merchant's front page from the known or guessed domain. Empty means
// the user has to cancel through customer service.
func (r *Resolver) CancelURL(s entity.Subscription) string {
	title := strings.ToLower(strings.TrimSpace(s.Title))

	if u, ok := cancelURLs[title]; ok {
		return u
	}

	// Longest matching key wins; ties break lexicographically so the
	// answer does not depend on map iteration order.
	var hits []string
	for service := range cancelURLs {
		if strings.Contains(title, service) {
			hits = append(hits, service)
		}
	}
	if len(hits) > 0 {
		sort.Slice(hits, func(i, j int) bool {
			if len(hits[i]) != len(hits[j]) {
				return len(hits[i]) > len(hits[j])
			}
			return hits[i] < hits[j]
		})
		return cancelURLs[hits[0]]
	}

	domain := s.Domain
	if domain == "" {
		domain = r.Resolve(s.Title)
	}
	if domain != "" {
		return "https://" + domain
	}
	return ""
}
