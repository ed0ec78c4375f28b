// Package faq holds the static FAQ table and its keyword matcher.
package faq

import "strings"

// Entry maps a set of trigger keywords to one canned answer. The table
// is loaded once and read-only at runtime.
type Entry struct {
	Category string
	Keywords []string
	Answer   string
}

// Match is a successful lookup result.
type Match struct {
	Category string
	Answer   string
}

// entries are scanned in declaration order and, within an entry, the
// keywords in declaration order; the first hit wins. Matching is plain
// substring containment, not word-boundary, so short keywords can fire
// inside longer words. That imprecision is accepted.
var entries = []Entry{
	{
		Category: "pricing",
		Keywords: []string{"how much", "price", "pricing", "cost", "fee", "rates"},
		Answer: "Our 1:1 coaching packages start at $450/month for two sessions, " +
			"and the 12-week Momentum program is $1,200 all-in. Every engagement " +
			"begins with a free 30-minute discovery call so we can find the right fit.",
	},
	{
		Category: "services",
		Keywords: []string{"what services", "what do you offer", "programs", "packages", "what kind of coaching"},
		Answer: "We offer 1:1 career and leadership coaching, a 12-week Momentum " +
			"group program, and half-day intensives for teams. All sessions run " +
			"over video, so you can join from anywhere.",
	},
	{
		Category: "duration",
		Keywords: []string{"how long", "duration", "how many sessions", "commitment"},
		Answer: "Most clients work with us for three to six months. Sessions are " +
			"50 minutes, typically every other week, and there is no long-term " +
			"contract - you can pause or stop at any point.",
	},
	{
		Category: "location",
		Keywords: []string{"where are you", "location", "in person", "online", "remote"},
		Answer: "All coaching happens remotely over video, so it does not matter " +
			"where you are based. We keep morning and evening slots across US and " +
			"European time zones.",
	},
	{
		Category: "background",
		Keywords: []string{"who is the coach", "your background", "credentials", "certified", "qualifications"},
		Answer: "Summit Coaching was founded by Dana Reyes, an ICF-certified coach " +
			"with 12 years in engineering leadership before moving into full-time " +
			"coaching. You can read more on the About page.",
	},
	{
		Category: "getting-started",
		Keywords: []string{"get started", "first step", "how do i begin", "sign up"},
		Answer: "The first step is a free 30-minute discovery call. We talk through " +
			"where you are, where you want to get to, and whether coaching is the " +
			"right tool. No preparation needed.",
	},
}

// Find returns the first entry whose any keyword is a case-insensitive
// substring of the message. It is pure: matching has no side effects
// and the same message always yields the same result.
func Find(message string) (Match, bool) {
	lower := strings.ToLower(message)
	for _, e := range entries {
		for _, kw := range e.Keywords {
			if strings.Contains(lower, kw) {
				return Match{Category: e.Category, Answer: e.Answer}, true
			}
		}
	}
	return Match{}, false
}

// Answers returns the canned answer for a category, for callers that
// need to reference FAQ text directly. Empty string when unknown.
func Answers(category string) string {
	for _, e := range entries {
		if e.Category == category {
			return e.Answer
		}
	}
	return ""
}
