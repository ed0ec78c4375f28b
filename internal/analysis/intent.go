package analysis

import (
	"regexp"
	"strings"

	"github.com/summit-coaching/assistant-api/internal/domain"
)

// intentRule pairs a category with the pattern that selects it.
type intentRule struct {
	intent  domain.Intent
	pattern *regexp.Regexp
}

// intentRules are evaluated in order; the first match wins. The order
// is a contract relied on by callers and tests, not an implementation
// accident: a message matching several categories resolves to the
// earliest one here.
var intentRules = []intentRule{
	{domain.IntentGreeting, regexp.MustCompile(`\b(hi|hello|hey|good (morning|afternoon|evening)|greetings)\b`)},
	{domain.IntentPricing, regexp.MustCompile(`\b(price|pricing|cost|costs|fee|fees|charge|rate|rates|how much|pay|payment|afford)\b`)},
	{domain.IntentDuration, regexp.MustCompile(`\b(how long|duration|weeks|months|timeline|time frame|commitment)\b`)},
	{domain.IntentBooking, regexp.MustCompile(`\b(book|booking|schedule|appointment|meeting|consultation|availability|available|call)\b`)},
	{domain.IntentBackground, regexp.MustCompile(`\b(who are you|about you|background|experience|credentials|certified|certification|qualifications)\b`)},
	{domain.IntentQualification, regexp.MustCompile(`\b(right for me|good fit|qualify|am i ready|suitable|work for me|is this for)\b`)},
}

// DetectIntent classifies a message into a fixed category using ordered
// case-insensitive pattern matching. Messages matching no rule are
// "general".
func DetectIntent(text string) domain.Intent {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if rule.pattern.MatchString(lower) {
			return rule.intent
		}
	}
	return domain.IntentGeneral
}
