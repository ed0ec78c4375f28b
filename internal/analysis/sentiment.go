// Package analysis provides keyword heuristics for sentiment and intent.
// These are fixed-list lookups, not statistical models.
package analysis

import (
	"strings"

	"github.com/summit-coaching/assistant-api/internal/domain"
)

var positiveWords = map[string]bool{
	"great": true, "good": true, "awesome": true, "amazing": true,
	"excited": true, "happy": true, "love": true, "excellent": true,
	"fantastic": true, "wonderful": true, "helpful": true, "thanks": true,
	"thank": true, "perfect": true, "motivated": true, "ready": true,
	"better": true, "progress": true, "yes": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "frustrated": true,
	"stuck": true, "confused": true, "hate": true, "worried": true,
	"anxious": true, "stressed": true, "difficult": true, "hard": true,
	"problem": true, "unhappy": true, "tired": true, "overwhelmed": true,
	"lost": true, "doubt": true,
}

// Sentiment scores a message against fixed word lists. Each positive
// word counts +1, each negative word -1; ties and empty input are
// neutral. Pure function.
func Sentiment(text string) domain.Mood {
	score := 0
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,!?;:'\"")
		if positiveWords[tok] {
			score++
		} else if negativeWords[tok] {
			score--
		}
	}
	switch {
	case score > 0:
		return domain.MoodPositive
	case score < 0:
		return domain.MoodNegative
	default:
		return domain.MoodNeutral
	}
}
