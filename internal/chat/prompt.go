package chat

import (
	"fmt"
	"strings"

	"github.com/summit-coaching/assistant-api/internal/domain"
)

// promptHistoryWindow bounds the history rendered into the prompt.
// Retention (MaxHistory) is larger; the model only sees this window.
const promptHistoryWindow = 15

// Signature closes every assistant-authored response, generated or
// canned.
const Signature = "- Dana, Summit Coaching"

// BookingNudge is appended to FAQ short-circuit answers.
const BookingNudge = "If you'd like to talk it through, you can book a free 30-minute discovery call right from the chat."

const systemPrompt = `You are the assistant for Summit Coaching, a career and leadership coaching practice run by Dana Reyes.

Your role:
- Answer questions about coaching, the programs, and how to get started.
- Encourage visitors who seem ready to book a free 30-minute discovery call.
- You are not a therapist and you do not give medical, legal, or financial advice.

How to respond per detected intent:
- greeting: welcome the visitor warmly and ask what brought them here today.
- pricing: packages start at $450/month; the 12-week Momentum program is $1,200. Always mention the free discovery call.
- duration: most engagements run three to six months, 50-minute sessions every other week, no long-term contract.
- booking: guide them to book a discovery call; ask for their name if you do not have it.
- background: Dana is an ICF-certified coach with 12 years in engineering leadership.
- qualification: coaching fits people who want structured progress on career or leadership goals; suggest the discovery call as the way to find out.
- general: answer helpfully and steer gently back to coaching topics.

Style:
- Warm, direct, encouraging. No jargon, no hard selling.
- Keep answers under 120 words.
- Sign off as "` + Signature + `".`

// BuildPrompt assembles the single prompt string sent to the model:
// the fixed persona block, a dynamic session-context block, and the
// verbatim current message. The static block is never truncated; the
// dynamic block is bounded by the history window.
func BuildPrompt(session *domain.Session, mood domain.Mood, intent domain.Intent, history []domain.Turn, message string) string {
	if len(history) > promptHistoryWindow {
		history = history[len(history)-promptHistoryWindow:]
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	b.WriteString("Session context:\n")
	fmt.Fprintf(&b, "- session: %s\n", session.ID)
	fmt.Fprintf(&b, "- user name: %s\n", session.UserName)
	fmt.Fprintf(&b, "- turn: %d\n", session.TurnCount)
	fmt.Fprintf(&b, "- current mood: %s\n", mood)
	fmt.Fprintf(&b, "- detected intent: %s\n", intent)

	if len(history) > 0 {
		b.WriteString("\nRecent conversation:\n")
		lines := make([]string, 0, len(history))
		for _, t := range history {
			lines = append(lines, string(t.Role)+": "+t.Text)
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\nUser message:\n")
	b.WriteString(message)

	return b.String()
}
