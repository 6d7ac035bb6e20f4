package today

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	challengedto "bloom/internal/modules/challenge/dto"
	"bloom/internal/ui/theme"
)

// Render draws the today screen: phrase, check-in, the current challenge and
// the review prompt when one is due.
func Render(t challengedto.TodayOutput, goalTitle string, width int) string {
	cardW := width - 4
	if cardW < 30 {
		cardW = 60
	}
	var blocks []string

	header := theme.Title.Render("Today") + "  " + theme.Muted.Render(t.DateKey)
	if goalTitle != "" {
		header += "  " + theme.Muted.Render("goal: ") + goalTitle
	}
	blocks = append(blocks, header)
	if t.Phrase != "" {
		blocks = append(blocks, theme.Phrase.Render(t.Phrase))
	}
	blocks = append(blocks, "")

	blocks = append(blocks, theme.Card.Width(cardW).Render(checkIn(t)))
	blocks = append(blocks, challengeCard(t, cardW))
	if t.ReviewDue {
		blocks = append(blocks, theme.CardActive.Width(cardW).Render(review(t)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func checkIn(t challengedto.TodayOutput) string {
	if !t.CheckedIn {
		return theme.Muted.Render("How are you today?  :checkin <mood> <energy> [note]")
	}
	line := fmt.Sprintf("Mood %s   Energy %s", level(t.Mood), level(t.Energy))
	if t.Note != "" {
		line += "\n" + theme.Muted.Render(t.Note)
	}
	return line
}

func challengeCard(t challengedto.TodayOutput, w int) string {
	if s := t.Session; s != nil {
		var sb strings.Builder
		sb.WriteString(theme.Hot.Render("● "+s.Challenge.Title) + "\n")
		sb.WriteString(meta(s.Challenge) + "\n\n")
		sb.WriteString(s.Challenge.Prompt + "\n\n")
		switch s.Outcome {
		case "active":
			sb.WriteString(theme.Muted.Render("c complete  :abandon <reason>"))
		case "completed":
			sb.WriteString(theme.Good.Render("Done. "))
			if s.FeedbackScore != nil {
				sb.WriteString(fmt.Sprintf("Feeling %d/5", *s.FeedbackScore))
			} else {
				sb.WriteString(theme.Muted.Render(":feedback [score] [note]"))
			}
		}
		return theme.CardActive.Width(w).Render(sb.String())
	}

	sg := t.Suggestion
	if sg == nil {
		return theme.Card.Width(w).Render(theme.Muted.Render("Check in to get today's challenge."))
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(sg.Challenge.Title) + "\n")
	sb.WriteString(meta(sg.Challenge) + "\n\n")
	sb.WriteString(sg.Challenge.Prompt + "\n\n")
	if sg.Skipped {
		sb.WriteString(theme.Muted.Render("Skipped for today. See you tomorrow."))
		return theme.Card.Width(w).Render(sb.String())
	}
	var actions []string
	if t.CanAccept {
		actions = append(actions, "a accept")
	}
	if t.CanRotate {
		actions = append(actions, fmt.Sprintf("r another (%d left)", t.RotationsLeft))
	}
	actions = append(actions, "s skip today")
	sb.WriteString(theme.Muted.Render(strings.Join(actions, "  ")))
	return theme.Card.Width(w).Render(sb.String())
}

func review(t challengedto.TodayOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d experiments since your last review", t.CompletedSinceReview)) + "\n")
	p := t.Preferences
	cats := "any"
	if len(p.Categories) > 0 {
		cats = strings.Join(p.Categories, ", ")
	}
	dur := p.Duration
	if dur == "" {
		dur = "any"
	}
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("categories %s · duration %s · energy %s", cats, dur, p.Energy)) + "\n\n")
	sb.WriteString(":review continue  :review adjust …  :review change <categories>")
	return sb.String()
}

func meta(c challengedto.ChallengeView) string {
	return theme.Muted.Render(fmt.Sprintf("%s · %d min · %s energy", c.Category, c.DurationMin, c.Energy))
}

func level(v *int) string {
	if v == nil {
		return "–"
	}
	return fmt.Sprintf("%d/5", *v)
}
