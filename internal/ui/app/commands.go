package app

import (
	"fmt"
	"strconv"
	"strings"
)

// command is one parsed palette line.
type command struct {
	name       string
	mood       *int
	energy     *int
	score      *int
	text       string
	note       string
	choice     string
	categories []string
	duration   string
	energyPref string
}

func parseCommand(input string) (command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}
	cmd := command{name: fields[0]}
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), fields[0]))
	args := fields[1:]

	switch cmd.name {
	case "checkin":
		if len(args) < 2 {
			return command{}, fmt.Errorf("usage: checkin <mood 1-5> <energy 1-5> [note]")
		}
		mood, err := parseLevel(args[0])
		if err != nil {
			return command{}, fmt.Errorf("mood: %w", err)
		}
		energy, err := parseLevel(args[1])
		if err != nil {
			return command{}, fmt.Errorf("energy: %w", err)
		}
		cmd.mood, cmd.energy = &mood, &energy
		cmd.note = strings.Join(args[2:], " ")

	case "feedback":
		if len(args) > 0 {
			if score, err := parseLevel(args[0]); err == nil {
				cmd.score = &score
				args = args[1:]
			}
		}
		cmd.note = strings.Join(args, " ")

	case "abandon":
		reason, note, _ := strings.Cut(rest, "|")
		cmd.text = strings.TrimSpace(reason)
		cmd.note = strings.TrimSpace(note)
		if cmd.text == "" {
			return command{}, fmt.Errorf("usage: abandon <reason> [| note]")
		}

	case "prefs":
		if len(args) != 3 {
			return command{}, fmt.Errorf("usage: prefs <categories|-> <duration|-> <energy|->")
		}
		cmd.categories, cmd.duration, cmd.energyPref = parsePrefs(args)

	case "review":
		if len(args) == 0 {
			return command{}, fmt.Errorf("usage: review continue|adjust|change")
		}
		cmd.choice = args[0]
		switch cmd.choice {
		case "continue":
		case "adjust":
			if len(args) != 4 {
				return command{}, fmt.Errorf("usage: review adjust <categories|-> <duration|-> <energy|->")
			}
			cmd.categories, cmd.duration, cmd.energyPref = parsePrefs(args[1:])
		case "change":
			if len(args) != 2 {
				return command{}, fmt.Errorf("usage: review change <categories>")
			}
			cmd.categories = splitList(args[1])
		default:
			return command{}, fmt.Errorf("unknown review choice %q", cmd.choice)
		}

	case "goal":
		if len(args) != 1 {
			return command{}, fmt.Errorf("usage: goal <id>")
		}
		cmd.text = args[0]

	case "journal":
		if rest == "" {
			return command{}, fmt.Errorf("usage: journal <text>")
		}
		cmd.text = rest

	case "debug:reset":

	default:
		return command{}, fmt.Errorf("unknown command: %s", cmd.name)
	}
	return cmd, nil
}

func parseLevel(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 5 {
		return 0, fmt.Errorf("%q is not between 1 and 5", s)
	}
	return v, nil
}

// parsePrefs reads categories, duration and energy; "-" leaves a field unset.
func parsePrefs(args []string) ([]string, string, string) {
	return splitList(args[0]), dash(args[1]), dash(args[2])
}

func splitList(s string) []string {
	if s == "-" || s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func dash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
