package markdown

import "strings"

// ReplaceManagedBlock swaps the text between startMarker and endMarker for
// generated, appending a fresh block when none exists. A start marker whose
// end was deleted by hand claims the rest of the body.
func ReplaceManagedBlock(body, startMarker, endMarker, generated string) string {
	block := startMarker + "\n" + strings.TrimRight(generated, "\n") + "\n" + endMarker

	if start := strings.Index(body, startMarker); start >= 0 {
		tail := body[start+len(startMarker):]
		if end := strings.Index(tail, endMarker); end >= 0 {
			return body[:start] + block + tail[end+len(endMarker):]
		}
		return body[:start] + block + "\n"
	}

	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	default:
		return body + "\n\n" + block + "\n"
	}
}

// ManagedBlock returns the generated text between the markers, if present.
func ManagedBlock(body, startMarker, endMarker string) (string, bool) {
	start := strings.Index(body, startMarker)
	if start < 0 {
		return "", false
	}
	tail := body[start+len(startMarker):]
	end := strings.Index(tail, endMarker)
	if end < 0 {
		return "", false
	}
	return strings.Trim(tail[:end], "\n"), true
}
