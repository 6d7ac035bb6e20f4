// Package markdown reads and writes the YAML-fronted notes produced by the
// journal export.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// SplitFrontmatter separates the YAML header from the body. Content without a
// header yields empty metadata and the content unchanged.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, separator) {
		return map[string]any{}, content, nil
	}
	rest := strings.TrimPrefix(content, separator)
	var raw, body string
	switch idx := strings.Index(rest, "\n---\n"); {
	case strings.HasPrefix(rest, separator):
		body = strings.TrimPrefix(rest, separator)
	case idx >= 0:
		raw, body = rest[:idx], rest[idx+len("\n---\n"):]
	case strings.HasSuffix(rest, "\n---"):
		raw = strings.TrimSuffix(rest, "\n---")
	default:
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing separator")
	}

	decoded := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	if decoded == nil {
		decoded = map[string]any{}
	}
	return decoded, strings.TrimPrefix(body, "\n"), nil
}

// RenderFrontmatter writes meta as a YAML header, a blank line and body.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	if len(meta) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(meta); err != nil {
			return "", fmt.Errorf("marshal frontmatter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("marshal frontmatter: %w", err)
		}
	}
	buf.WriteString(separator)
	buf.WriteString("\n")
	buf.WriteString(strings.TrimLeft(body, "\n"))
	return buf.String(), nil
}
