package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bloom/internal/modules/journal/domain"
	journalout "bloom/internal/modules/journal/port/out"
	"bloom/internal/platform/markdown"
	"bloom/internal/platform/slug"
)

const (
	indexStart = "<!-- bloom:journal:start -->"
	indexEnd   = "<!-- bloom:journal:end -->"
)

// MarkdownExporter writes one note per entry under
// <data>/journal/YYYY/MM/DD/HHMMSS-<slug>.md and keeps a generated list in
// <data>/journal/index.md. Text outside the generated block survives.
type MarkdownExporter struct {
	dataPath string
	loc      *time.Location
	now      func() time.Time
}

func NewMarkdownExporter(dataPath string, loc *time.Location, now func() time.Time) journalout.NoteExporter {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &MarkdownExporter{dataPath: dataPath, loc: loc, now: now}
}

func (e *MarkdownExporter) Export(ctx context.Context, entries []domain.Entry) ([]string, error) {
	root := filepath.Join(e.dataPath, "journal")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	seen := map[string]int{}
	notes := make([]string, 0, len(entries))
	links := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := e.writeNote(root, entry, seen)
		if err != nil {
			return nil, err
		}
		notes = append(notes, path)
		rel, _ := filepath.Rel(root, path)
		links = append(links, fmt.Sprintf("- %s [%s](%s)", entry.CreatedAt.In(e.loc).Format("2006-01-02 15:04"), entry.DisplayTitle(), filepath.ToSlash(rel)))
	}

	index, err := e.writeIndex(root, links)
	if err != nil {
		return nil, err
	}
	return append([]string{index}, notes...), nil
}

func (e *MarkdownExporter) writeNote(root string, entry domain.Entry, seen map[string]int) (string, error) {
	at := entry.CreatedAt.In(e.loc)
	dir := filepath.Join(root, at.Format("2006"), at.Format("01"), at.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal day dir: %w", err)
	}
	base := fmt.Sprintf("%s-%s", at.Format("150405"), slug.Make(entry.DisplayTitle()))
	key := filepath.Join(dir, base)
	seen[key]++
	if n := seen[key]; n > 1 {
		base = fmt.Sprintf("%s-%d", base, n)
	}
	path := filepath.Join(dir, base+".md")

	meta := map[string]any{
		"id":         entry.ID,
		"title":      entry.DisplayTitle(),
		"source":     string(entry.Source),
		"created_at": entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.FeedbackScore != nil {
		meta["feedback_score"] = *entry.FeedbackScore
	}
	if entry.AbandonReason != "" {
		meta["abandon_reason"] = entry.AbandonReason
	}
	body := fmt.Sprintf("# %s\n\n%s\n", entry.DisplayTitle(), entry.Text)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}

func (e *MarkdownExporter) writeIndex(root string, links []string) (string, error) {
	path := filepath.Join(root, "index.md")
	meta := map[string]any{"title": "Journal"}
	body := "# Journal\n"

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		meta, body, err = markdown.SplitFrontmatter(string(raw))
		if err != nil {
			return "", fmt.Errorf("read journal index: %w", err)
		}
	case !os.IsNotExist(err):
		return "", fmt.Errorf("read journal index: %w", err)
	}

	generated := strings.Join(links, "\n")
	if generated == "" {
		generated = "_No entries yet._"
	}
	meta["entries"] = len(links)
	meta["updated_at"] = e.now().Format(time.RFC3339)
	body = markdown.ReplaceManagedBlock(body, indexStart, indexEnd, generated)

	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal index: %w", err)
	}
	return path, nil
}
