package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom/internal/platform/markdown"
)

const (
	start = "<!-- s -->"
	end   = "<!-- e -->"
)

func TestFrontmatterRoundTrip(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(map[string]any{"title": "Walk", "feedback_score": 4}, "# Walk\n\nFeeling: 4/5\n")
	require.NoError(t, err)
	assert.Equal(t, "---\nfeedback_score: 4\ntitle: Walk\n---\n\n# Walk\n\nFeeling: 4/5\n", rendered)

	meta, body, err := markdown.SplitFrontmatter(rendered)
	require.NoError(t, err)
	assert.Equal(t, "Walk", meta["title"])
	assert.Equal(t, 4, meta["feedback_score"])
	assert.Equal(t, "# Walk\n\nFeeling: 4/5\n", body)
}

func TestSplitFrontmatterEdgeCases(t *testing.T) {
	t.Parallel()

	meta, body, err := markdown.SplitFrontmatter("plain text\n")
	require.NoError(t, err)
	assert.Empty(t, meta)
	assert.Equal(t, "plain text\n", body)

	meta, body, err = markdown.SplitFrontmatter("---\r\ntitle: x\r\n---\r\nbody\r\n")
	require.NoError(t, err)
	assert.Equal(t, "x", meta["title"])
	assert.Equal(t, "body\n", body)

	meta, body, err = markdown.SplitFrontmatter("---\n---\nbody")
	require.NoError(t, err)
	assert.Empty(t, meta)
	assert.Equal(t, "body", body)

	_, _, err = markdown.SplitFrontmatter("---\ntitle: x\nbody")
	assert.Error(t, err)
}

func TestReplaceManagedBlock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, start+"\nnew\n"+end+"\n", markdown.ReplaceManagedBlock("", start, end, "new"))
	assert.Equal(t, "# Journal\n\n"+start+"\nnew\n"+end+"\n", markdown.ReplaceManagedBlock("# Journal\n", start, end, "new\n"))

	body := "intro\n" + start + "\nold\n" + end + "\noutro\n"
	got := markdown.ReplaceManagedBlock(body, start, end, "new")
	assert.Equal(t, "intro\n"+start+"\nnew\n"+end+"\noutro\n", got)
	assert.Equal(t, got, markdown.ReplaceManagedBlock(got, start, end, "new"))

	broken := "intro\n" + start + "\nold\nstray\n"
	assert.Equal(t, "intro\n"+start+"\nnew\n"+end+"\n", markdown.ReplaceManagedBlock(broken, start, end, "new"))
}

func TestManagedBlock(t *testing.T) {
	t.Parallel()
	text, ok := markdown.ManagedBlock("a\n"+start+"\n- one\n- two\n"+end+"\n", start, end)
	require.True(t, ok)
	assert.Equal(t, "- one\n- two", text)

	_, ok = markdown.ManagedBlock("no markers", start, end)
	assert.False(t, ok)
}
