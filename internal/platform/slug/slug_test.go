package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bloom/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Today's challenge":     "todays-challenge",
		"  Walk -- outside!  ":  "walk-outside",
		"Don’t give up":         "dont-give-up",
		"":                      "entry",
		"???":                   "entry",
		"Breathe 4-7-8 (twice)": "breathe-4-7-8-twice",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), in)
	}
}

func TestMakeCutsLongTitlesOnWordBoundary(t *testing.T) {
	t.Parallel()
	got := slug.Make(strings.Repeat("slow morning ", 10))
	assert.LessOrEqual(t, len(got), slug.MaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "slow-morning-slow"))
	assert.True(t, strings.HasSuffix(got, "morning") || strings.HasSuffix(got, "slow"))
}
