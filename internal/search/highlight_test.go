package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	t.Run("single term", func(t *testing.T) {
		got := Highlight("Draft quarterly report", "report")
		assert.Equal(t, "Draft quarterly <mark>report</mark>", got)
	})

	t.Run("case-insensitive, original casing kept", func(t *testing.T) {
		got := Highlight("Report the REPORT", "report")
		assert.Equal(t, "<mark>Report</mark> the <mark>REPORT</mark>", got)
	})

	t.Run("each word highlighted independently", func(t *testing.T) {
		got := Highlight("draft the report", "draft report")
		assert.Equal(t, "<mark>draft</mark> the <mark>report</mark>", got)
	})

	t.Run("no match leaves text untouched", func(t *testing.T) {
		assert.Equal(t, "nothing here", Highlight("nothing here", "report"))
	})

	t.Run("empty query leaves text untouched", func(t *testing.T) {
		assert.Equal(t, "some text", Highlight("some text", ""))
		assert.Equal(t, "some text", Highlight("some text", "   "))
	})

	t.Run("regex metacharacters are literal", func(t *testing.T) {
		got := Highlight("cost is $5.00 today", "$5.00")
		assert.Equal(t, "cost is <mark>$5.00</mark> today", got)
	})
}

func TestHighlightWith(t *testing.T) {
	got := HighlightWith("find the report", "report", "**", "**")
	assert.Equal(t, "find the **report**", got)
}
