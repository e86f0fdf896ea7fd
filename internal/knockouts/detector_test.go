package knockouts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/ids"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestDetect_CitizenshipAndDegree(t *testing.T) {
	jd := "Candidates must be a U.S. citizen to apply. A Bachelor's degree required for this position."

	items := Detect(jd, &ids.Sequence{})

	require.Len(t, items, 2)
	// Category priority puts authorization before degree
	assert.Equal(t, types.KnockoutAuthorization, items[0].Category)
	assert.Equal(t, types.KnockoutDegree, items[1].Category)

	assert.Contains(t, items[0].Evidence, "must be a U.S. citizen")
	assert.Contains(t, items[1].Evidence, "Bachelor's degree required")
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Label)
		assert.NotEmpty(t, item.Evidence)
	}
}

func TestDetect_TravelPercentageCapturedInLabel(t *testing.T) {
	items := Detect("This role involves travel up to 50% of the month.", &ids.Sequence{})

	require.Len(t, items, 1)
	assert.Equal(t, types.KnockoutSchedule, items[0].Category)
	assert.Equal(t, "Travel up to 50% of the time", items[0].Label)
}

func TestDetect_LiftingRequirement(t *testing.T) {
	items := Detect("Must be able to lift up to 40 lbs regularly.", &ids.Sequence{})

	require.Len(t, items, 1)
	assert.Equal(t, types.KnockoutPhysical, items[0].Category)
	assert.Equal(t, "Must lift up to 40 lbs", items[0].Label)
}

func TestDetect_DedupeByLabel(t *testing.T) {
	// Two phrasings that generate the same label collapse into one item
	jd := "Applicants must be authorized to work in the US. You should be legally authorized to work here."

	items := Detect(jd, &ids.Sequence{})

	var authItems []types.KnockoutItem
	for _, item := range items {
		if item.Label == "Work authorization required" {
			authItems = append(authItems, item)
		}
	}
	assert.Len(t, authItems, 1)
}

func TestDetect_EmptyText(t *testing.T) {
	assert.Empty(t, Detect("", &ids.Sequence{}))
	assert.Empty(t, Detect("   \n  ", &ids.Sequence{}))
}

func TestDetect_SortedByCategoryPriority(t *testing.T) {
	jd := "PhD required. Must lift up to 20 lbs. On-call rotation. Must be a US citizen. Valid driver's license needed. Hybrid work."

	items := Detect(jd, &ids.Sequence{})

	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Category.Priority(), items[i].Category.Priority())
	}
}

func TestSnippet_EllipsisMarking(t *testing.T) {
	text := strings.Repeat("a", 100) + "MATCH" + strings.Repeat("b", 100)

	out := snippet(text, 100, 105)

	assert.True(t, strings.HasPrefix(out, "..."))
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Contains(t, out, "MATCH")
}

func TestSnippet_CutPointsLandOnRuneBoundaries(t *testing.T) {
	// em dashes occupy bytes 2-4 and 66-68, so naive cuts at bytes 3 and
	// 68 would both split a rune
	text := "aa—" + strings.Repeat("x", 28) + "MATCH" + strings.Repeat("x", 28) + "—bb"
	start := strings.Index(text, "MATCH")

	out := snippet(text, start, start+len("MATCH"))

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "MATCH")
}

func TestSnippet_NoEllipsisAtBoundaries(t *testing.T) {
	out := snippet("short text MATCH here", 11, 16)

	assert.False(t, strings.HasPrefix(out, "..."))
	assert.False(t, strings.HasSuffix(out, "..."))
}
