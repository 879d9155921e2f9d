package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testActionVerbs mirrors the default verb vocabulary.
var testActionVerbs = []string{
	"managed", "developed", "created", "led", "implemented", "analyzed",
	"designed", "optimized", "achieved", "streamlined",
}

// TestScore_MidTierExample walks a full pipeline case: 1200 characters of
// text containing three keywords and nothing else scoreable lands on
// 50 (base) + 4 (length) + 9 (keywords) = 63.
func TestScore_MidTierExample(t *testing.T) {
	base := "python sql docker "
	text := base + strings.Repeat("x", 1200-len(base))
	require.Len(t, text, 1200)

	p := Parse(text, testKeywords)
	require.Equal(t, 3, p.KeywordCount)
	require.Equal(t, 2, p.LengthFactor)
	require.Equal(t, DefaultEmail, p.Email)
	require.False(t, p.HasSkillsSection)

	result := Score(p, testActionVerbs)
	require.Equal(t, 63, result.Score)
	require.Contains(t, result.Feedback, "The resume is a work in progress.")
}

func TestScore_BaseOnlyForEmptyResume(t *testing.T) {
	p := Parse("", testKeywords)
	result := Score(p, testActionVerbs)
	require.Equal(t, 50, result.Score)
	require.Contains(t, result.Feedback, "Your resume appears quite brief.")
	require.Contains(t, result.Feedback, "No high-value technical keywords were detected.")
}

func TestScore_MonotonicInKeywordCountUntilCap(t *testing.T) {
	p := ParsedResume{
		Name:         DefaultName,
		Email:        DefaultEmail,
		RawText:      "fixed text",
		LengthFactor: 2,
		SkillsFound:  NoSkills,
	}

	prev := -1
	var atCap int
	for count := 0; count <= 10; count++ {
		p.KeywordCount = count
		got := Score(p, testActionVerbs).Score
		require.GreaterOrEqual(t, got, prev, "keyword_count=%d", count)
		prev = got
		if count == 7 {
			atCap = got
		}
		if count > 7 {
			require.Equal(t, atCap, got, "component must be flat past 7 matches")
		}
	}
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	extremes := []ParsedResume{
		{},
		{KeywordCount: 1000, LengthFactor: 1000},
		{
			Email:            "real@person.dev",
			RawText:          strings.Join(testActionVerbs, " ") + " (555) 123-4567",
			KeywordCount:     10,
			LengthFactor:     50,
			HasSkillsSection: true,
		},
	}
	for i, p := range extremes {
		got := Score(p, testActionVerbs).Score
		require.GreaterOrEqual(t, got, 0, "case %d", i)
		require.LessOrEqual(t, got, 100, "case %d", i)
	}
}

func TestScore_PerfectInputHitsEveryCap(t *testing.T) {
	p := ParsedResume{
		Name:             "Jane Doe",
		Email:            "jane@doe.dev",
		RawText:          strings.Join(testActionVerbs, " ") + " 555-123-4567",
		KeywordCount:     7,
		LengthFactor:     5,
		SkillsFound:      "python",
		HasSkillsSection: true,
	}
	result := Score(p, testActionVerbs)
	require.Equal(t, 100, result.Score)
	require.Contains(t, result.Feedback, "This resume is highly competitive!")
}

func TestScore_ContactComponentPieces(t *testing.T) {
	base := ParsedResume{RawText: "nothing to see", Email: DefaultEmail}
	baseline := Score(base, testActionVerbs).Score

	withEmail := base
	withEmail.Email = "a@b.c"
	require.Equal(t, baseline+4, Score(withEmail, testActionVerbs).Score)

	withSkills := base
	withSkills.HasSkillsSection = true
	require.Equal(t, baseline+3, Score(withSkills, testActionVerbs).Score)

	withPhone := base
	withPhone.RawText = "call (555) 987-6543"
	require.Equal(t, baseline+3, Score(withPhone, testActionVerbs).Score)
}

func TestScore_TierSentences(t *testing.T) {
	tests := []struct {
		name string
		p    ParsedResume
		want string
	}{
		{
			name: "below 70",
			p:    ParsedResume{Email: DefaultEmail, RawText: "short"},
			want: "The resume is a work in progress.",
		},
		{
			name: "70 to 84",
			p: ParsedResume{
				Email:        DefaultEmail,
				RawText:      "managed developed created led implemented things",
				KeywordCount: 5,
				LengthFactor: 3,
			},
			want: "This is a solid, competitive resume.",
		},
		{
			name: "85 and up",
			p: ParsedResume{
				Email:            "jane@doe.dev",
				RawText:          "managed developed created led implemented analyzed designed 555-123-4567",
				KeywordCount:     7,
				LengthFactor:     5,
				HasSkillsSection: true,
			},
			want: "This resume is highly competitive!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.p, testActionVerbs)
			require.Contains(t, result.Feedback, tt.want)
		})
	}
}

func TestScore_FeedbackShape(t *testing.T) {
	result := Score(ParsedResume{Email: DefaultEmail, RawText: "x"}, testActionVerbs)
	require.True(t, strings.HasPrefix(result.Feedback, "Overall Assessment:\n"))
	require.Contains(t, result.Feedback, "\nActionable Recommendations:\n- ")
}
