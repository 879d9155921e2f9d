package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testKeywords mirrors the default high-value vocabulary.
var testKeywords = []string{
	"python", "javascript", "sql", "project management", "machine learning",
	"data analysis", "cloud", "aws", "docker", "agile",
}

func TestParse_ExtractsNameAndTitleCasesIt(t *testing.T) {
	p := Parse("Name: jane doe\n123 Main Street", testKeywords)
	require.Equal(t, "Jane Doe", p.Name)
}

func TestParse_MissingNameFallsBackToDefault(t *testing.T) {
	p := Parse("just some resume text without a label", testKeywords)
	require.Equal(t, DefaultName, p.Name)
}

func TestParse_ExtractsFirstEmailLowercased(t *testing.T) {
	p := Parse("Reach me at Jane.Doe@Example.COM or jd@backup.org", testKeywords)
	require.Equal(t, "jane.doe@example.com", p.Email)
}

func TestParse_MissingEmailFallsBackToSentinel(t *testing.T) {
	p := Parse("no contact details here", testKeywords)
	require.Equal(t, DefaultEmail, p.Email)
}

func TestParse_KeywordsCountedOncePerPresence(t *testing.T) {
	text := "Python python PYTHON and also sql plus docker docker"
	p := Parse(text, testKeywords)
	require.Equal(t, 3, p.KeywordCount)
	require.Equal(t, "python, sql, docker", p.SkillsFound, "reported in vocabulary order")
}

func TestParse_NoKeywordsReportsSentinel(t *testing.T) {
	p := Parse("plain prose with nothing technical", testKeywords)
	require.Equal(t, 0, p.KeywordCount)
	require.Equal(t, NoSkills, p.SkillsFound)
}

func TestParse_SkillsSectionDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"skills header", "Skills:\npython, sql\n\nExperience\n...", true},
		{"technical skills header", "Technical Skills\ndocker and agile\n\n", true},
		{"expertise header", "Expertise: cloud platforms\n\n", true},
		{"no header", "worked with python and sql for years", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.text, testKeywords)
			require.Equal(t, tt.want, p.HasSkillsSection)
		})
	}
}

func TestParse_LengthFactor(t *testing.T) {
	require.Equal(t, 0, Parse(strings.Repeat("x", 499), testKeywords).LengthFactor)
	require.Equal(t, 1, Parse(strings.Repeat("x", 500), testKeywords).LengthFactor)
	require.Equal(t, 2, Parse(strings.Repeat("x", 1200), testKeywords).LengthFactor)
}

func TestParse_RawTextIsLowercased(t *testing.T) {
	p := Parse("MANAGED a TEAM", testKeywords)
	require.Equal(t, "managed a team", p.RawText)
}

func TestParse_Idempotent(t *testing.T) {
	text := "Name: sam lee\nsam@lee.dev\nSkills:\npython, docker\n\nManaged and developed things."
	first := Parse(text, testKeywords)
	second := Parse(text, testKeywords)
	require.Equal(t, first, second)
}
