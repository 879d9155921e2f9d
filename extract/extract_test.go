package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestText_PlainUTF8PassesThrough(t *testing.T) {
	body := "Name: Jane Doe\njane@doe.dev\nSkills: python, sql\n"
	require.Equal(t, body, Text("resume.txt", []byte(body)))
}

func TestText_MalformedPDFFallsBackToDecoding(t *testing.T) {
	// Not a PDF at all; the format parser must fail and the raw bytes
	// still come through as text.
	body := "this is definitely not a pdf but it is readable text"
	require.Equal(t, body, Text("resume.pdf", []byte(body)))
}

func TestText_MalformedDOCXFallsBackToDecoding(t *testing.T) {
	body := "plain text wearing a docx extension"
	require.Equal(t, body, Text("resume.docx", []byte(body)))
}

func TestText_ExtensionMatchingIsCaseInsensitive(t *testing.T) {
	body := "upper case extension should take the same path"
	require.Equal(t, body, Text("RESUME.PDF", []byte(body)))
}

func TestText_BinaryPayloadIsQuoted(t *testing.T) {
	data := []byte{0xff, 0xfe, 0x00, 0x41, 0x42, 0xff}
	got := Text("resume.bin", data)

	require.True(t, strings.HasPrefix(got, `"`))
	require.True(t, utf8.ValidString(got), "fallback output must be valid text")
}

func TestText_BinaryPayloadIsTruncated(t *testing.T) {
	big := make([]byte, 10000)
	for i := range big {
		big[i] = 0xff
	}
	got := Text("resume.bin", big)

	// strconv.Quote renders each invalid byte as \xff (4 chars) plus the
	// surrounding quotes, so the bound follows from binaryTruncateLimit.
	require.LessOrEqual(t, len(got), binaryTruncateLimit*4+2)
	require.True(t, utf8.ValidString(got))
}

func TestText_EmptyPayload(t *testing.T) {
	require.Equal(t, "", Text("resume.pdf", nil))
}

func TestText_ShortTextBelowMinimum(t *testing.T) {
	got := Text("resume.docx", []byte("too short"))
	require.Less(t, len(got), MinTextLength)
}
