// Package extract turns uploaded resume payloads into plain text.
// PDF and DOCX payloads get real format parsing; anything that fails format
// parsing falls back to best-effort byte decoding: a valid UTF-8 payload is
// returned whole, and a binary payload is reduced to a quoted representation
// of its first bytes. Extraction itself never fails — callers decide whether
// the result carries enough text to be usable (MinTextLength).
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	// MinTextLength is the minimum extracted length callers should accept
	// before treating the upload as having insufficient text.
	MinTextLength = 50

	// binaryTruncateLimit bounds the fallback representation of payloads
	// that are not decodable text. The result is lossy and non-reversible;
	// it exists only so downstream heuristics have something to chew on.
	binaryTruncateLimit = 2000
)

// Text extracts plain text from an uploaded payload. The filename's extension
// selects the format parser; a parse failure falls through to the byte
// decoder. The returned string may be short or garbage for hostile input, but
// the function never returns an error.
func Text(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		if text, err := fromPDF(data); err == nil {
			return text
		}
	case ".docx", ".doc":
		if text, err := fromDOCX(data); err == nil {
			return text
		}
	}
	return decodeBytes(data)
}

// fromPDF extracts the concatenated plain text of every page.
func fromPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs; convert that into an
	// error so the caller can fall back instead of crashing the request.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, _ := page.GetPlainText(nil)
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// fromDOCX extracts the document body text.
func fromDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// decodeBytes is the format-agnostic fallback: a valid UTF-8 payload is
// returned as-is; otherwise the first binaryTruncateLimit bytes are rendered
// as a quoted string placeholder.
func decodeBytes(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	sample := data
	if len(sample) > binaryTruncateLimit {
		sample = sample[:binaryTruncateLimit]
	}
	return strconv.Quote(string(sample))
}
