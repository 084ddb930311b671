package redline

import (
	"strings"

	"github.com/corvid/redline-docx/internal/oxml"
)

// TextSpan is one record of the Mapper's span index: the flat-view
// half-open byte range [Start, End) that Run's text occupies, and the
// Paragraph it belongs to. Spans are strictly non-overlapping and sorted
// by Start; inter-paragraph separators are gaps between spans, covered by
// no span.
type TextSpan struct {
	Start     int
	End       int
	Run       *oxml.CT_R
	Paragraph *oxml.CT_P
}

// BuildFlatView concatenates every non-empty run's text across paragraphs,
// in document order, with "\n\n" between successive paragraphs (none after
// the last) — the exact rule that must hold
// identically between the Mapper and the external text extractor. It
// returns both the flat string and the span index covering it, so callers
// never need a second implementation of this rule.
func BuildFlatView(paragraphs []*oxml.CT_P) (string, []TextSpan) {
	var sb strings.Builder
	var spans []TextSpan
	offset := 0

	for i, p := range paragraphs {
		if i > 0 {
			sb.WriteString("\n\n")
			offset += 2
		}
		for _, r := range p.Runs() {
			text := r.Text()
			if text == "" {
				continue
			}
			spans = append(spans, TextSpan{
				Start:     offset,
				End:       offset + len(text),
				Run:       r,
				Paragraph: p,
			})
			sb.WriteString(text)
			offset += len(text)
		}
	}

	return sb.String(), spans
}
