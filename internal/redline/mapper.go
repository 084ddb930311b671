package redline

import (
	"strings"

	"github.com/corvid/redline-docx/internal/docmodel"
	"github.com/corvid/redline-docx/internal/oxml"
)

// Mapper owns the flat text view and the span index for a Document, and
// resolves target substrings to contiguous run sequences, splitting runs
// at match boundaries as needed.
//
// Grounded on original_source/src/adeu/redline/mapper.py's DocumentMapper:
// same two public operations, same literal-substring matching algorithm,
// same split-then-rebuild discipline, translated from lxml deepcopy-based
// splitting to etree.Element.Copy-based splitting (oxml.CT_R.Split).
type Mapper struct {
	doc      *docmodel.Document
	flatView string
	spans    []TextSpan
}

// NewMapper builds a Mapper from doc's current tree state.
func NewMapper(doc *docmodel.Document) *Mapper {
	m := &Mapper{doc: doc}
	m.Rebuild()
	return m
}

// Rebuild rescans the document, rebuilding the flat view and span index.
// Callers MUST call this after any mutation to the tree.
func (m *Mapper) Rebuild() {
	m.flatView, m.spans = BuildFlatView(m.doc.Paragraphs())
}

// FlatView returns the current flat text view.
func (m *Mapper) FlatView() string { return m.flatView }

// FindTargetRuns returns the minimal contiguous run sequence whose
// concatenated text equals the first occurrence of target in the flat
// view, splitting the leftmost/rightmost run if the match's boundary falls
// inside one. Returns a TargetNotFoundError if target isn't a substring,
// or a ParagraphStraddleError if the match would span the "\n\n" gap
// between two paragraphs.
func (m *Mapper) FindTargetRuns(target string) ([]*oxml.CT_R, error) {
	start := strings.Index(m.flatView, target)
	if start < 0 {
		return nil, newTargetNotFoundError(target)
	}
	return m.findTargetRunsAt(target, start)
}

// FindTargetRunsAt resolves target the same way FindTargetRuns does, but
// requires the match to begin at exactly matchStart, disambiguating a
// target string that occurs more than once in the flat view. Returns
// TargetNotFoundError if the flat view doesn't contain target starting at
// that exact offset.
func (m *Mapper) FindTargetRunsAt(target string, matchStart int) ([]*oxml.CT_R, error) {
	if matchStart < 0 || matchStart+len(target) > len(m.flatView) {
		return nil, newTargetNotFoundError(target)
	}
	if m.flatView[matchStart:matchStart+len(target)] != target {
		return nil, newTargetNotFoundError(target)
	}
	return m.findTargetRunsAt(target, matchStart)
}

func (m *Mapper) findTargetRunsAt(target string, matchStart int) ([]*oxml.CT_R, error) {
	matchEnd := matchStart + len(target)

	var affected []TextSpan
	for _, s := range m.spans {
		if s.End > matchStart && s.Start < matchEnd {
			affected = append(affected, s)
		}
	}
	if len(affected) == 0 {
		return nil, newParagraphStraddleError(target)
	}

	// A match whose span doesn't cover every byte of [matchStart, matchEnd)
	// has fallen into the inter-paragraph gap somewhere in the middle.
	covered := affected[0].Start
	for _, s := range affected {
		if s.Start > covered {
			return nil, newParagraphStraddleError(target)
		}
		if s.End > covered {
			covered = s.End
		}
	}
	if covered < matchEnd {
		return nil, newParagraphStraddleError(target)
	}

	runs := make([]*oxml.CT_R, len(affected))
	for i, s := range affected {
		runs[i] = s.Run
	}

	dirty := false

	first := affected[0]
	if first.Start < matchStart {
		localStart := matchStart - first.Start
		_, right := runs[0].Split(localStart)
		runs[0] = right
		dirty = true
	}

	last := affected[len(affected)-1]
	if last.End > matchEnd {
		extra := last.End - matchEnd
		splitPoint := len(runs[len(runs)-1].Text()) - extra
		left, _ := runs[len(runs)-1].Split(splitPoint)
		runs[len(runs)-1] = left
		dirty = true
	}

	if dirty {
		m.Rebuild()
	}

	return runs, nil
}
