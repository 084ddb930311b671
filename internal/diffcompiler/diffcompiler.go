// Package diffcompiler turns a before/after pair of flat-text strings into
// the same Edit records a reviewer would author by hand, so `redline diff`
// and `redline apply` can share the engine that only ever sees Edits.
package diffcompiler

import (
	"log/slog"
	"strings"

	"github.com/corvid/redline-docx/internal/redline"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// anchorTailLen is how much of the last equal run is kept as the anchor
// text preceding an insertion.
const anchorTailLen = 50

// startAnchorLen bounds the lookahead anchor used for an insertion at the
// very start of the document, when no preceding equal run exists.
const startAnchorLen = 20

// Compile diffs original against modified and compiles the result into
// Edit records in document order: each Delete run becomes a DELETION, each
// Insert is anchored to the tail of the preceding Equal run (or, failing
// that, to the head of the following Equal run, converted into a
// MODIFICATION), and any DELETION immediately followed by an INSERTION
// is merged into a single MODIFICATION. An Insert with
// neither a preceding nor a following anchor is dropped, logged as an
// AnchorlessInsertionError at slog.LevelWarn. log may be nil, in which
// case slog.Default() is used.
//
// Grounded on original_source/src/adeu/diff.py's generate_edits_from_text:
// same diff_match_patch pipeline (DiffMain + DiffCleanupSemantic), same
// 50-code-unit tail anchor, same start-of-document lookahead heuristic, and
// the same adjacent delete+insert merge pass.
func Compile(original, modified string, log *slog.Logger) []redline.Edit {
	if log == nil {
		log = slog.Default()
	}

	engine := dmp.New()
	diffs := engine.DiffMain(original, modified, false)
	diffs = engine.DiffCleanupSemantic(diffs)

	var edits []redline.Edit
	lastEqual := ""

	for i, d := range diffs {
		switch d.Type {
		case dmp.DiffEqual:
			lastEqual = d.Text

		case dmp.DiffDelete:
			edits = append(edits, redline.Edit{
				Operation:  redline.Deletion,
				TargetText: d.Text,
			})

		case dmp.DiffInsert:
			anchor := tail(lastEqual, anchorTailLen)
			if anchor == "" {
				if converted, ok := startOfDocumentEdit(diffs, i, d.Text); ok {
					edits = append(edits, converted)
				} else {
					err := redline.NewAnchorlessInsertionError(d.Text)
					log.Warn("dropping edit", "operation", redline.Insertion, "error", err)
				}
				continue
			}
			edits = append(edits, redline.Edit{
				Operation:  redline.Insertion,
				TargetText: anchor,
				NewText:    d.Text,
			})
		}
	}

	return mergeDeleteInsert(edits)
}

// startOfDocumentEdit converts an insertion with no preceding anchor into a
// MODIFICATION against the first token of the next Equal run, when one
// exists immediately after. Returns ok=false when there is nothing to
// anchor to, matching the original's "ignored" fallback.
func startOfDocumentEdit(diffs []dmp.Diff, i int, insertedText string) (redline.Edit, bool) {
	if i+1 >= len(diffs) || diffs[i+1].Type != dmp.DiffEqual {
		return redline.Edit{}, false
	}
	next := diffs[i+1].Text
	anchorTarget := firstToken(next, startAnchorLen)
	if anchorTarget == "" {
		return redline.Edit{}, false
	}
	return redline.Edit{
		Operation:  redline.Modification,
		TargetText: anchorTarget,
		NewText:    insertedText + anchorTarget,
	}, true
}

// firstToken returns the first space-delimited token of s, or the first n
// code units when s has no space.
func firstToken(s string, n int) string {
	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		return s[:idx]
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// tail returns the last n runes of s (the whole string if shorter).
func tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// mergeDeleteInsert folds a DELETION immediately followed by an INSERTION
// into a single MODIFICATION: deleted text becomes the target, the
// insertion's new text becomes the replacement.
func mergeDeleteInsert(edits []redline.Edit) []redline.Edit {
	var merged []redline.Edit
	for i := 0; i < len(edits); i++ {
		if i+1 < len(edits) &&
			edits[i].Operation == redline.Deletion &&
			edits[i+1].Operation == redline.Insertion {
			merged = append(merged, redline.Edit{
				Operation:  redline.Modification,
				TargetText: edits[i].TargetText,
				NewText:    edits[i+1].NewText,
			})
			i++
			continue
		}
		merged = append(merged, edits[i])
	}
	return merged
}
