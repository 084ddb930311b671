package redline

import "encoding/json"

// Operation is the kind of change an Edit describes.
type Operation string

const (
	Insertion    Operation = "INSERTION"
	Deletion     Operation = "DELETION"
	Modification Operation = "MODIFICATION"
)

// Edit is one atomic change to apply against a document's flat text view.
// TargetText is the literal substring to locate — for INSERTION, the
// anchor immediately preceding the intended insertion point. NewText is
// required for INSERTION/MODIFICATION. MatchStartIndex, when non-nil, pins
// the match to that exact flat-view offset instead of the first
// occurrence.
type Edit struct {
	Operation       Operation
	TargetText      string
	NewText         string
	Comment         string
	MatchStartIndex *int
}

// rawEdit mirrors the flexible JSON input form accepted on the wire: both
// long and short field names are accepted, and Operation may be omitted
// and inferred from which text fields are present.
type rawEdit struct {
	Operation       *string `json:"operation"`
	TargetText      *string `json:"target_text"`
	Original        *string `json:"original"`
	NewText         *string `json:"new_text"`
	Replace         *string `json:"replace"`
	Comment         *string `json:"comment"`
	MatchStartIndex *int    `json:"match_start_index"`
}

// ParseEditsJSON decodes a JSON array of edit objects under a flexible
// schema: target_text|original, new_text|replace, optional comment, and an
// optional operation inferred when absent (both present ⇒ MODIFICATION;
// target only ⇒ DELETION; new only ⇒ INSERTION; neither ⇒ the item is
// skipped, matching original_source/src/adeu/cli.py's _load_edits_from_json).
func ParseEditsJSON(data []byte) ([]Edit, error) {
	var raws []rawEdit
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	var edits []Edit
	for _, r := range raws {
		target := firstNonNil(r.TargetText, r.Original)
		newText := firstNonNil(r.NewText, r.Replace)

		var op Operation
		switch {
		case r.Operation != nil:
			op = Operation(*r.Operation)
		case target != "" && newText != "":
			op = Modification
		case target != "" && newText == "":
			op = Deletion
		case target == "" && newText != "":
			op = Insertion
		default:
			continue
		}

		e := Edit{Operation: op, TargetText: target, NewText: newText}
		if r.Comment != nil {
			e.Comment = *r.Comment
		}
		if r.MatchStartIndex != nil {
			idx := *r.MatchStartIndex
			e.MatchStartIndex = &idx
		}
		edits = append(edits, e)
	}
	return edits, nil
}

func firstNonNil(a, b *string) string {
	if a != nil {
		return *a
	}
	if b != nil {
		return *b
	}
	return ""
}

// MarshalJSON renders an Edit using the long field names, the canonical
// output form for `redline diff --json`.
func (e Edit) MarshalJSON() ([]byte, error) {
	out := struct {
		Operation       Operation `json:"operation"`
		TargetText      string    `json:"target_text"`
		NewText         string    `json:"new_text,omitempty"`
		Comment         string    `json:"comment,omitempty"`
		MatchStartIndex *int      `json:"match_start_index,omitempty"`
	}{
		Operation:       e.Operation,
		TargetText:      e.TargetText,
		NewText:         e.NewText,
		Comment:         e.Comment,
		MatchStartIndex: e.MatchStartIndex,
	}
	return json.Marshal(out)
}
