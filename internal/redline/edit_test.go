package redline

import (
	"encoding/json"
	"testing"
)

func TestParseEditsJSON_LongFieldNames(t *testing.T) {
	data := []byte(`[
		{"operation": "DELETION", "target_text": "foo"},
		{"operation": "INSERTION", "new_text": "bar"},
		{"operation": "MODIFICATION", "target_text": "a", "new_text": "b", "comment": "why"}
	]`)
	edits, err := ParseEditsJSON(data)
	if err != nil {
		t.Fatalf("ParseEditsJSON: %v", err)
	}
	if len(edits) != 3 {
		t.Fatalf("got %d edits, want 3", len(edits))
	}
	if edits[0].Operation != Deletion || edits[0].TargetText != "foo" {
		t.Errorf("edit 0 = %+v", edits[0])
	}
	if edits[1].Operation != Insertion || edits[1].NewText != "bar" {
		t.Errorf("edit 1 = %+v", edits[1])
	}
	if edits[2].Comment != "why" {
		t.Errorf("edit 2 comment = %q, want %q", edits[2].Comment, "why")
	}
}

func TestParseEditsJSON_ShortFieldNamesAndInferredOperation(t *testing.T) {
	data := []byte(`[
		{"original": "old text", "replace": "new text"},
		{"original": "gone"},
		{"replace": "added"}
	]`)
	edits, err := ParseEditsJSON(data)
	if err != nil {
		t.Fatalf("ParseEditsJSON: %v", err)
	}
	if len(edits) != 3 {
		t.Fatalf("got %d edits, want 3", len(edits))
	}
	if edits[0].Operation != Modification {
		t.Errorf("edit 0 operation = %q, want %q", edits[0].Operation, Modification)
	}
	if edits[1].Operation != Deletion {
		t.Errorf("edit 1 operation = %q, want %q", edits[1].Operation, Deletion)
	}
	if edits[2].Operation != Insertion {
		t.Errorf("edit 2 operation = %q, want %q", edits[2].Operation, Insertion)
	}
}

func TestParseEditsJSON_SkipsEmptyItems(t *testing.T) {
	data := []byte(`[{"comment": "orphaned, no target or new text"}]`)
	edits, err := ParseEditsJSON(data)
	if err != nil {
		t.Fatalf("ParseEditsJSON: %v", err)
	}
	if len(edits) != 0 {
		t.Errorf("got %d edits, want 0 (item has neither target nor new text)", len(edits))
	}
}

func TestParseEditsJSON_MatchStartIndex(t *testing.T) {
	data := []byte(`[{"operation": "DELETION", "target_text": "cat", "match_start_index": 4}]`)
	edits, err := ParseEditsJSON(data)
	if err != nil {
		t.Fatalf("ParseEditsJSON: %v", err)
	}
	if edits[0].MatchStartIndex == nil || *edits[0].MatchStartIndex != 4 {
		t.Errorf("MatchStartIndex = %v, want pointer to 4", edits[0].MatchStartIndex)
	}
}

func TestEdit_MarshalJSON_OmitsEmptyOptionalFields(t *testing.T) {
	e := Edit{Operation: Deletion, TargetText: "foo"}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := out["new_text"]; ok {
		t.Error("expected new_text to be omitted when empty")
	}
	if _, ok := out["match_start_index"]; ok {
		t.Error("expected match_start_index to be omitted when nil")
	}
	if out["target_text"] != "foo" {
		t.Errorf("target_text = %v, want %q", out["target_text"], "foo")
	}
}
