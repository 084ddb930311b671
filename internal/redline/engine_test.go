package redline

import (
	"archive/zip"
	"bytes"
	"log/slog"
	"testing"

	"github.com/corvid/redline-docx/internal/opc"
)

const engineTestContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const engineTestPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func buildTestDocx(t *testing.T, bodyInnerXML string) []byte {
	t.Helper()
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + bodyInnerXML + `</w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml": engineTestContentTypes,
		"_rels/.rels":         engineTestPackageRels,
		"word/document.xml":   documentXML,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestEngine_ApplyEdits_Deletion(t *testing.T) {
	blob := buildTestDocx(t, `<w:p><w:r><w:t>the quick brown fox</w:t></w:r></w:p>`)

	engine, err := NewEngine(blob, "Reviewer", discardLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	applied, skipped := engine.ApplyEdits([]Edit{
		{Operation: Deletion, TargetText: "quick brown "},
	})
	if applied != 1 || skipped != 0 {
		t.Fatalf("applied=%d skipped=%d, want 1/0", applied, skipped)
	}

	out, err := engine.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	pkg, err := opc.OpenBytes(out)
	if err != nil {
		t.Fatalf("re-opening saved document: %v", err)
	}
	if !bytes.Contains(pkg.DocumentXML(), []byte("w:delText")) {
		t.Error("expected a <w:delText> element in the saved document")
	}
}

func TestEngine_ApplyEdits_Insertion(t *testing.T) {
	blob := buildTestDocx(t, `<w:p><w:r><w:t>hello world</w:t></w:r></w:p>`)

	engine, err := NewEngine(blob, "Reviewer", discardLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	applied, skipped := engine.ApplyEdits([]Edit{
		{Operation: Insertion, TargetText: "hello", NewText: " there"},
	})
	if applied != 1 || skipped != 0 {
		t.Fatalf("applied=%d skipped=%d, want 1/0", applied, skipped)
	}

	out, err := engine.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	pkg, err := opc.OpenBytes(out)
	if err != nil {
		t.Fatalf("re-opening: %v", err)
	}
	if !bytes.Contains(pkg.DocumentXML(), []byte("w:ins")) {
		t.Error("expected a <w:ins> element in the saved document")
	}
}

func TestEngine_ApplyEdits_Modification(t *testing.T) {
	blob := buildTestDocx(t, `<w:p><w:r><w:t>the quick brown fox</w:t></w:r></w:p>`)

	engine, err := NewEngine(blob, "Reviewer", discardLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	applied, _ := engine.ApplyEdits([]Edit{
		{Operation: Modification, TargetText: "quick brown", NewText: "slow red"},
	})
	if applied != 1 {
		t.Fatalf("applied=%d, want 1", applied)
	}

	out, err := engine.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	pkg, _ := opc.OpenBytes(out)
	body := pkg.DocumentXML()
	if !bytes.Contains(body, []byte("w:delText")) || !bytes.Contains(body, []byte("w:ins")) {
		t.Error("expected both a deletion and an insertion wrapper for a MODIFICATION")
	}
}

func TestEngine_ApplyEdits_SkipsMissingTarget(t *testing.T) {
	blob := buildTestDocx(t, `<w:p><w:r><w:t>hello world</w:t></w:r></w:p>`)

	engine, err := NewEngine(blob, "Reviewer", discardLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	applied, skipped := engine.ApplyEdits([]Edit{
		{Operation: Deletion, TargetText: "not present"},
	})
	if applied != 0 || skipped != 1 {
		t.Fatalf("applied=%d skipped=%d, want 0/1", applied, skipped)
	}
}

func TestEngine_ApplyEdits_SkipsEmptyInsertion(t *testing.T) {
	blob := buildTestDocx(t, `<w:p><w:r><w:t>hello world</w:t></w:r></w:p>`)

	engine, err := NewEngine(blob, "Reviewer", discardLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	applied, skipped := engine.ApplyEdits([]Edit{
		{Operation: Insertion, TargetText: "hello", NewText: ""},
	})
	if applied != 0 || skipped != 1 {
		t.Fatalf("applied=%d skipped=%d, want 0/1 for an empty insertion", applied, skipped)
	}
}

func TestEngine_ApplyEdits_LongestTargetFirst(t *testing.T) {
	// "brown fox" contains "fox"; applying the longer target first must not
	// be pre-empted by the shorter one consuming part of the match. Once
	// "brown fox" is deleted no live "fox" remains, so the shorter edit is
	// skipped.
	blob := buildTestDocx(t, `<w:p><w:r><w:t>the quick brown fox jumps</w:t></w:r></w:p>`)

	engine, err := NewEngine(blob, "Reviewer", discardLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	applied, skipped := engine.ApplyEdits([]Edit{
		{Operation: Deletion, TargetText: "fox"},
		{Operation: Deletion, TargetText: "brown fox"},
	})
	if applied != 1 || skipped != 1 {
		t.Fatalf("applied=%d skipped=%d, want 1/1", applied, skipped)
	}
	if got, want := engine.mapper.FlatView(), "the quick  jumps"; got != want {
		t.Errorf("live flat view = %q, want %q (\"brown fox\" deleted first)", got, want)
	}
}

func TestEngine_AttachComment(t *testing.T) {
	blob := buildTestDocx(t, `<w:p><w:r><w:t>hello world</w:t></w:r></w:p>`)

	engine, err := NewEngine(blob, "Reviewer", discardLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	applied, _ := engine.ApplyEdits([]Edit{
		{Operation: Deletion, TargetText: "world", Comment: "why removed"},
	})
	if applied != 1 {
		t.Fatalf("applied=%d, want 1", applied)
	}

	out, err := engine.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	pkg, err := opc.OpenBytes(out)
	if err != nil {
		t.Fatalf("re-opening: %v", err)
	}
	cBlob, ok := pkg.CommentsXML()
	if !ok {
		t.Fatal("expected a comments part to have been created")
	}
	if !bytes.Contains(cBlob, []byte("why removed")) {
		t.Error("expected the comment text in word/comments.xml")
	}
	if !bytes.Contains(pkg.DocumentXML(), []byte("commentReference")) {
		t.Error("expected a commentReference marker in the document")
	}
}
