// Package opc implements just enough of the Open Packaging Conventions
// (the zip-based container format OOXML documents use) for the redline
// engine: read every part verbatim, resolve the main document part and an
// optional comments part by relationship type, and write every part back
// unchanged except the one or two this package's callers actually mutate.
//
// Grounded on the API shape of go-docx/pkg/docx/opc
// (Open/OpenBytes/Save/SaveToBytes, MainDocumentPart-by-relationship), but
// intentionally narrower: this package never needs a general
// PartFactory/relationship-graph-DFS machinery because nothing here mutates
// headers, footers, images, or any part type beyond document.xml and
// comments.xml.
package opc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

const (
	packageRelsName  = "_rels/.rels"
	contentTypesName = "[Content_Types].xml"
	documentRelsName = "word/_rels/document.xml.rels"
	commentsName     = "word/comments.xml"

	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeComments       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	contentTypeComments   = "application/vnd.openxmlformats-officedocument.wordprocessingml.comments+xml"
)

// MalformedArchiveError indicates the input is not a readable zip/OPC
// package.
type MalformedArchiveError struct{ msg string }

func (e *MalformedArchiveError) Error() string { return e.msg }

func newMalformedArchiveError(cause error, format string, args ...any) *MalformedArchiveError {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &MalformedArchiveError{msg: msg}
}

// Package is an in-memory OPC package: every zip entry's bytes, keyed by
// name, plus the resolved names of the two parts the redline core cares
// about.
type Package struct {
	parts    map[string][]byte
	order    []string // original zip entry order, for a stable Save layout
	docName  string
	cmtName  string // "" if no comments part exists yet
	hasCmt   bool
}

// OpenBytes reads an OPC package from in-memory zip bytes.
func OpenBytes(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, newMalformedArchiveError(err, "opc: not a valid zip archive")
	}

	pkg := &Package{parts: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, newMalformedArchiveError(err, "opc: reading part %q", f.Name)
		}
		blob, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, newMalformedArchiveError(err, "opc: reading part %q", f.Name)
		}
		pkg.parts[f.Name] = blob
		pkg.order = append(pkg.order, f.Name)
	}

	if err := pkg.resolvePartNames(); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (p *Package) resolvePartNames() error {
	pkgRelsBlob, ok := p.parts[packageRelsName]
	if !ok {
		return newMalformedArchiveError(nil, "opc: missing %s", packageRelsName)
	}
	pkgRels, err := parseRelationships(pkgRelsBlob)
	if err != nil {
		return err
	}
	docName, ok := pkgRels.relTarget(relTypeOfficeDocument, "")
	if !ok {
		return newMalformedArchiveError(nil, "opc: no main document relationship in %s", packageRelsName)
	}
	p.docName = docName
	if _, ok := p.parts[p.docName]; !ok {
		return newMalformedArchiveError(nil, "opc: main document part %q not present in archive", p.docName)
	}

	if docRelsBlob, ok := p.parts[documentRelsName]; ok {
		docRels, err := parseRelationships(docRelsBlob)
		if err != nil {
			return err
		}
		baseDir := "word"
		if cmtName, ok := docRels.relTarget(relTypeComments, baseDir); ok {
			if _, present := p.parts[cmtName]; present {
				p.cmtName = cmtName
				p.hasCmt = true
			}
		}
	}
	return nil
}

// DocumentXML returns the bytes of the main document part.
func (p *Package) DocumentXML() []byte { return p.parts[p.docName] }

// SetDocumentXML replaces the main document part's bytes.
func (p *Package) SetDocumentXML(blob []byte) { p.parts[p.docName] = blob }

// CommentsXML returns the bytes of the comments part and true, or (nil,
// false) if the package has none yet.
func (p *Package) CommentsXML() ([]byte, bool) {
	if !p.hasCmt {
		return nil, false
	}
	return p.parts[p.cmtName], true
}

// SetCommentsXML installs blob as the comments part, creating the part,
// its content-type override, and its relationship from the document part
// the first time this is called on a package with no comments part yet.
func (p *Package) SetCommentsXML(blob []byte) error {
	if p.hasCmt {
		p.parts[p.cmtName] = blob
		return nil
	}

	p.cmtName = commentsName
	p.parts[p.cmtName] = blob
	p.order = append(p.order, p.cmtName)
	p.hasCmt = true

	ctBlob, ok := p.parts[contentTypesName]
	if !ok {
		return newMalformedArchiveError(nil, "opc: missing %s", contentTypesName)
	}
	ct, err := parseContentTypes(ctBlob)
	if err != nil {
		return err
	}
	ct.addOverride("/"+commentsName, contentTypeComments)
	newCT, err := marshalContentTypes(ct)
	if err != nil {
		return err
	}
	p.parts[contentTypesName] = newCT

	docRelsBlob, ok := p.parts[documentRelsName]
	var docRels *relationshipsXML
	if ok {
		docRels, err = parseRelationships(docRelsBlob)
		if err != nil {
			return err
		}
	} else {
		docRels = &relationshipsXML{}
		p.order = append(p.order, documentRelsName)
	}
	docRels.Relationships = append(docRels.Relationships, relationshipEl{
		ID:     nextRelID(docRels),
		Type:   relTypeComments,
		Target: "comments.xml",
	})
	newDocRels, err := marshalRelationships(docRels)
	if err != nil {
		return err
	}
	p.parts[documentRelsName] = newDocRels
	return nil
}

// SaveToBytes serializes the package back to zip bytes. Every part keeps
// its original bytes except ones a Set* call touched; zip entry order is
// the order parts were first seen (or appended), so untouched members are
// byte-for-byte identical to the input archive's corresponding entries.
func (p *Package) SaveToBytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, name := range p.order {
		blob, ok := p.parts[name]
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("opc: writing part %q: %w", name, err)
		}
		if _, err := w.Write(blob); err != nil {
			return nil, fmt.Errorf("opc: writing part %q: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("opc: closing archive: %w", err)
	}
	return buf.Bytes(), nil
}
