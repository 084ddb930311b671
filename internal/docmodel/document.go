// Package docmodel is a thin typed view over internal/oxml's element
// wrappers: the paragraph/run/table tree the redline core walks, without
// any OPC or zip concerns.
package docmodel

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/corvid/redline-docx/internal/oxml"
)

// Document is the parsed word/document.xml tree.
type Document struct {
	tree *etree.Document
	doc  *oxml.CT_Document
}

// Parse parses document.xml bytes into a Document.
func Parse(blob []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(blob); err != nil {
		return nil, fmt.Errorf("docmodel: parsing document.xml: %w", err)
	}
	root := tree.Root()
	if root == nil || root.Space != "w" || root.Tag != "document" {
		return nil, fmt.Errorf("docmodel: document.xml has no w:document root")
	}
	return &Document{tree: tree, doc: oxml.NewCT_Document(root)}, nil
}

// Body returns the document's <w:body>, or nil if absent.
func (d *Document) Body() *oxml.CT_Body { return d.doc.Body() }

// Paragraphs returns every paragraph in the document (body-direct, then
// table-cell paragraphs), per oxml.CT_Body.AllParagraphs.
func (d *Document) Paragraphs() []*oxml.CT_P {
	body := d.Body()
	if body == nil {
		return nil
	}
	return body.AllParagraphs()
}

// Serialize renders the tree back to XML bytes.
func (d *Document) Serialize() ([]byte, error) {
	out, err := d.tree.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("docmodel: serializing document.xml: %w", err)
	}
	return out, nil
}
