package oxml

import "github.com/beevik/etree"

// CT_Document wraps the root <w:document> element of word/document.xml.
type CT_Document struct{ Element }

// NewCT_Document wraps an existing <w:document> element.
func NewCT_Document(e *etree.Element) *CT_Document { return &CT_Document{Element{e: e}} }

// Body returns the <w:body> child, or nil if absent.
func (doc *CT_Document) Body() *CT_Body {
	e := firstChildElement(doc.e, "w", "body")
	if e == nil {
		return nil
	}
	return &CT_Body{Element{e: e}}
}

// CT_Body wraps the <w:body> element.
type CT_Body struct{ Element }

// DirectParagraphs returns the <w:p> elements that are direct children of
// the body (not inside a table cell).
func (b *CT_Body) DirectParagraphs() []*CT_P {
	var result []*CT_P
	for _, e := range childElements(b.e, "w", "p") {
		result = append(result, NewCT_P(e))
	}
	return result
}

// Tables returns the <w:tbl> elements that are direct children of the body.
func (b *CT_Body) Tables() []*CT_Tbl {
	var result []*CT_Tbl
	for _, e := range childElements(b.e, "w", "tbl") {
		result = append(result, NewCT_Tbl(e))
	}
	return result
}

// AllParagraphs returns every paragraph the redline core operates over:
// all body-direct paragraphs first, then every table's every cell's
// paragraphs (row order, cell order), table by table in document order.
//
// Mirrors the traversal original_source/src/adeu/redline/mapper.py's
// _build_map performs: all_paragraphs = list(doc.paragraphs) followed by
// cell.paragraphs appended per table/row/cell — table content is NOT
// interleaved positionally with body paragraphs, it is appended after.
func (b *CT_Body) AllParagraphs() []*CT_P {
	result := b.DirectParagraphs()
	for _, tbl := range b.Tables() {
		for _, row := range tbl.Rows() {
			for _, cell := range row.Cells() {
				result = append(result, cell.Paragraphs()...)
			}
		}
	}
	return result
}
