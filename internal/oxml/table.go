package oxml

import "github.com/beevik/etree"

// CT_Tbl wraps a <w:tbl> table element.
type CT_Tbl struct{ Element }

// NewCT_Tbl wraps an existing <w:tbl> etree element.
func NewCT_Tbl(e *etree.Element) *CT_Tbl { return &CT_Tbl{Element{e: e}} }

// Rows returns the direct <w:tr> children of this table.
func (tbl *CT_Tbl) Rows() []*CT_Tr {
	var result []*CT_Tr
	for _, e := range childElements(tbl.e, "w", "tr") {
		result = append(result, &CT_Tr{Element{e: e}})
	}
	return result
}

// CT_Tr wraps a <w:tr> table-row element.
type CT_Tr struct{ Element }

// Cells returns the direct <w:tc> children of this row.
func (tr *CT_Tr) Cells() []*CT_Tc {
	var result []*CT_Tc
	for _, e := range childElements(tr.e, "w", "tc") {
		result = append(result, &CT_Tc{Element{e: e}})
	}
	return result
}

// CT_Tc wraps a <w:tc> table-cell element.
type CT_Tc struct{ Element }

// Paragraphs returns the direct <w:p> children of this cell, in
// cell-order — cells do not recurse into nested tables for the core's
// one-level-deep table support.
func (tc *CT_Tc) Paragraphs() []*CT_P {
	var result []*CT_P
	for _, e := range childElements(tc.e, "w", "p") {
		result = append(result, NewCT_P(e))
	}
	return result
}
