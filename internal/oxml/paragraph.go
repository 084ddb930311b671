package oxml

import "github.com/beevik/etree"

// CT_P wraps a <w:p> paragraph element.
type CT_P struct{ Element }

// NewCT_P wraps an existing <w:p> etree element.
func NewCT_P(e *etree.Element) *CT_P { return &CT_P{Element{e: e}} }

// Runs returns the direct <w:r> children of this paragraph, in document
// order. Runs nested inside <w:ins>/<w:del>/<w:hyperlink>/<w:smartTag>
// wrappers are not direct children and are exposed by UnwrapSmartTags /
// the caller's own traversal — the core only ever walks live, unwrapped
// paragraphs (normalization runs before mapping).
func (p *CT_P) Runs() []*CT_R {
	var result []*CT_R
	for _, e := range childElements(p.e, "w", "r") {
		result = append(result, NewCT_R(e))
	}
	return result
}

// UnwrapSmartTags replaces every direct <w:smartTag> child with its own
// children, spliced in place, flattening one level of wrapper. Repeats
// until no <w:smartTag> children remain (handles nested smart tags).
func (p *CT_P) UnwrapSmartTags() {
	for {
		tags := childElements(p.e, "w", "smartTag")
		if len(tags) == 0 {
			return
		}
		for _, tag := range tags {
			idx := childIndex(p.e, tag)
			var children []*etree.Element
			for _, c := range tag.ChildElements() {
				children = append(children, c)
			}
			p.e.RemoveChild(tag)
			for i, c := range children {
				tag.RemoveChild(c)
				p.e.InsertChildAt(idx+i, c)
			}
		}
	}
}

// RemoveRun removes run from this paragraph's children.
func (p *CT_P) RemoveRun(r *CT_R) {
	p.e.RemoveChild(r.e)
}

// CT_PPr wraps a <w:pPr> paragraph-properties element. The redline core
// never inspects paragraph formatting, and nothing in this repository
// currently uses this type.
type CT_PPr struct{ Element }
