package oxml

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// CT_R wraps a <w:r> run element.
type CT_R struct{ Element }

// NewCT_R wraps an existing <w:r> etree element.
func NewCT_R(e *etree.Element) *CT_R { return &CT_R{Element{e: e}} }

// RPr returns this run's <w:rPr> child, or nil if absent.
func (r *CT_R) RPr() *CT_RPr {
	e := firstChildElement(r.e, "w", "rPr")
	if e == nil {
		return nil
	}
	return &CT_RPr{Element{e: e}}
}

// Texts returns every <w:t> child of this run, in document order.
func (r *CT_R) Texts() []*CT_Text {
	var result []*CT_Text
	for _, e := range childElements(r.e, "w", "t") {
		result = append(result, &CT_Text{Element{e: e}})
	}
	return result
}

// Text concatenates every <w:t> child's text content. Other inner-content
// elements (w:br, w:tab) are not part of the flat-view text and are not
// reproduced here — the redline core never needs to round-trip them to text,
// only <w:t> runs participate in target matching.
func (r *CT_R) Text() string {
	var sb strings.Builder
	for _, t := range r.Texts() {
		sb.WriteString(t.ContentText())
	}
	return sb.String()
}

// SetText replaces the run's content with a single <w:t> holding text,
// removing any other <w:t> children first. Run-properties (<w:rPr>) are
// left untouched.
func (r *CT_R) SetText(text string) {
	for _, e := range childElements(r.e, "w", "t") {
		r.e.RemoveChild(e)
	}
	t := OxmlElement("w:t")
	t.SetText(text)
	ensurePreserveSpace(t)
	insertAfter(r.e, r.RPrElement(), t)
}

// RPrElement returns the raw <w:rPr> element child, or nil.
func (r *CT_R) RPrElement() *etree.Element {
	return firstChildElement(r.e, "w", "rPr")
}

// CloneRPr returns a detached deep copy of this run's <w:rPr>, or nil if the
// run carries no formatting.
func (r *CT_R) CloneRPr() *etree.Element {
	rPr := r.RPrElement()
	if rPr == nil {
		return nil
	}
	return rPr.Copy()
}

// Parent returns the raw parent element (a <w:p>, <w:ins>, <w:del>, or
// <w:hyperlink>), or nil if detached.
func (r *CT_R) Parent() *etree.Element { return r.e.Parent() }

// ReplaceWith substitutes replacement for this run in its parent's child
// order, at the same position. No-op if the run is already detached.
func (r *CT_R) ReplaceWith(replacement *etree.Element) {
	parent := r.e.Parent()
	if parent == nil {
		return
	}
	idx := childIndex(parent, r.e)
	if idx < 0 {
		return
	}
	parent.RemoveChild(r.e)
	parent.InsertChildAt(idx, replacement)
}

// Split splits this run at byte offset idx (within Text()), producing a new
// sibling run immediately after this one carrying the suffix, with this
// run's text truncated to the prefix. Both runs share structurally equal
// run-properties. Returns (left, right); left is the receiver itself.
//
// Grounded on the cross-run replacement algorithm in replacetext.go (clone
// formatting, fresh <w:t>, insert immediately after), specialized here to a
// single split point instead of arbitrary-range replacement.
func (r *CT_R) Split(idx int) (*CT_R, *CT_R) {
	text := r.Text()
	left, right := text[:idx], text[idx:]

	r.SetText(left)

	newElem := r.e.Copy()
	for _, e := range childElements(newElem, "w", "t") {
		newElem.RemoveChild(e)
	}
	t := OxmlElement("w:t")
	t.SetText(right)
	ensurePreserveSpace(t)
	var rPrElem *etree.Element
	for _, c := range newElem.ChildElements() {
		if c.Space == "w" && c.Tag == "rPr" {
			rPrElem = c
			break
		}
	}
	insertAfter(newElem, rPrElem, t)

	parent := r.e.Parent()
	insertAfter(parent, r.e, newElem)

	return r, NewCT_R(newElem)
}

// CT_RPr wraps a <w:rPr> run-properties element.
type CT_RPr struct{ Element }

// RPrEqual reports whether a and b describe structurally equal formatting:
// same set of child element tags and attributes, ignoring element order and
// attribute order. Either may be nil (no formatting), which is equal only to
// another nil.
func RPrEqual(a, b *etree.Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return elementsStructurallyEqual(a, b)
}

func elementsStructurallyEqual(a, b *etree.Element) bool {
	if a.Space != b.Space || a.Tag != b.Tag {
		return false
	}
	if !attrsEqual(a.Attr, b.Attr) {
		return false
	}
	ac, bc := a.ChildElements(), b.ChildElements()
	if len(ac) != len(bc) {
		return false
	}
	sortedA := sortedChildren(ac)
	sortedB := sortedChildren(bc)
	for i := range sortedA {
		if !elementsStructurallyEqual(sortedA[i], sortedB[i]) {
			return false
		}
	}
	return true
}

func sortedChildren(els []*etree.Element) []*etree.Element {
	out := make([]*etree.Element, len(els))
	copy(out, els)
	sort.Slice(out, func(i, j int) bool {
		ki, kj := out[i].Space+":"+out[i].Tag, out[j].Space+":"+out[j].Tag
		if ki != kj {
			return ki < kj
		}
		return attrKey(out[i].Attr) < attrKey(out[j].Attr)
	})
	return out
}

func attrKey(attrs []etree.Attr) string {
	sorted := make([]etree.Attr, len(attrs))
	copy(sorted, attrs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Space+sorted[i].Key < sorted[j].Space+sorted[j].Key
	})
	var sb strings.Builder
	for _, a := range sorted {
		sb.WriteString(a.Space)
		sb.WriteByte(':')
		sb.WriteString(a.Key)
		sb.WriteByte('=')
		sb.WriteString(a.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

func attrsEqual(a, b []etree.Attr) bool {
	if len(a) != len(b) {
		return false
	}
	return attrKey(a) == attrKey(b)
}

// CT_Text wraps a <w:t> text leaf.
type CT_Text struct{ Element }

// ContentText returns the text content of this element.
func (t *CT_Text) ContentText() string { return t.e.Text() }

// CT_Br wraps a <w:br> break element.
type CT_Br struct{ Element }

// CT_Tab wraps a <w:tab> element.
type CT_Tab struct{ Element }
