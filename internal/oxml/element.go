package oxml

import (
	"strings"

	"github.com/beevik/etree"
)

// Element is the common base every typed wrapper in this package embeds.
// It holds the underlying etree element and nothing else — all semantics
// live in the typed methods of CT_* wrappers.
type Element struct {
	e *etree.Element
}

// Raw returns the underlying etree element, for callers (packaging layers)
// that need to splice a wrapper's element directly into a parent.
func (el Element) Raw() *etree.Element { return el.e }

// OxmlElement creates a new, detached element for a namespace-prefixed tag
// such as "w:r". Space and Tag are set directly rather than through
// etree.CreateElement's colon-splitting, since etree treats "w:r" as a
// literal tag unless told otherwise.
func OxmlElement(nstag string) *etree.Element {
	prefix, local, _ := cutTag(nstag)
	e := etree.NewElement(local)
	e.Space = prefix
	return e
}

func cutTag(nstag string) (prefix, local string, ok bool) {
	for i := 0; i < len(nstag); i++ {
		if nstag[i] == ':' {
			return nstag[:i], nstag[i+1:], true
		}
	}
	return "", nstag, false
}

// childElements returns the direct child elements of e matching the given
// namespace prefix and local tag name.
func childElements(e *etree.Element, space, tag string) []*etree.Element {
	var result []*etree.Element
	for _, c := range e.ChildElements() {
		if c.Space == space && c.Tag == tag {
			result = append(result, c)
		}
	}
	return result
}

// firstChildElement returns the first direct child matching space/tag, or nil.
func firstChildElement(e *etree.Element, space, tag string) *etree.Element {
	for _, c := range e.ChildElements() {
		if c.Space == space && c.Tag == tag {
			return c
		}
	}
	return nil
}

// childIndex returns the index of child within parent.Child, or -1.
func childIndex(parent, child *etree.Element) int {
	for i, c := range parent.Child {
		if el, ok := c.(*etree.Element); ok && el == child {
			return i
		}
	}
	return -1
}

// InsertAfter inserts child into anchor's parent, immediately following
// anchor. No-op if anchor is detached.
func InsertAfter(anchor, child *etree.Element) {
	parent := anchor.Parent()
	if parent == nil {
		return
	}
	insertAfter(parent, anchor, child)
}

// insertAfter inserts child into parent immediately after anchor. If anchor
// is nil or not found, child is appended.
func insertAfter(parent, anchor, child *etree.Element) {
	idx := -1
	if anchor != nil {
		idx = childIndex(parent, anchor)
	}
	if idx < 0 {
		parent.AddChild(child)
		return
	}
	parent.InsertChildAt(idx+1, child)
}

// ensurePreserveSpace sets or removes xml:space="preserve" on a text-bearing
// element depending on whether its content's stripped form differs from
// itself — leading/trailing whitespace must survive XML whitespace collapse.
func ensurePreserveSpace(e *etree.Element) {
	text := e.Text()
	if needsPreserve(text) {
		e.CreateAttr("xml:space", "preserve")
	} else {
		e.RemoveAttr("xml:space")
	}
}

func needsPreserve(text string) bool {
	return text != "" && len(strings.TrimSpace(text)) < len(text)
}
