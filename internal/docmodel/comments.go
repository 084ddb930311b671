package docmodel

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/corvid/redline-docx/internal/oxml"
)

// Comments is the parsed word/comments.xml tree, lazily created when the
// first commented edit applies.
type Comments struct {
	tree *etree.Document
	root *oxml.CT_Comments
}

// ParseComments parses existing comments.xml bytes.
func ParseComments(blob []byte) (*Comments, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(blob); err != nil {
		return nil, fmt.Errorf("docmodel: parsing comments.xml: %w", err)
	}
	root := tree.Root()
	if root == nil || root.Space != "w" || root.Tag != "comments" {
		return nil, fmt.Errorf("docmodel: comments.xml has no w:comments root")
	}
	return &Comments{tree: tree, root: oxml.NewCT_Comments(root)}, nil
}

// NewComments creates a fresh, empty comments document.
func NewComments() *Comments {
	root := oxml.NewComments()
	tree := etree.NewDocument()
	tree.SetRoot(root.Raw())
	return &Comments{tree: tree, root: root}
}

// Root returns the <w:comments> wrapper.
func (c *Comments) Root() *oxml.CT_Comments { return c.root }

// Serialize renders the tree back to XML bytes.
func (c *Comments) Serialize() ([]byte, error) {
	out, err := c.tree.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("docmodel: serializing comments.xml: %w", err)
	}
	return out, nil
}
