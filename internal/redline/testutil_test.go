package redline

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/corvid/redline-docx/internal/docmodel"
	"github.com/corvid/redline-docx/internal/oxml"
)

// makeDoc builds a docmodel.Document from a <w:body> inner-XML fragment,
// wrapping it in a minimal <w:document>.
func makeDoc(t *testing.T, bodyInnerXML string) *docmodel.Document {
	t.Helper()
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + bodyInnerXML + `</w:body></w:document>`
	doc, err := docmodel.Parse([]byte(xml))
	if err != nil {
		t.Fatalf("docmodel.Parse: %v", err)
	}
	return doc
}

func mustParseXML(t *testing.T, xml string) *etree.Element {
	t.Helper()
	d := etree.NewDocument()
	if err := d.ReadFromString(xml); err != nil {
		t.Fatalf("parsing xml: %v", err)
	}
	return d.Root()
}

func makeRun(t *testing.T, innerXML string) *oxml.CT_R {
	t.Helper()
	xml := `<w:r xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + innerXML + `</w:r>`
	return oxml.NewCT_R(mustParseXML(t, xml))
}
