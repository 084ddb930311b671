package opc

import (
	"encoding/xml"
	"fmt"
)

// contentTypesXML is [Content_Types].xml: Default entries map a file
// extension to a content type; Override entries map one specific part name.
type contentTypesXML struct {
	XMLName  xml.Name      `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults []defaultEl   `xml:"Default"`
	Overrides []overrideEl `xml:"Override"`
}

type defaultEl struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideEl struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func parseContentTypes(blob []byte) (*contentTypesXML, error) {
	var ct contentTypesXML
	if err := xml.Unmarshal(blob, &ct); err != nil {
		return nil, fmt.Errorf("opc: parsing content types: %w", err)
	}
	return &ct, nil
}

// addOverride registers contentType for the exact part name (e.g.
// "/word/comments.xml"), replacing any existing override for that name.
func (ct *contentTypesXML) addOverride(partName, contentType string) {
	for i := range ct.Overrides {
		if ct.Overrides[i].PartName == partName {
			ct.Overrides[i].ContentType = contentType
			return
		}
	}
	ct.Overrides = append(ct.Overrides, overrideEl{PartName: partName, ContentType: contentType})
}

func marshalContentTypes(ct *contentTypesXML) ([]byte, error) {
	out, err := xml.MarshalIndent(ct, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("opc: marshaling content types: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
