package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"strconv"
	"strings"
)

// relationshipsXML is the root of a .rels part, e.g. _rels/.rels or
// word/_rels/document.xml.rels.
type relationshipsXML struct {
	XMLName       xml.Name         `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []relationshipEl `xml:"Relationship"`
}

type relationshipEl struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func parseRelationships(blob []byte) (*relationshipsXML, error) {
	var rels relationshipsXML
	if err := xml.Unmarshal(blob, &rels); err != nil {
		return nil, fmt.Errorf("opc: parsing relationships: %w", err)
	}
	return &rels, nil
}

// relTarget returns the Target of the first relationship with the given
// Type, resolved against baseDir (the directory the .rels file lives
// alongside — "" for the package-level _rels/.rels).
func (r *relationshipsXML) relTarget(relType, baseDir string) (string, bool) {
	for _, rel := range r.Relationships {
		if rel.Type == relType {
			return resolveTarget(baseDir, rel.Target), true
		}
	}
	return "", false
}

func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// nextRelID returns an unused "rIdN" identifier for appending a new
// relationship to an existing relationships part.
func nextRelID(rels *relationshipsXML) string {
	max := 0
	for _, rel := range rels.Relationships {
		if n, ok := strings.CutPrefix(rel.ID, "rId"); ok {
			if v, err := strconv.Atoi(n); err == nil && v > max {
				max = v
			}
		}
	}
	return "rId" + strconv.Itoa(max+1)
}

func marshalRelationships(rels *relationshipsXML) ([]byte, error) {
	out, err := xml.MarshalIndent(rels, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("opc: marshaling relationships: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
