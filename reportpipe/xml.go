// CLAUDE:SUMMARY XML loader: schema-less token walk flattening all leaf text and attribute values.
package reportpipe

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// loadXML flattens an XML dump to plain text without assuming any schema:
// every character-data leaf and every attribute value is collected in
// encounter order, newline-joined. Malformed XML that still parses
// structurally yields whatever text was reached before the decoder gave up;
// XML that fails to parse entirely is a decode failure.
func loadXML(payload []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(payload))
	// Scan-tool dumps frequently declare legacy single-byte charsets the
	// decoder refuses by default; the byte content is passed through as is.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var parts []string
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Decoders choke on scan-tool quirks mid-document; text reached
			// up to that point is still worth extracting. A payload without
			// any element structure at all is not XML.
			if !sawElement {
				return "", fmt.Errorf("%w: xml parse: %v", ErrDecode, err)
			}
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			sawElement = true
			for _, attr := range t.Attr {
				if v := strings.TrimSpace(attr.Value); v != "" {
					parts = append(parts, v)
				}
			}
		case xml.CharData:
			if v := strings.TrimSpace(string(t)); v != "" {
				parts = append(parts, v)
			}
		}
	}
	if !sawElement {
		return "", fmt.Errorf("%w: xml parse: no element structure", ErrDecode)
	}

	return strings.Join(parts, "\n"), nil
}
