// CLAUDE:SUMMARY Plain-text loader: UTF-8 passthrough with BOM stripping.
package reportpipe

import (
	"bytes"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// loadText treats the payload as a plain scan log. Invalid UTF-8 bytes are
// replaced rather than rejected: scan tools emit odd encodings and a few
// mangled runes must not sink an otherwise readable report.
func loadText(payload []byte) (string, error) {
	payload = bytes.TrimPrefix(payload, utf8BOM)
	if utf8.Valid(payload) {
		return string(payload), nil
	}
	return string(bytes.ToValidUTF8(payload, []byte("�"))), nil
}
