package scaffold

import (
	"bytes"
)

// maxSniffLen bounds how much of a file is inspected for binary content.
const maxSniffLen = 8192

// SubstituteVars replaces {{key}} placeholders with their values.
// Unknown placeholders are left untouched.
func SubstituteVars(content []byte, vars map[string]string) []byte {
	for key, value := range vars {
		placeholder := []byte("{{" + key + "}}")
		content = bytes.ReplaceAll(content, placeholder, []byte(value))
	}
	return content
}

// isProbablyText reports whether data looks like a text file. Binary
// template assets (images, wasm artifacts) are copied verbatim.
func isProbablyText(data []byte) bool {
	sniff := data
	if len(sniff) > maxSniffLen {
		sniff = sniff[:maxSniffLen]
	}
	return !bytes.ContainsRune(sniff, 0)
}
