package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/zerr"
)

// RenderManifest serializes m with four-space indentation. HTML characters in
// names are kept literal; non-ASCII characters are written as \u escapes.
func RenderManifest(m *domain.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestRenderFailed.Error())
	}
	return escapeNonASCII(buf.Bytes()), nil
}

// ParseManifest decodes a manifest written by RenderManifest. Every entry must
// name a direct child of the manifest's directory.
func ParseManifest(data []byte) (*domain.Manifest, error) {
	m := domain.NewManifest()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	for _, f := range m.Files {
		if !isChildName(f.Name) {
			return nil, zerr.With(domain.ErrInvalidManifestEntry, "name", f.Name)
		}
	}
	for _, d := range m.Dirs {
		if !isChildName(d.Name) {
			return nil, zerr.With(domain.ErrInvalidManifestEntry, "name", d.Name)
		}
	}
	return m, nil
}

func isChildName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// escapeNonASCII rewrites every non-ASCII rune of encoded JSON as a \u escape,
// using a surrogate pair above the basic plane. Encoder output is valid UTF-8
// and non-ASCII runes only occur inside strings.
func escapeNonASCII(data []byte) []byte {
	if !bytes.ContainsFunc(data, func(r rune) bool { return r >= utf8.RuneSelf }) {
		return data
	}

	out := make([]byte, 0, len(data)+len(data)/4)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		switch {
		case r < utf8.RuneSelf:
			out = append(out, byte(r))
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, hi, lo)
		default:
			out = fmt.Appendf(out, `\u%04x`, r)
		}
	}
	return out
}
