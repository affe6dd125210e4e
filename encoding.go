package easypath

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/jmgilman/go/easypath/errors"
)

const (
	encodingAuto    = "auto"
	encodingUTF8    = "utf-8"
	encodingUTF8BOM = "utf-8-sig"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// encodingAliases maps names that neither index knows to ones they do.
var encodingAliases = map[string]string{
	"utf8":      encodingUTF8,
	"utf_8":     encodingUTF8,
	"utf-8-bom": encodingUTF8BOM,
	"utf8-sig":  encodingUTF8BOM,
	"utf_8_sig": encodingUTF8BOM,
	"latin-1":   "iso-8859-1",
	"latin_1":   "iso-8859-1",
	"gb-18030":  "gb18030",
	"ascii":     "us-ascii",
}

// normalizeEncoding lower-cases name and resolves aliases.
func normalizeEncoding(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := encodingAliases[n]; ok {
		return alias
	}
	return n
}

// lookupEncoding finds a non-UTF-8 encoding by IANA name, then by WHATWG
// label.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, errors.WithContext(errors.New(errors.CodeInvalidInput, "unknown text encoding"), "encoding", name)
}

// detectCharset guesses the encoding of data. Valid UTF-8 is always reported
// as utf-8; anything else is left to chardet.
func detectCharset(data []byte) string {
	if utf8.Valid(data) {
		if bytes.HasPrefix(data, utf8BOM) {
			return encodingUTF8BOM
		}
		return encodingUTF8
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return encodingUTF8
	}
	return strings.ToLower(result.Charset)
}

// decodeText converts data in the named encoding to a string.
func decodeText(data []byte, name string, mode ErrorMode) (string, error) {
	n := normalizeEncoding(name)
	if n == encodingAuto {
		n = normalizeEncoding(detectCharset(data))
	}

	switch n {
	case encodingUTF8BOM:
		return decodeUTF8(bytes.TrimPrefix(data, utf8BOM), mode)
	case encodingUTF8:
		return decodeUTF8(data, mode)
	}

	enc, err := lookupEncoding(n)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.WithContext(errors.Wrap(err, errors.CodeDecodeFailed, "failed to decode text"), "encoding", n)
	}
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) {
		switch mode {
		case ErrorsStrict:
			return "", errors.WithContext(errors.New(errors.CodeDecodeFailed, "text is not valid in its encoding"), "encoding", n)
		case ErrorsIgnore:
			s = strings.ReplaceAll(s, string(utf8.RuneError), "")
		}
	}
	return s, nil
}

func decodeUTF8(data []byte, mode ErrorMode) (string, error) {
	s := string(data)
	if utf8.ValidString(s) {
		return s, nil
	}
	switch mode {
	case ErrorsReplace:
		return strings.ToValidUTF8(s, string(utf8.RuneError)), nil
	case ErrorsIgnore:
		return strings.ToValidUTF8(s, ""), nil
	default:
		return "", errors.WithContext(errors.New(errors.CodeDecodeFailed, "text is not valid UTF-8"), "encoding", encodingUTF8)
	}
}

// encodeText converts s to bytes in the named encoding. "auto" writes UTF-8.
func encodeText(s string, name string, mode ErrorMode) ([]byte, error) {
	n := normalizeEncoding(name)
	switch n {
	case encodingAuto, encodingUTF8:
		return encodeUTF8(s, mode)
	case encodingUTF8BOM:
		b, err := encodeUTF8(s, mode)
		if err != nil {
			return nil, err
		}
		return append(append([]byte{}, utf8BOM...), b...), nil
	}

	enc, err := lookupEncoding(n)
	if err != nil {
		return nil, err
	}

	var out string
	switch mode {
	case ErrorsReplace:
		out, err = encoding.ReplaceUnsupported(enc.NewEncoder()).String(s)
	case ErrorsIgnore:
		var b strings.Builder
		encoder := enc.NewEncoder()
		for _, r := range s {
			chunk, rerr := encoder.String(string(r))
			if rerr != nil {
				encoder.Reset()
				continue
			}
			b.WriteString(chunk)
		}
		out = b.String()
	default:
		out, err = enc.NewEncoder().String(s)
	}
	if err != nil {
		return nil, errors.WithContext(errors.Wrap(err, errors.CodeEncodeFailed, "text cannot be represented in encoding"), "encoding", n)
	}
	return []byte(out), nil
}

func encodeUTF8(s string, mode ErrorMode) ([]byte, error) {
	if utf8.ValidString(s) {
		return []byte(s), nil
	}
	switch mode {
	case ErrorsReplace:
		return []byte(strings.ToValidUTF8(s, string(utf8.RuneError))), nil
	case ErrorsIgnore:
		return []byte(strings.ToValidUTF8(s, "")), nil
	default:
		return nil, errors.WithContext(errors.New(errors.CodeEncodeFailed, "string is not valid UTF-8"), "encoding", encodingUTF8)
	}
}
