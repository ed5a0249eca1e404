// Package encoding detects the character set of graph documents and
// decodes them to UTF-8 before parsing.
package encoding

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset is a character encoding a document may arrive in.
type Charset struct {
	ID      string
	Name    string
	decoder encoding.Encoding // nil for UTF-8
	bom     []byte
	aliases []string // chardet names
}

// Detection is the outcome of Detect.
type Detection struct {
	Charset    *Charset
	Confidence int // 0-100
	HasBOM     bool
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

var charsets = []*Charset{
	{ID: "utf-8", Name: "UTF-8", aliases: []string{"UTF-8", "utf8"}},
	{ID: "utf-8-bom", Name: "UTF-8 BOM", bom: utf8BOM},
	{ID: "utf-16-le", Name: "UTF-16 LE", decoder: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), bom: utf16LEBOM, aliases: []string{"UTF-16LE"}},
	{ID: "utf-16-be", Name: "UTF-16 BE", decoder: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), bom: utf16BEBOM, aliases: []string{"UTF-16BE"}},
	{ID: "iso-8859-1", Name: "ISO-8859-1", decoder: charmap.ISO8859_1, aliases: []string{"ISO-8859-1", "latin1"}},
	{ID: "windows-1252", Name: "Windows-1252", decoder: charmap.Windows1252, aliases: []string{"windows-1252", "CP1252"}},
	{ID: "shift-jis", Name: "Shift-JIS", decoder: japanese.ShiftJIS, aliases: []string{"Shift_JIS", "SJIS"}},
	{ID: "euc-jp", Name: "EUC-JP", decoder: japanese.EUCJP, aliases: []string{"EUC-JP"}},
	{ID: "gb18030", Name: "GB18030", decoder: simplifiedchinese.GB18030, aliases: []string{"GB18030", "GB-18030", "GBK", "GB2312"}},
	{ID: "euc-kr", Name: "EUC-KR", decoder: korean.EUCKR, aliases: []string{"EUC-KR"}},
}

// Lookup finds a charset by ID or chardet name, case-insensitively.
func Lookup(name string) *Charset {
	for _, cs := range charsets {
		if strings.EqualFold(cs.ID, name) || strings.EqualFold(cs.Name, name) {
			return cs
		}
		for _, a := range cs.aliases {
			if strings.EqualFold(a, name) {
				return cs
			}
		}
	}
	return nil
}

// Detect guesses the charset of data. BOMs win, then valid UTF-8, then
// chardet. Undetectable input falls back to Latin-1, which decodes any
// byte sequence.
func Detect(data []byte) Detection {
	for _, id := range []string{"utf-8-bom", "utf-16-be", "utf-16-le"} {
		cs := Lookup(id)
		if bytes.HasPrefix(data, cs.bom) {
			return Detection{Charset: cs, Confidence: 100, HasBOM: true}
		}
	}
	if utf8.Valid(data) {
		return Detection{Charset: Lookup("utf-8"), Confidence: 100}
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || best == nil {
		return Detection{Charset: Lookup("iso-8859-1"), Confidence: 50}
	}
	if cs := Lookup(best.Charset); cs != nil {
		return Detection{Charset: cs, Confidence: best.Confidence}
	}
	return Detection{
		Charset:    &Charset{ID: strings.ToLower(best.Charset), Name: best.Charset},
		Confidence: best.Confidence,
	}
}

// Supported reports whether the charset can be decoded.
func (cs *Charset) Supported() bool {
	return Lookup(cs.ID) == cs
}

// Decode converts data in cs to UTF-8, dropping any byte order mark.
func Decode(data []byte, cs *Charset) ([]byte, error) {
	if cs == nil {
		return data, nil
	}
	if !cs.Supported() {
		return nil, fmt.Errorf("unsupported encoding %q", cs.Name)
	}
	if len(cs.bom) > 0 {
		data = bytes.TrimPrefix(data, cs.bom)
	}
	if cs.decoder == nil {
		return data, nil
	}
	return io.ReadAll(transform.NewReader(bytes.NewReader(data), cs.decoder.NewDecoder()))
}

// ToUTF8 detects and decodes in one step.
func ToUTF8(data []byte) ([]byte, Detection, error) {
	d := Detect(data)
	out, err := Decode(data, d.Charset)
	if err != nil {
		return nil, d, err
	}
	return out, d, nil
}
