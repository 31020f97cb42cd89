package docnav

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	unicodeenc "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// namedEncodings mirrors the legacy-encoding catalog goripgrep's
// unicode.go builds over golang.org/x/text/encoding, reused here to let
// Document open non-UTF-8 log files by transliterating them to UTF-8
// before any byte offset is indexed by a Chunk.
var namedEncodings = map[string]encoding.Encoding{
	"shift_jis":   japanese.ShiftJIS,
	"euc-jp":      japanese.EUCJP,
	"euc-kr":      korean.EUCKR,
	"gbk":         simplifiedchinese.GBK,
	"gb18030":     simplifiedchinese.GB18030,
	"big5":        traditionalchinese.Big5,
	"latin1":      charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"utf-16le":    unicodeenc.UTF16(unicodeenc.LittleEndian, unicodeenc.IgnoreBOM),
	"utf-16be":    unicodeenc.UTF16(unicodeenc.BigEndian, unicodeenc.IgnoreBOM),
}

// DecodeToUTF8 transliterates r, assumed to be encoded as name, into a
// new reader of UTF-8 bytes. Supplements the core's UTF-8 assumption
// (spec Non-goals: the core itself never decodes) by performing the
// conversion once at open time, wired via WithSourceEncoding.
func DecodeToUTF8(r io.Reader, name string) (io.Reader, error) {
	enc, ok := namedEncodings[name]
	if !ok {
		return nil, fmt.Errorf("docnav: unknown source encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// SupportedEncodings lists the legacy encoding names DecodeToUTF8
// accepts.
func SupportedEncodings() []string {
	names := make([]string, 0, len(namedEncodings))
	for name := range namedEncodings {
		names = append(names, name)
	}
	return names
}
