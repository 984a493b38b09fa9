package dart

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

// financialMarkers are terms a Korean financial disclosure is expected to
// contain. A candidate decoding is accepted only when at least one marker
// survives the transcode, which filters out mojibake from a wrong charset.
var financialMarkers = []string{"매출액", "영업이익", "손익계산서"}

// candidateEncodings are tried in order. UTF-8 first since modern filings
// use it, then the legacy Korean encodings DART still serves.
var candidateEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", unicode.UTF8},
	{"euc-kr", korean.EUCKR},
	{"cp949", korean.EUCKR}, // EUC-KR decoder covers the CP949 superset
	{"iso-8859-1", charmap.ISO8859_1},
}

// DecodeKorean converts a raw document body to a UTF-8 string, sniffing the
// source encoding by trial decode. When no candidate yields recognizable
// financial text, the body is decoded as UTF-8 with invalid sequences
// replaced, so callers always get something parseable.
func DecodeKorean(body []byte) string {
	for _, candidate := range candidateEncodings {
		decoded, err := candidate.enc.NewDecoder().Bytes(body)
		if err != nil {
			continue
		}
		if !utf8.Valid(decoded) {
			continue
		}
		text := string(decoded)
		for _, marker := range financialMarkers {
			if strings.Contains(text, marker) {
				return text
			}
		}
	}

	return string(bytes.ToValidUTF8(body, []byte("�")))
}
