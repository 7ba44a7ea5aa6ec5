package enc

import "fmt"

// Base64URLEncoder encodes 3 bytes to 4 characters and uses the URL and filename safe alphabet, which
// replaces '+' and '/' with '-' and '_'.
// https://datatracker.ietf.org/doc/html/rfc4648#section-5
type Base64URLEncoder struct {
}

func (b *Base64URLEncoder) Name() string {
	return "Base64URL"
}

func (b *Base64URLEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64URLEncoder) Code() byte {
	return 'U'
}

func (b *Base64URLEncoder) Encode(data []byte) string {
	return encode(layout64, url64Alphabet, data)
}

func (b *Base64URLEncoder) Decode(data string) ([]byte, error) {
	return decode(b.Name(), layout64, url64Alphabet, data)
}

func (b *Base64URLEncoder) Alphabet() *Alphabet {
	return url64Alphabet
}

func (b *Base64URLEncoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64URLEncoder) BlocksizeEncoded() int {
	return 4
}

func (b *Base64URLEncoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ_0129-",
		"\xff\xff\xff\xfb\xef\xbe",
	}
}
