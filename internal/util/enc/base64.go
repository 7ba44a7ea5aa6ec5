package enc

import "fmt"

// Base64Encoder encodes 3 bytes to 4 characters using the standard alphabet.
// https://datatracker.ietf.org/doc/html/rfc4648#section-4
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return encode(layout64, std64Alphabet, data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	return decode(b.Name(), layout64, std64Alphabet, data)
}

func (b *Base64Encoder) Alphabet() *Alphabet {
	return std64Alphabet
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return 4
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129-",
		"\xff\xff\xff\xfb\xef\xbe",
	}
}
