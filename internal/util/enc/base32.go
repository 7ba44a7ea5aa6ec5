package enc

import "fmt"

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
// https://datatracker.ietf.org/doc/html/rfc4648#section-6
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return encode(layout32, std32Alphabet, data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	return decode(b.Name(), layout32, std32Alphabet, data)
}

func (b *Base32Encoder) Alphabet() *Alphabet {
	return std32Alphabet
}

func (b *Base32Encoder) BlocksizeRaw() int {
	return 5
}

func (b *Base32Encoder) BlocksizeEncoded() int {
	return 8
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		"aA" + std32Symbols,
	}
}
