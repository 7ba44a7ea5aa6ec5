package enc

import "fmt"

// Base16Encoder encodes every byte into two (upper case) hexadecimal characters. There is never any
// padding.
// https://datatracker.ietf.org/doc/html/rfc4648#section-8
type Base16Encoder struct {
}

func (b *Base16Encoder) Name() string {
	return "Base16"
}

func (b *Base16Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base16Encoder) Code() byte {
	return 'X'
}

func (b *Base16Encoder) Encode(data []byte) string {
	return encode(layout16, hex16Alphabet, data)
}

func (b *Base16Encoder) Decode(data string) ([]byte, error) {
	return decode(b.Name(), layout16, hex16Alphabet, data)
}

func (b *Base16Encoder) Alphabet() *Alphabet {
	return hex16Alphabet
}

func (b *Base16Encoder) BlocksizeRaw() int {
	return 1
}

func (b *Base16Encoder) BlocksizeEncoded() int {
	return 2
}

func (b *Base16Encoder) TestPatterns() []string {
	return []string{
		hex16Symbols,
		"\x00\x01\x7f\x80\xfe\xff",
	}
}
