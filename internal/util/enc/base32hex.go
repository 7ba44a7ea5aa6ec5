package enc

import "fmt"

// Base32HexEncoder encodes 5 bytes to 8 characters using the "extended hex" alphabet. Encoded data keeps
// the bitwise sort order of the input.
// https://datatracker.ietf.org/doc/html/rfc4648#section-7
type Base32HexEncoder struct {
}

func (b *Base32HexEncoder) Name() string {
	return "Base32Hex"
}

func (b *Base32HexEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32HexEncoder) Code() byte {
	return 'H'
}

func (b *Base32HexEncoder) Encode(data []byte) string {
	return encode(layout32, hex32Alphabet, data)
}

func (b *Base32HexEncoder) Decode(data string) ([]byte, error) {
	return decode(b.Name(), layout32, hex32Alphabet, data)
}

func (b *Base32HexEncoder) Alphabet() *Alphabet {
	return hex32Alphabet
}

func (b *Base32HexEncoder) BlocksizeRaw() int {
	return 5
}

func (b *Base32HexEncoder) BlocksizeEncoded() int {
	return 8
}

func (b *Base32HexEncoder) TestPatterns() []string {
	return []string{
		"aA" + hex32Symbols,
	}
}
