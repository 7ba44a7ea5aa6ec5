// Package enc implements the RFC 4648 binary-to-text encodings: Base64 (standard and URL-safe), Base32
// (standard and extended hex) and Base16.
//
// https://datatracker.ietf.org/doc/html/rfc4648
package enc

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder. Encoding never fails.
	Encode([]byte) string

	// Decode is the reverse process of encoding. It returns either all of the data or an error, never a
	// partially decoded result.
	Decode(string) ([]byte, error)

	// Alphabet returns the symbol table used by this encoder
	Alphabet() *Alphabet

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of bytes) output by this encoder for every input block
	BlocksizeEncoded() int

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// EncodedLen returns the length of the text produced by encoding n bytes with e.
func EncodedLen(e Encoder, n int) int {
	raw := e.BlocksizeRaw()
	return (n + raw - 1) / raw * e.BlocksizeEncoded()
}

// DecodedLen returns the maximum number of bytes a (padded) text of length n will decode to.
func DecodedLen(e Encoder, n int) int {
	return n / e.BlocksizeEncoded() * e.BlocksizeRaw()
}

// EncodeString encodes the bytes of the string s.
func EncodeString(e Encoder, s string) string {
	return e.Encode([]byte(s))
}

// DecodeToString decodes s and returns the result as a string.
func DecodeToString(e Encoder, s string) (string, error) {
	data, err := e.Decode(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
