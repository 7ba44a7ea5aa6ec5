package enc

import (
	"github.com/pkg/errors"
	"math/bits"
)

// Padding is appended to the last symbol group when the last byte group is not complete.
const Padding = '='

const invalidSymbol = 0xFF

const (
	std64Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	url64Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	std32Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	hex32Symbols = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	hex16Symbols = "0123456789ABCDEF"
)

var (
	std64Alphabet = mustAlphabet(std64Symbols)
	url64Alphabet = mustAlphabet(url64Symbols)
	std32Alphabet = mustAlphabet(std32Symbols)
	hex32Alphabet = mustAlphabet(hex32Symbols)
	hex16Alphabet = mustAlphabet(hex16Symbols)
)

// Alphabet maps symbol values to printable characters and back. It is immutable once created.
type Alphabet struct {
	symbols string
	inverse [256]byte
}

// NewAlphabet validates symbols and builds the lookup tables for them.
func NewAlphabet(symbols string) (*Alphabet, error) {
	switch len(symbols) {
	case 16, 32, 64:
	default:
		return nil, errors.Errorf("alphabet must have 16, 32 or 64 symbols, got %d", len(symbols))
	}

	a := &Alphabet{
		symbols: symbols,
	}
	for i := range a.inverse {
		a.inverse[i] = invalidSymbol
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c == Padding {
			return nil, errors.Errorf("padding character %q cannot be a symbol", c)
		}
		if c < '!' || c > '~' {
			return nil, errors.Errorf("symbol at position %d (%#x) is not printable", i, c)
		}
		if a.inverse[c] != invalidSymbol {
			return nil, errors.Errorf("symbol %q used for both %d and %d", c, a.inverse[c], i)
		}
		a.inverse[c] = byte(i)
	}
	return a, nil
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size is the number of symbols in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Width is the number of bits a single symbol carries.
func (a *Alphabet) Width() int {
	return bits.TrailingZeros(uint(len(a.symbols)))
}

func (a *Alphabet) String() string {
	return a.symbols
}

// SymbolOf returns the character for the given value. Values larger than the alphabet "wrap over".
func (a *Alphabet) SymbolOf(v byte) byte {
	return a.symbols[int(v)&(len(a.symbols)-1)]
}

// ValueOf returns the value of the character c, or ErrInvalidCharacter if c is not part of the alphabet.
// The padding character is never part of an alphabet.
func (a *Alphabet) ValueOf(c byte) (byte, error) {
	v := a.inverse[c]
	if v == invalidSymbol {
		return 0, errors.WithStack(ErrInvalidCharacter)
	}
	return v, nil
}
