package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AlphabetLookup(t *testing.T) {
	for _, encoder := range All() {
		a := encoder.Alphabet()
		require.Equal(t, 1<<uint(a.Width()), a.Size())
		require.Equal(t, encoder.BlocksizeRaw()*8, a.Width()*encoder.BlocksizeEncoded())

		for v := 0; v < a.Size(); v++ {
			c := a.SymbolOf(byte(v))
			back, err := a.ValueOf(c)
			require.NoError(t, err)
			require.Equal(t, byte(v), back)
		}

		_, err := a.ValueOf(Padding)
		require.True(t, errors.Is(err, ErrInvalidCharacter))
	}
}

func Test_AlphabetWraps(t *testing.T) {
	require.Equal(t, byte('A'), std32Alphabet.SymbolOf(32))
	require.Equal(t, byte('7'), std32Alphabet.SymbolOf(255))
	require.Equal(t, byte('/'), std64Alphabet.SymbolOf(63))
	require.Equal(t, byte('_'), url64Alphabet.SymbolOf(63))
}

func Test_AlphabetValueOfMiss(t *testing.T) {
	for _, c := range []byte{'a', '0', '1', '8', '9', ' ', 0, 0xff} {
		_, err := std32Alphabet.ValueOf(c)
		require.Error(t, err, "%q should not be part of the Base32 alphabet", c)
	}
	v, err := hex32Alphabet.ValueOf('V')
	require.NoError(t, err)
	require.Equal(t, byte(31), v)
}

func Test_NewAlphabetRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
	}{
		{"wrong size", "ABC"},
		{"duplicate", "0123456789ABCDEA"},
		{"padding", "0123456789ABCDE="},
		{"not printable", "0123456789ABCDE\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a, err := NewAlphabet(test.symbols)
			require.Error(t, err)
			require.Nil(t, a)
		})
	}
}

func Test_MustAlphabetPanics(t *testing.T) {
	require.Panics(t, func() {
		mustAlphabet("AA")
	})
}

func Test_NewAlphabetCustomTable(t *testing.T) {
	a, err := NewAlphabet("fedcba9876543210")
	require.NoError(t, err)
	require.Equal(t, 16, a.Size())
	require.Equal(t, 4, a.Width())
	require.Equal(t, byte('f'), a.SymbolOf(0))

	v, err := a.ValueOf('0')
	require.NoError(t, err)
	require.Equal(t, byte(15), v)
}
