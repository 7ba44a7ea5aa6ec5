package enc

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"sort"
	"testing"
)

func Test_Base32HexEncoder(t *testing.T) {
	encoder := Base32HexEncoder{}
	encoded := encoder.Encode(encoderTest)
	require.NotContains(t, encoded, ".")
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

func Test_Base32HexVectors(t *testing.T) {
	checkVectors(t, Base32HexEncoding, []vector{
		// RFC 4648, section 10
		{"f", "CO======"},
		{"fo", "CPNG===="},
		{"foo", "CPNMU==="},
		{"foob", "CPNMUOG="},
		{"fooba", "CPNMUOJ1"},
		{"foobar", "CPNMUOJ1E8======"},

		{"\\", "BG======"},
		{"\\n", "BHN0===="},
		{"\\n\\0", "BHN5OC0="},
		{" ", "40======"},
		{"`", "C0======"},
		{"aA", "C50G===="},
		{"\xed\x95\x9c", "TMAPO==="},
		{"한글", "TMAPPQLOG0======"},
	})
}

// Extended hex keeps the sort order of full groups
func Test_Base32HexSortOrder(t *testing.T) {
	inputs := [][]byte{
		[]byte("zzzzz"),
		[]byte("aaaaa"),
		{0, 0, 0, 0, 1},
		{0xff, 0, 0, 0, 0},
		[]byte("AAAAA"),
	}
	sort.Slice(inputs, func(i, j int) bool {
		return bytes.Compare(inputs[i], inputs[j]) < 0
	})

	encoded := make([]string, len(inputs))
	for i, in := range inputs {
		encoded[i] = Base32HexEncoding.Encode(in)
	}
	require.True(t, sort.StringsAreSorted(encoded))
}

func Test_Base32HexInvalidCharacter(t *testing.T) {
	_, err := Base32HexEncoding.Decode("CPNMUOJW")
	corrupt := requireKind(t, err, KindInvalidCharacter)
	require.Equal(t, 7, corrupt.Offset)
	require.Equal(t, "Base32Hex", corrupt.Encoding)
}
