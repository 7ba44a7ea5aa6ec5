package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Base64URLEncoder(t *testing.T) {
	encoder := Base64URLEncoder{}
	encoded := encoder.Encode(encoderTest)
	require.NotContains(t, encoded, "+")
	require.NotContains(t, encoded, "/")
	require.NotContains(t, encoded, ".")
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

func Test_Base64URLVectors(t *testing.T) {
	checkVectors(t, Base64URLEncoding, []vector{
		{"f", "Zg=="},
		{"foobar", "Zm9vYmFy"},
		{"\x5c", "XA=="},
		{"\x5c\x6e", "XG4="},
		{"\xff\xff\xff", "____"},
		{"\xfb\xef\xbe", "----"},
		{"カタカナ", "44Kr44K_44Kr44OK"},
	})
}

// The two alphabets only differ for the values 62 and 63
func Test_Base64URLDiffersFromStandard(t *testing.T) {
	data := make([]byte, 0, 3*256)
	for i := 0; i < 256; i++ {
		data = append(data, byte(i), byte(255-i), byte(i*7))
	}

	std := Base64Encoding.Encode(data)
	url := Base64URLEncoding.Encode(data)
	require.Equal(t, len(std), len(url))

	for i := range std {
		switch std[i] {
		case '+':
			require.Equal(t, byte('-'), url[i])
		case '/':
			require.Equal(t, byte('_'), url[i])
		default:
			require.Equal(t, std[i], url[i])
		}
	}
}

func Test_Base64URLMixedAlphabets(t *testing.T) {
	_, err := Base64URLEncoding.Decode("_/_/")
	corrupt := requireKind(t, err, KindInvalidCharacter)
	require.Equal(t, 1, corrupt.Offset)

	_, err = Base64Encoding.Decode("____")
	requireKind(t, err, KindInvalidCharacter)
}
