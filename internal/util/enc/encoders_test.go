package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_FromCode(t *testing.T) {
	for _, e := range All() {
		found, err := FromCode(e.Code())
		require.NoError(t, err)
		require.Equal(t, e, found)
	}

	_, err := FromCode('?')
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidEncoding))
}

func Test_FromName(t *testing.T) {
	tests := map[string]Encoder{
		"base64":    Base64Encoding,
		"BASE64":    Base64Encoding,
		" b64 ":     Base64Encoding,
		"base64url": Base64URLEncoding,
		"b64u":      Base64URLEncoding,
		"Base32":    Base32Encoding,
		"base32hex": Base32HexEncoding,
		"hex32":     Base32HexEncoding,
		"base16":    Base16Encoding,
		"hex":       Base16Encoding,
	}

	for name, expected := range tests {
		e, err := FromName(name)
		require.NoError(t, err, "lookup of %q failed", name)
		require.Equal(t, expected, e)
	}

	_, err := FromName("base91")
	require.True(t, errors.Is(err, ErrInvalidEncoding))

	var kind Kind
	require.True(t, errors.As(err, &kind))
	require.Equal(t, KindInvalidEncoding, kind)
}

func Test_AllIsACopy(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	all[0] = nil
	require.NotNil(t, All()[0])
}

func Test_UniqueCodesAndNames(t *testing.T) {
	codes := make(map[byte]bool)
	names := make(map[string]bool)
	for _, e := range All() {
		require.False(t, codes[e.Code()], "duplicate code %q", e.Code())
		require.False(t, names[e.Name()], "duplicate name %q", e.Name())
		codes[e.Code()] = true
		names[e.Name()] = true
	}
}

func Test_CorruptInputErrorMessage(t *testing.T) {
	_, err := Base16Encoding.Decode("GG")
	require.EqualError(t, err, "Base16: invalid encoded character at offset 0")
	require.Equal(t, "invalid encoded padding count", KindInvalidPaddingCount.Error())
	require.Equal(t, "invalid encoded text", Kind(0).Error())
}
