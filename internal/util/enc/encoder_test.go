package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

// encoderTests covers every possible length of the last group for all of the encoders
var encoderTests = [][]byte{
	{},
	encoderTest[:1],
	encoderTest[:2],
	encoderTest[:3],
	encoderTest[:4],
	encoderTest[:5],
	encoderTest[:6],
	encoderTest[:7],
	encoderTest[:9],
	encoderTest,
}

type vector struct {
	decoded string
	encoded string
}

func checkVectors(t *testing.T, encoder Encoder, vectors []vector) {
	for _, v := range vectors {
		t.Run(v.encoded, func(t *testing.T) {
			require.Equal(t, v.encoded, encoder.Encode([]byte(v.decoded)))

			decoded, err := encoder.Decode(v.encoded)
			require.NoError(t, err)
			require.Equal(t, []byte(v.decoded), decoded)
		})
	}
}

func checkRoundTrip(t *testing.T, encoder Encoder) {
	for _, data := range encoderTests {
		encoded := encoder.Encode(data)
		require.Len(t, encoded, EncodedLen(encoder, len(data)))
		require.Zero(t, len(encoded)%encoder.BlocksizeEncoded())
		require.NotContains(t, encoded, ".")

		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}

	for _, pattern := range encoder.TestPatterns() {
		decoded, err := DecodeToString(encoder, EncodeString(encoder, pattern))
		require.NoError(t, err)
		require.Equal(t, pattern, decoded)
	}
}

// requireKind checks the error is a *CorruptInputError of the given kind
func requireKind(t *testing.T, err error, kind Kind) *CorruptInputError {
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)

	var corrupt *CorruptInputError
	require.True(t, errors.As(err, &corrupt), "expected CorruptInputError, got %T", err)
	require.Equal(t, kind, corrupt.Kind)
	return corrupt
}

func Test_AllEncodersRoundTrip(t *testing.T) {
	for _, encoder := range All() {
		t.Run(encoder.Name(), func(t *testing.T) {
			checkRoundTrip(t, encoder)
		})
	}
}

func Test_AllEncodersEmpty(t *testing.T) {
	for _, encoder := range All() {
		require.Equal(t, "", encoder.Encode(nil))
		require.Equal(t, "", encoder.Encode([]byte{}))

		decoded, err := encoder.Decode("")
		require.NoError(t, err)
		require.Empty(t, decoded)
	}
}

func Test_AllBytes(t *testing.T) {
	data := make([]byte, 256)
	for k := range data {
		data[k] = byte(k)
	}

	for _, encoder := range All() {
		for n := 0; n <= len(data); n++ {
			encoded := encoder.Encode(data[:n])
			decoded, err := encoder.Decode(encoded)
			require.NoError(t, err, "%v failed at length %d", encoder.Name(), n)
			require.Equal(t, data[:n], decoded, "%v failed at length %d", encoder.Name(), n)
		}
	}
}

func Test_EncodedLen(t *testing.T) {
	for n := 0; n < 20; n++ {
		require.Equal(t, 4*((n+2)/3), EncodedLen(Base64Encoding, n))
		require.Equal(t, 4*((n+2)/3), EncodedLen(Base64URLEncoding, n))
		require.Equal(t, 8*((n+4)/5), EncodedLen(Base32Encoding, n))
		require.Equal(t, 8*((n+4)/5), EncodedLen(Base32HexEncoding, n))
		require.Equal(t, 2*n, EncodedLen(Base16Encoding, n))
	}

	require.Equal(t, 6, DecodedLen(Base64Encoding, 8))
	require.Equal(t, 10, DecodedLen(Base32Encoding, 16))
	require.Equal(t, 3, DecodedLen(Base16Encoding, 6))
}

func Test_DecodeNeverReturnsPartialData(t *testing.T) {
	for _, encoder := range All() {
		encoded := encoder.Encode(encoderTest)
		broken := encoded[:len(encoded)-encoder.BlocksizeEncoded()] + "~" + encoded[len(encoded)-encoder.BlocksizeEncoded()+1:]

		decoded, err := encoder.Decode(broken)
		requireKind(t, err, KindInvalidCharacter)
		require.Nil(t, decoded)
	}
}
