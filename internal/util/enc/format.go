package enc

import "github.com/pkg/errors"

// checkFormat validates the shape of an encoded text: the length must be a multiple of the symbol group
// size and the trailing padding must be a run that a short last group could have produced. It returns the
// number of padding characters. Symbols themselves are only checked when unpacking.
func (l *layout) checkFormat(name string, text string) (int, error) {
	if len(text) == 0 || len(text)%l.encoded != 0 {
		return 0, errors.WithStack(&CorruptInputError{
			Encoding: name,
			Offset:   len(text),
			Kind:     KindInvalidLength,
		})
	}

	padding := 0
	for text[len(text)-1-padding] == Padding {
		padding++
		if padding > l.maxPadding() {
			return 0, errors.WithStack(&CorruptInputError{
				Encoding: name,
				Offset:   len(text) - padding,
				Kind:     KindInvalidPaddingCount,
			})
		}
	}

	if padding > 0 && l.bytesFor(l.encoded-padding) < 0 {
		return 0, errors.WithStack(&CorruptInputError{
			Encoding: name,
			Offset:   len(text) - padding,
			Kind:     KindInvalidPaddingCount,
		})
	}

	return padding, nil
}

// encode is shared by all of the encoders in this package.
func encode(l *layout, a *Alphabet, data []byte) string {
	if len(data) == 0 {
		return ""
	}
	dst := make([]byte, l.encodedLen(len(data)))
	l.pack(a, dst, data)
	return string(dst)
}

// decode is shared by all of the encoders in this package. Nothing is returned on error.
func decode(name string, l *layout, a *Alphabet, text string) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}

	padding, err := l.checkFormat(name, text)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, l.decodedLen(len(text)))
	n, offset, ok := l.unpack(a, dst, text[:len(text)-padding])
	if !ok {
		return nil, errors.WithStack(&CorruptInputError{
			Encoding: name,
			Offset:   offset,
			Kind:     KindInvalidCharacter,
		})
	}
	return dst[:n], nil
}
