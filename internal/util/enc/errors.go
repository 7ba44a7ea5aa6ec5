package enc

import "fmt"

// Kind classifies a decoding failure. The numeric values are stable and are used as process exit codes by
// the command line tool.
type Kind int

const (
	KindInvalidLength       Kind = 11
	KindInvalidCharacter    Kind = 12
	KindInvalidEncoding     Kind = 13
	KindInvalidPaddingCount Kind = 14
)

func (k Kind) Error() string {
	switch k {
	case KindInvalidLength:
		return "invalid encoded text length"
	case KindInvalidCharacter:
		return "invalid encoded character"
	case KindInvalidEncoding:
		return "invalid encoding"
	case KindInvalidPaddingCount:
		return "invalid encoded padding count"
	default:
		return "invalid encoded text"
	}
}

// Declare the error kinds as comparable errors, so they can be used with errors.Is
var (
	ErrInvalidLength       error = KindInvalidLength
	ErrInvalidCharacter    error = KindInvalidCharacter
	ErrInvalidEncoding     error = KindInvalidEncoding
	ErrInvalidPaddingCount error = KindInvalidPaddingCount
)

// CorruptInputError is returned by Decode. Offset is the position in the input text at which the problem
// was detected.
type CorruptInputError struct {
	Encoding string
	Offset   int
	Kind     Kind
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("%s: %v at offset %d", e.Encoding, e.Kind, e.Offset)
}

func (e *CorruptInputError) Unwrap() error {
	return e.Kind
}
