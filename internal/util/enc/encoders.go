package enc

import (
	"github.com/pkg/errors"
	"strings"
)

var (
	Base64Encoding    Encoder = &Base64Encoder{}
	Base64URLEncoding Encoder = &Base64URLEncoder{}
	Base32Encoding    Encoder = &Base32Encoder{}
	Base32HexEncoding Encoder = &Base32HexEncoder{}
	Base16Encoding    Encoder = &Base16Encoder{}
)

var encoders = []Encoder{
	Base64Encoding,
	Base64URLEncoding,
	Base32Encoding,
	Base32HexEncoding,
	Base16Encoding,
}

// aliases are accepted by FromName in addition to the (lower-cased) encoder names
var aliases = map[string]Encoder{
	"b64":        Base64Encoding,
	"std64":      Base64Encoding,
	"base64u":    Base64URLEncoding,
	"b64u":       Base64URLEncoding,
	"b64url":     Base64URLEncoding,
	"base64-url": Base64URLEncoding,
	"url":        Base64URLEncoding,
	"b32":        Base32Encoding,
	"b32hex":     Base32HexEncoding,
	"base32-hex": Base32HexEncoding,
	"hex32":      Base32HexEncoding,
	"b16":        Base16Encoding,
	"hex":        Base16Encoding,
}

// All returns all known encoders, in a stable order.
func All() []Encoder {
	return append([]Encoder(nil), encoders...)
}

// FromCode finds the encoder with the given one-letter code.
func FromCode(code byte) (Encoder, error) {
	for _, e := range encoders {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidEncoding, "no encoder with code %q", code)
}

// FromName finds an encoder by its name or one of the well-known aliases. The lookup is not
// case-sensitive.
func FromName(name string) (Encoder, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range encoders {
		if strings.ToLower(e.Name()) == key {
			return e, nil
		}
	}
	if e, ok := aliases[key]; ok {
		return e, nil
	}
	return nil, errors.Wrapf(ErrInvalidEncoding, "unknown encoding %q", name)
}
