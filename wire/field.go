package wire

import (
	"strconv"
	"strings"
)

// Field is one ASCII token destined for the wire, not yet NUL-terminated.
type Field []byte

// Int encodes a signed integer field using the shortest decimal form.
func Int(v int64) Field {
	return Field(strconv.FormatInt(v, 10))
}

// Uint encodes an unsigned integer field.
func Uint(v uint64) Field {
	return Field(strconv.FormatUint(v, 10))
}

// Float encodes a floating point field using the shortest round-tripping
// decimal form.
func Float(v float64) Field {
	return Field(strconv.FormatFloat(v, 'g', -1, 64))
}

// Char encodes a single character as its UTF-8 bytes.
func Char(r rune) Field {
	return Field(string(r))
}

// Bool encodes a boolean as "0" or "1", the gateway's boolean convention.
func Bool(v bool) Field {
	if v {
		return Field("1")
	}
	return Field("0")
}

// String encodes a raw string field verbatim. Callers are responsible for
// never embedding a NUL byte; the protocol has no escaping mechanism for one.
func String(v string) Field {
	return Field(v)
}

// Enum encodes a fixed symbolic token (an exchange code, order action, tif
// value, and so on) verbatim.
func Enum(v string) Field {
	return Field(v)
}

// Omit produces the empty token, the wire's representation of an absent
// optional field.
func Omit() Field {
	return Field("")
}

// JoinedInts renders a slice of ids as a single comma-joined token, the one
// documented exception to one-value-per-field (used by contract id lists and
// similar batch requests).
func JoinedInts(vs []int64) Field {
	if len(vs) == 0 {
		return Field("")
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return Field(strings.Join(parts, ","))
}
