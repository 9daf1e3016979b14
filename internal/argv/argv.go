package argv

import (
	"errors"
	"unicode/utf16"
)

// ErrNoArguments is returned when the OS fails to provide a token array.
// Token 0 (the executable path) is guaranteed by every supported platform,
// so an empty result always indicates an OS-level failure.
var ErrNoArguments = errors.New("argv: operating system provided no command line arguments")

// Marshal retrieves the process command line, tokenizes it with the
// platform's native rules, and converts every token to UTF-8.
//
// Tokens containing embedded NUL bytes are unsupported input: the native
// representation is NUL-terminated and such tokens arrive truncated.
func Marshal() ([]string, error) {
	return marshal()
}

// encodeWide converts a UTF-8 string to its UTF-16 representation.
func encodeWide(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// decodeWide converts a UTF-16 sequence back to a UTF-8 string.
func decodeWide(ws []uint16) string {
	return string(utf16.Decode(ws))
}
