package files

import (
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Text files are UTF-16 little-endian without a byte order mark, the format
// the client reads. A BOM on input is honoured and stripped.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ReadText reads a UTF-16 text file.
func ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Op: "read", Path: path, Err: err}
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(utf16le.NewDecoder()), raw)
	if err != nil {
		return "", &Error{Op: "decode", Path: path, Err: err}
	}

	return string(decoded), nil
}

// WriteText writes text as UTF-16LE, replacing the file.
func WriteText(path, text string) error {
	encoded, err := utf16le.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return &Error{Op: "encode", Path: path, Err: err}
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}

	return nil
}
