package wc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var ErrEncoding = errors.New("stream did not contain valid utf-8")

func ReadFile(file string) (Contents, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", file, ErrEncoding)
	}
	return Contents(b), nil
}

// ReadContents reads r until EOF. The content must be valid UTF-8.
func ReadContents(r io.Reader) (Contents, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrEncoding
	}
	return Contents(b), nil
}
