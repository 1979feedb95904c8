package bwfmeta

import "errors"

var (
	// ErrShortChunk is returned when a recognized chunk declares fewer bytes
	// than its fixed layout requires.
	ErrShortChunk = errors.New("chunk too small for its fixed layout")
	// ErrEmptyChunk is returned when a recognized chunk declares a zero-byte
	// payload.
	ErrEmptyChunk = errors.New("empty chunk payload")
	// ErrInvalidText is returned when a text field is not valid UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")

	errNilChunk = errors.New("can't decode a nil chunk")
)

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}
