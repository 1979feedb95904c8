package bwfmeta

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Parse walks the WAV chunk sequence of r in a single forward pass and
// returns the metadata it found. Fatal conditions (unreadable source, bad
// RIFF/WAVE envelope, oversized chunk header) abort the parse with no
// result. Recognized chunks that fail to decode are recorded on the result
// and the walk continues.
//
// The reader is borrowed for the duration of the call and must not be
// shared with a concurrent parse.
func Parse(r io.Reader) (*ParseResult, error) {
	walker := NewWalker(r)
	registry := newDefaultChunkRegistry()
	res := &ParseResult{}

	for {
		chnk, err := walker.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		res.Chunks = append(res.Chunks, ChunkInfo{
			ID:     chnk.ID,
			Size:   uint32(chnk.Size),
			Offset: walker.Offset(),
		})

		_, err = registry.Decode(res, chnk)
		if err != nil {
			if !isDecodeFailure(err) {
				return nil, err
			}

			res.DecodeErrors = append(res.DecodeErrors, &ChunkDecodeError{ID: chnk.ID, Err: err})
		}
	}

	return res, nil
}

// ParseFile opens path, parses it and always closes the file, including
// when validation fails immediately after opening.
func ParseFile(path string) (*ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Parse(file)
}
