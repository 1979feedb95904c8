package bwfmeta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
)

const chunkHeaderSize = 8

var (
	// ErrInvalidContainer is returned when the input doesn't start with the
	// RIFF container tag.
	ErrInvalidContainer = errors.New("missing RIFF container tag")
	// ErrInvalidFormat is returned when the RIFF form type is not WAVE.
	ErrInvalidFormat = errors.New("RIFF form type is not WAVE")
	// ErrInvalidChunkSize is returned when a chunk header declares a size
	// that doesn't fit a signed 32-bit integer. Every later offset depends
	// on it, so the walk can't continue.
	ErrInvalidChunkSize = errors.New("invalid chunk size")
)

// Walker validates the RIFF/WAVE envelope and produces the file's chunks
// one at a time, in file order. The walk is forward-only and finite; to
// restart it the source must be reopened at offset 0.
type Walker struct {
	r      io.Reader
	parser *riff.Parser

	cur       *riff.Chunk
	curOffset int64
	// offset is the stream position of the next chunk header.
	offset      int64
	headersRead bool
	err         error
}

// NewWalker returns a walker for the passed WAV reader. The reader is
// borrowed for the duration of the walk and is never rewound.
func NewWalker(r io.Reader) *Walker {
	return &Walker{r: r, parser: riff.New(r)}
}

// Next returns the next chunk in the file. The chunk's reader is limited to
// its declared payload; any payload left unread is drained on the following
// call, together with the word-alignment padding byte of odd-sized chunks.
// Next returns io.EOF once the source is exhausted.
func (w *Walker) Next() (*riff.Chunk, error) {
	if w.err != nil {
		return nil, w.err
	}

	if w.err = w.readHeaders(); w.err != nil {
		return nil, w.err
	}

	if err := w.advancePastCurrent(); err != nil {
		w.err = err
		return nil, w.err
	}

	id, size, err := w.parser.IDnSize()
	if err != nil {
		// A trailing stub shorter than a full chunk header is a benign end
		// of file, not an error.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			w.err = io.EOF
			return nil, w.err
		}

		w.err = fmt.Errorf("failed to read chunk header: %w", err)

		return nil, w.err
	}

	// The original reader treats the size field as signed, so anything that
	// doesn't fit int32 is rejected rather than silently wrapped.
	if size > math.MaxInt32 {
		w.err = fmt.Errorf("chunk %q declares %d bytes: %w", id[:], size, ErrInvalidChunkSize)
		return nil, w.err
	}

	w.cur = &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(w.r, int64(size)),
	}
	w.curOffset = w.offset + chunkHeaderSize

	return w.cur, nil
}

// Offset returns the stream offset of the payload of the chunk most
// recently returned by Next.
func (w *Walker) Offset() int64 {
	if w == nil {
		return 0
	}

	return w.curOffset
}

// readHeaders validates the 12-byte RIFF/WAVE envelope. It is safe to call
// multiple times.
func (w *Walker) readHeaders() error {
	if w.headersRead {
		return nil
	}

	id, size, err := w.parser.IDnSize()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("input shorter than a RIFF header: %w", ErrInvalidContainer)
		}

		return fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if id != riff.RiffID {
		return fmt.Errorf("%q: %w", id[:], ErrInvalidContainer)
	}

	w.parser.ID = id
	// The declared overall size is informational only and is not checked
	// against the actual stream length.
	w.parser.Size = size

	err = binary.Read(w.r, binary.BigEndian, &w.parser.Format)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("input shorter than a WAVE header: %w", ErrInvalidFormat)
		}

		return fmt.Errorf("failed to read form type: %w", err)
	}

	if w.parser.Format != riff.WavFormatID {
		return fmt.Errorf("%q: %w", w.parser.Format[:], ErrInvalidFormat)
	}

	w.headersRead = true
	w.offset = 12

	return nil
}

// advancePastCurrent drains whatever the dispatcher left of the current
// chunk's payload and skips the padding byte of odd-sized chunks, leaving
// the reader at the next chunk header.
func (w *Walker) advancePastCurrent() error {
	if w.cur == nil {
		return nil
	}

	w.cur.Drain()

	w.offset = w.curOffset + int64(w.cur.Size)

	// All RIFF chunks are word aligned: an odd payload is followed by one
	// zero byte that is not included in the declared size. This applies
	// whether or not the payload was recognized.
	if w.cur.Size%2 == 1 {
		_, err := io.CopyN(io.Discard, w.r, 1)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to skip padding byte: %w", err)
		}

		w.offset++
	}

	w.cur = nil

	return nil
}
