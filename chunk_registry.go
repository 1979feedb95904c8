package bwfmeta

import (
	"errors"
	"io"

	"github.com/go-audio/riff"
)

var (
	// CIDBext is the chunk ID for the broadcast extension chunk.
	CIDBext = [4]byte{'b', 'e', 'x', 't'}
	// CIDIxml is the chunk ID for the iXML chunk. Chunk ids are
	// case-sensitive, so "ixml" or "IXML" don't match.
	CIDIxml = [4]byte{'i', 'X', 'M', 'L'}
)

// chunkHandler is a typed handler for one recognized chunk id.
type chunkHandler interface {
	CanHandle(chunkID [4]byte) bool
	Decode(res *ParseResult, chnk *riff.Chunk) error
}

// chunkRegistry resolves chunks to handlers.
type chunkRegistry struct {
	handlers []chunkHandler
}

func newDefaultChunkRegistry() *chunkRegistry {
	return &chunkRegistry{
		handlers: []chunkHandler{
			&fmtChunkHandler{},
			&bextChunkHandler{},
			&ixmlChunkHandler{},
		},
	}
}

// Decode dispatches a chunk to the first matching handler. It reports
// whether the chunk id was recognized.
func (r *chunkRegistry) Decode(res *ParseResult, chnk *riff.Chunk) (bool, error) {
	if r == nil || res == nil || chnk == nil {
		return false, nil
	}

	for _, handler := range r.handlers {
		if handler.CanHandle(chnk.ID) {
			err := handler.Decode(res, chnk)
			if err != nil {
				return true, err
			}

			return true, nil
		}
	}

	return false, nil
}

// isDecodeFailure reports whether err is a benign per-chunk failure
// (insufficient declared size, truncated payload, bad text) rather than a
// fatal source error.
func isDecodeFailure(err error) bool {
	return errors.Is(err, ErrShortChunk) ||
		errors.Is(err, ErrEmptyChunk) ||
		errors.Is(err, ErrInvalidText) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

type fmtChunkHandler struct{}

func (h *fmtChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.FmtID
}

func (h *fmtChunkHandler) Decode(res *ParseResult, chnk *riff.Chunk) error {
	info, err := decodeFormatChunk(chnk)
	if err != nil {
		res.FormatStatus = StatusMalformed
		return err
	}

	res.Format = info
	res.FormatStatus = StatusFound

	return nil
}

type bextChunkHandler struct{}

func (h *bextChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == CIDBext
}

func (h *bextChunkHandler) Decode(res *ParseResult, chnk *riff.Chunk) error {
	bext, err := decodeBroadcastChunk(chnk)
	if err != nil {
		res.BroadcastStatus = StatusMalformed
		return err
	}

	res.Broadcast = bext
	res.BroadcastStatus = StatusFound

	return nil
}

type ixmlChunkHandler struct{}

func (h *ixmlChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == CIDIxml
}

func (h *ixmlChunkHandler) Decode(res *ParseResult, chnk *riff.Chunk) error {
	meta, err := decodeIXMLChunk(chnk)
	if err != nil {
		res.IXMLStatus = StatusMalformed
		return err
	}

	res.IXML = meta
	res.IXMLStatus = StatusFound

	return nil
}
