package bwfmeta

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-audio/riff"
)

const (
	bextDescriptionLen         = 256
	bextOriginatorLen          = 32
	bextOriginatorReferenceLen = 32
	bextOriginationDateLen     = 10
	bextOriginationTimeLen     = 8
	bextTimeReferenceLen       = 8

	bextFixedLen = bextDescriptionLen + bextOriginatorLen +
		bextOriginatorReferenceLen + bextOriginationDateLen +
		bextOriginationTimeLen + bextTimeReferenceLen
)

// BroadcastExtension stores the fixed fields of the Broadcast Wave Format
// bext chunk. Newer BWF revisions append version, UMID and coding-history
// bytes after the time reference; those are skipped, not decoded.
type BroadcastExtension struct {
	Description         string
	Originator          string
	OriginatorReference string
	OriginationDate     string
	OriginationTime     string
	// TimeReference counts samples since midnight.
	TimeReference int64
}

func (b *BroadcastExtension) Clone() *BroadcastExtension {
	if b == nil {
		return nil
	}

	out := *b

	return &out
}

func decodeBroadcastChunk(chnk *riff.Chunk) (*BroadcastExtension, error) {
	if chnk == nil {
		return nil, errNilChunk
	}

	if chnk.Size < bextFixedLen {
		return nil, fmt.Errorf("bext chunk of %d bytes: %w", chnk.Size, ErrShortChunk)
	}

	buf := make([]byte, bextFixedLen)

	_, err := io.ReadFull(chnk, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read bext chunk: %w", err)
	}

	bext := &BroadcastExtension{}
	offset := 0

	take := func(n int) []byte {
		out := buf[offset : offset+n]
		offset += n

		return out
	}

	readFixedString := func(n int) (string, error) {
		s := nullTermStr(take(n))
		if !utf8.ValidString(s) {
			return "", fmt.Errorf("bext field at offset %d: %w", offset-n, ErrInvalidText)
		}

		return strings.TrimRight(s, " \t\r\n"), nil
	}

	if bext.Description, err = readFixedString(bextDescriptionLen); err != nil {
		return nil, err
	}

	if bext.Originator, err = readFixedString(bextOriginatorLen); err != nil {
		return nil, err
	}

	if bext.OriginatorReference, err = readFixedString(bextOriginatorReferenceLen); err != nil {
		return nil, err
	}

	if bext.OriginationDate, err = readFixedString(bextOriginationDateLen); err != nil {
		return nil, err
	}

	if bext.OriginationTime, err = readFixedString(bextOriginationTimeLen); err != nil {
		return nil, err
	}

	bext.TimeReference = int64(binary.LittleEndian.Uint64(take(bextTimeReferenceLen)))

	// Skip the coding-history/UMID surplus of newer revisions.
	chnk.Drain()

	return bext, nil
}
