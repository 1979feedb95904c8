package bwfmeta

import "fmt"

// ChunkStatus describes the outcome for one recognized chunk type.
type ChunkStatus int

const (
	// StatusAbsent means no chunk with the matching id was seen.
	StatusAbsent ChunkStatus = iota
	// StatusFound means the chunk was seen and decoded successfully.
	StatusFound
	// StatusMalformed means the chunk id was seen but its payload could not
	// be decoded.
	StatusMalformed
)

func (s ChunkStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusMalformed:
		return "malformed"
	default:
		return "absent"
	}
}

// ChunkInfo records one chunk header observed during the walk. Payloads of
// unrecognized chunks are skipped, never stored.
type ChunkInfo struct {
	ID [4]byte
	// Size is the declared payload size, excluding the padding byte.
	Size uint32
	// Offset is the stream offset of the payload.
	Offset int64
}

// ChunkDecodeError reports a recognized chunk whose payload could not be
// decoded. It is recorded on the ParseResult and does not stop the walk.
type ChunkDecodeError struct {
	ID  [4]byte
	Err error
}

func (e *ChunkDecodeError) Error() string {
	return fmt.Sprintf("failed to decode chunk %q: %v", e.ID[:], e.Err)
}

func (e *ChunkDecodeError) Unwrap() error {
	return e.Err
}

// ParseResult aggregates whatever metadata chunks one parse found. Each of
// the three chunk types is reported independently.
type ParseResult struct {
	Format       *FormatInfo
	FormatStatus ChunkStatus

	Broadcast       *BroadcastExtension
	BroadcastStatus ChunkStatus

	IXML       *IXMLMetadata
	IXMLStatus ChunkStatus

	// Chunks lists every chunk header seen during the walk, in file order.
	Chunks []ChunkInfo
	// DecodeErrors lists the recognized chunks that failed to decode.
	DecodeErrors []*ChunkDecodeError
}

func (r *ParseResult) Clone() *ParseResult {
	if r == nil {
		return nil
	}

	out := &ParseResult{
		Format:          r.Format.Clone(),
		FormatStatus:    r.FormatStatus,
		Broadcast:       r.Broadcast.Clone(),
		BroadcastStatus: r.BroadcastStatus,
		IXML:            r.IXML.Clone(),
		IXMLStatus:      r.IXMLStatus,
	}

	out.Chunks = append([]ChunkInfo(nil), r.Chunks...)

	if len(r.DecodeErrors) > 0 {
		out.DecodeErrors = make([]*ChunkDecodeError, len(r.DecodeErrors))
		for i, decErr := range r.DecodeErrors {
			cp := *decErr
			out.DecodeErrors[i] = &cp
		}
	}

	return out
}
