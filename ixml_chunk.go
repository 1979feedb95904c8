package bwfmeta

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/go-audio/riff"
)

// IXMLMetadata stores the payload of an iXML chunk. The payload is expected
// to be a UTF-8 XML document but is kept verbatim when it isn't one.
type IXMLMetadata struct {
	// Raw is the chunk payload text exactly as stored in the file.
	Raw string
	// Document is the indented re-serialization of Raw when it parses as
	// XML, otherwise it equals Raw.
	Document string
	// WellFormed reports whether Raw parsed as an XML document.
	WellFormed bool
}

func (m *IXMLMetadata) Clone() *IXMLMetadata {
	if m == nil {
		return nil
	}

	out := *m

	return &out
}

func decodeIXMLChunk(chnk *riff.Chunk) (*IXMLMetadata, error) {
	if chnk == nil {
		return nil, errNilChunk
	}

	if chnk.Size == 0 {
		return nil, fmt.Errorf("iXML chunk: %w", ErrEmptyChunk)
	}

	buf := make([]byte, chnk.Size)

	_, err := io.ReadFull(chnk, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read iXML chunk: %w", err)
	}

	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("iXML payload: %w", ErrInvalidText)
	}

	meta := &IXMLMetadata{
		Raw:      string(buf),
		Document: string(buf),
	}

	// Malformed XML is not an error: the raw text is kept unchanged.
	doc := etree.NewDocument()
	if err := doc.ReadFromString(meta.Raw); err != nil || doc.Root() == nil {
		return meta, nil
	}

	doc.Indent(2)

	pretty, err := doc.WriteToString()
	if err != nil {
		return meta, nil
	}

	meta.Document = pretty
	meta.WellFormed = true

	return meta, nil
}
