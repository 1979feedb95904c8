package bwfmeta

import (
	"bytes"
	"encoding/binary"

	"github.com/go-audio/riff"
)

type testChunk struct {
	id   string
	data []byte
	// declaredSize overrides len(data) in the chunk header when non-zero.
	declaredSize uint32
}

func buildRIFF(form string, chunks ...testChunk) []byte {
	var body bytes.Buffer

	body.WriteString(form)

	for _, ch := range chunks {
		size := ch.declaredSize
		if size == 0 {
			size = uint32(len(ch.data))
		}

		body.WriteString(ch.id)
		binary.Write(&body, binary.LittleEndian, size)
		body.Write(ch.data)

		if len(ch.data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	var out bytes.Buffer

	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func buildWav(chunks ...testChunk) []byte {
	return buildRIFF("WAVE", chunks...)
}

func fmtPayload(format, channels uint16, sampleRate uint32, bits uint16) []byte {
	var buf bytes.Buffer

	binary.Write(&buf, binary.LittleEndian, format)
	binary.Write(&buf, binary.LittleEndian, channels)
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, sampleRate*uint32(channels)*uint32(bits)/8)
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bits/8))
	binary.Write(&buf, binary.LittleEndian, bits)

	return buf.Bytes()
}

func bextPayload(desc, orig, origRef, date, timeOfDay string, timeRef int64) []byte {
	fixed := func(s string, n int) []byte {
		out := make([]byte, n)
		copy(out, s)

		return out
	}

	var buf bytes.Buffer

	buf.Write(fixed(desc, bextDescriptionLen))
	buf.Write(fixed(orig, bextOriginatorLen))
	buf.Write(fixed(origRef, bextOriginatorReferenceLen))
	buf.Write(fixed(date, bextOriginationDateLen))
	buf.Write(fixed(timeOfDay, bextOriginationTimeLen))
	binary.Write(&buf, binary.LittleEndian, timeRef)

	return buf.Bytes()
}

func newRiffChunk(id string, payload []byte) *riff.Chunk {
	var cid [4]byte
	copy(cid[:], id)

	return &riff.Chunk{
		ID:   cid,
		Size: len(payload),
		R:    bytes.NewReader(payload),
	}
}
