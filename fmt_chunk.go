package bwfmeta

import (
	"fmt"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const (
	// fmtChunkMinSize is the fixed PCM layout; extension fields (e.g.
	// WAVE_FORMAT_EXTENSIBLE) may follow and are skipped.
	fmtChunkMinSize = 16

	wavFormatPCM = 1
)

// FormatInfo stores the audio encoding parameters from the fmt chunk. Byte
// rate and block align are present in the chunk but not retained.
type FormatInfo struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16
}

func (f *FormatInfo) Clone() *FormatInfo {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

// FormatName returns "PCM" for format tag 1, otherwise the compressed
// format with its numeric tag.
func (f *FormatInfo) FormatName() string {
	if f == nil {
		return ""
	}

	if f.AudioFormat == wavFormatPCM {
		return "PCM"
	}

	return fmt.Sprintf("Compressed (Format ID: %d)", f.AudioFormat)
}

// Format returns the channel layout and sample rate as an audio.Format.
func (f *FormatInfo) Format() *audio.Format {
	if f == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(f.NumChannels),
		SampleRate:  int(f.SampleRate),
	}
}

func decodeFormatChunk(chnk *riff.Chunk) (*FormatInfo, error) {
	if chnk == nil {
		return nil, errNilChunk
	}

	if chnk.Size < fmtChunkMinSize {
		return nil, fmt.Errorf("fmt chunk of %d bytes: %w", chnk.Size, ErrShortChunk)
	}

	info := &FormatInfo{}

	err := chnk.ReadLE(&info.AudioFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to read format tag: %w", err)
	}

	err = chnk.ReadLE(&info.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to read channels: %w", err)
	}

	err = chnk.ReadLE(&info.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample rate: %w", err)
	}

	var (
		byteRate   uint32
		blockAlign uint16
	)

	err = chnk.ReadLE(&byteRate)
	if err != nil {
		return nil, fmt.Errorf("failed to read byte rate: %w", err)
	}

	err = chnk.ReadLE(&blockAlign)
	if err != nil {
		return nil, fmt.Errorf("failed to read block align: %w", err)
	}

	err = chnk.ReadLE(&info.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("failed to read bit depth: %w", err)
	}

	// Extension bytes beyond the fixed layout are skipped so the stream
	// lands exactly at the next chunk header.
	chnk.Drain()

	return info, nil
}
