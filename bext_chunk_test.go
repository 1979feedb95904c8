package bwfmeta

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeBroadcastChunk(t *testing.T) {
	payload := bextPayload(
		"Morning session take 3  ",
		"SoundDevices",
		"USSDVGR1112089007124001",
		"2026-08-23",
		"09:45:01",
		3456000,
	)

	bext, err := decodeBroadcastChunk(newRiffChunk("bext", payload))
	if err != nil {
		t.Fatalf("decode bext: %v", err)
	}

	// Trailing padding spaces and nulls are trimmed.
	if bext.Description != "Morning session take 3" {
		t.Errorf("description mismatch: %q", bext.Description)
	}

	if bext.Originator != "SoundDevices" {
		t.Errorf("originator mismatch: %q", bext.Originator)
	}

	if bext.OriginatorReference != "USSDVGR1112089007124001" {
		t.Errorf("originator reference mismatch: %q", bext.OriginatorReference)
	}

	if bext.OriginationDate != "2026-08-23" {
		t.Errorf("origination date mismatch: %q", bext.OriginationDate)
	}

	if bext.OriginationTime != "09:45:01" {
		t.Errorf("origination time mismatch: %q", bext.OriginationTime)
	}

	if bext.TimeReference != 3456000 {
		t.Errorf("time reference mismatch: %d", bext.TimeReference)
	}
}

func TestDecodeBroadcastChunkNegativeTimeReference(t *testing.T) {
	payload := bextPayload("d", "o", "r", "2026-08-23", "00:00:00", -1)

	bext, err := decodeBroadcastChunk(newRiffChunk("bext", payload))
	if err != nil {
		t.Fatalf("decode bext: %v", err)
	}

	if bext.TimeReference != -1 {
		t.Errorf("time reference mismatch: %d", bext.TimeReference)
	}
}

func TestDecodeBroadcastChunkSurplusSkipped(t *testing.T) {
	payload := bextPayload("d", "o", "r", "2026-08-23", "00:00:00", 0)
	// Version, UMID and coding history from a BWF v1 chunk.
	payload = append(payload, make([]byte, 256)...)

	r := bytes.NewReader(payload)
	chnk := newRiffChunk("bext", nil)
	chnk.Size = len(payload)
	chnk.R = r

	if _, err := decodeBroadcastChunk(chnk); err != nil {
		t.Fatalf("decode bext: %v", err)
	}

	if r.Len() != 0 {
		t.Errorf("surplus not drained, %d bytes left", r.Len())
	}
}

func TestDecodeBroadcastChunkTooSmall(t *testing.T) {
	payload := make([]byte, 100)

	_, err := decodeBroadcastChunk(newRiffChunk("bext", payload))
	if !errors.Is(err, ErrShortChunk) {
		t.Fatalf("expected ErrShortChunk, got %v", err)
	}
}
