// Package bwfmeta extracts broadcast metadata from WAV (RIFF) files.
//
// The package walks the chunk sequence of a classic 32-bit RIFF/WAVE
// container in a single forward pass and decodes the fmt, bext (Broadcast
// Wave Format extension) and iXML chunks into typed records. Parse returns
// a ParseResult that reports, independently for each of the three chunk
// types, whether it was found, present but malformed, or absent.
//
// Audio sample data is never decoded, files are never modified, and the
// RF64/BW64 64-bit size extensions are not supported.
package bwfmeta
