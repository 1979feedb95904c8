// This tool prints the broadcast metadata (fmt, bext and iXML chunks)
// found in the passed WAV file. AIFF input is recognized and reported with
// its basic properties instead of being rejected as a bad RIFF file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/bwfmeta"
	"github.com/go-audio/aiff"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

var formID = [4]byte{'F', 'O', 'R', 'M'}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	var tag [4]byte
	if _, err := io.ReadFull(file, tag[:]); err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", args[0], err)
	}

	if tag == formID {
		return printAIFFInfo(file, out)
	}

	res, err := bwfmeta.Parse(file)
	if err != nil {
		return err
	}

	printResult(res, out)

	return nil
}

func printResult(res *bwfmeta.ParseResult, out io.Writer) {
	if res.FormatStatus == bwfmeta.StatusFound {
		info := res.Format
		fmt.Fprintln(out, "WAV File Properties:")
		fmt.Fprintln(out, "--------------------")
		fmt.Fprintf(out, "Audio Format: %s\n", info.FormatName())
		fmt.Fprintf(out, "Channels: %d\n", info.NumChannels)
		fmt.Fprintf(out, "Sample Rate: %d Hz\n", info.SampleRate)
		fmt.Fprintf(out, "Bit Depth: %d bits\n", info.BitsPerSample)
	} else {
		fmt.Fprintln(out, "WAV Format data (fmt chunk) not found.")
	}

	fmt.Fprintln(out)

	if res.BroadcastStatus == bwfmeta.StatusFound {
		bext := res.Broadcast
		fmt.Fprintln(out, "Broadcast Extension (bext) Data:")
		fmt.Fprintln(out, "----------------------------------")
		fmt.Fprintf(out, "Description: %s\n", bext.Description)
		fmt.Fprintf(out, "Originator: %s\n", bext.Originator)
		fmt.Fprintf(out, "Originator Ref: %s\n", bext.OriginatorReference)
		fmt.Fprintf(out, "Origination Date: %s\n", bext.OriginationDate)
		fmt.Fprintf(out, "Origination Time: %s\n", bext.OriginationTime)
		fmt.Fprintf(out, "Time Reference: %d (samples since midnight)\n", bext.TimeReference)
	} else {
		fmt.Fprintln(out, "No Broadcast Extension (bext) chunk found in this file.")
	}

	fmt.Fprintln(out)

	switch res.IXMLStatus {
	case bwfmeta.StatusFound:
		fmt.Fprintln(out, "iXML Metadata:")
		fmt.Fprintln(out, "--------------------")
		fmt.Fprintln(out, res.IXML.Document)
	case bwfmeta.StatusMalformed:
		fmt.Fprintln(out, "An iXML chunk is present but could not be decoded.")
	default:
		fmt.Fprintln(out, "No iXML chunk was found in this file.")
	}

	for _, decErr := range res.DecodeErrors {
		fmt.Fprintf(out, "warning: %v\n", decErr)
	}
}

func printAIFFInfo(file *os.File, out io.Writer) error {
	dec := aiff.NewDecoder(file)
	dec.ReadInfo()

	if err := dec.Err(); err != nil {
		return fmt.Errorf("failed to read AIFF info: %w", err)
	}

	fmt.Fprintln(out, "AIFF File Properties:")
	fmt.Fprintln(out, "---------------------")
	fmt.Fprintf(out, "Channels: %d\n", dec.NumChans)
	fmt.Fprintf(out, "Sample Rate: %d Hz\n", dec.SampleRate)
	fmt.Fprintf(out, "Bit Depth: %d bits\n", dec.BitDepth)
	fmt.Fprintln(out, "AIFF files carry no bext or iXML chunks.")

	return nil
}
