// This tool prints the container metadata of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milos-mkv/wave"
)

const missingPathMessage = "You must pass the path of the file to inspect"

var errMissingPath = errors.New("missing path argument")

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

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	wf, err := wave.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Format: %s\n", wf.FormatName())
	fmt.Fprintf(out, "Channels: %d\n", wf.NumChannels)
	fmt.Fprintf(out, "SampleRate: %d Hz\n", wf.SampleRate)
	fmt.Fprintf(out, "BitDepth: %d\n", wf.BitsPerSample)
	fmt.Fprintf(out, "ByteRate: %d\n", wf.ByteRate)
	fmt.Fprintf(out, "BlockAlign: %d\n", wf.BlockAlign)
	fmt.Fprintf(out, "DataSize: %d bytes\n", wf.Subchunk2Size)
	fmt.Fprintf(out, "Frames: %d\n", wf.FrameCount())

	dur, err := wf.Duration()
	if err == nil {
		fmt.Fprintf(out, "Duration: %s\n", dur)
	}

	for _, chunk := range wf.Skipped {
		fmt.Fprintf(out, "Skipped chunk: %q (%d bytes)\n", chunk.ID[:], chunk.Size)
	}

	return nil
}
