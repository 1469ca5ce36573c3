package wave

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// fmtChunkMinSize is the mandatory field block of the fmt chunk; PCM
// files carry exactly this much, extended formats append extra bytes.
const fmtChunkMinSize = 16

// Load opens the WAV file at path and decodes it. The file handle is
// closed on all paths.
func Load(path string) (*WaveFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a single RIFF/WAVE container from r and returns the
// populated record. The reader is consumed up to the end of the data
// payload; trailing bytes are left unread. Structural problems surface
// as ErrInvalidFormat, a premature end of stream as ErrTruncatedInput
// naming the field that was being read. No partially populated record
// is ever returned alongside an error.
func Decode(r io.Reader) (*WaveFile, error) {
	d := &decoder{r: r, parser: riff.New(r)}

	return d.decode()
}

type decoder struct {
	r       io.Reader
	parser  *riff.Parser
	scratch [4]byte
}

func (d *decoder) decode() (*WaveFile, error) {
	wf := &WaveFile{}

	err := d.readRIFFHeader(wf)
	if err != nil {
		return nil, err
	}

	sawFmt := false

	for {
		id, size, err := d.parser.IDnSize()
		if err != nil {
			return nil, classifyReadErr("chunk header", err)
		}

		switch id {
		case riff.FmtID:
			err = d.readFmtChunk(wf, id, size)
			if err != nil {
				return nil, err
			}

			sawFmt = true
		case riff.DataFormatID:
			if !sawFmt {
				return nil, fmt.Errorf("%w: data chunk before fmt chunk", ErrInvalidFormat)
			}

			err = d.readDataChunk(wf, id, size)
			if err != nil {
				return nil, err
			}

			return wf, nil
		default:
			err = d.skipChunk(wf, id, size)
			if err != nil {
				return nil, err
			}
		}
	}
}

func (d *decoder) readRIFFHeader(wf *WaveFile) error {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return classifyReadErr("RIFF header", err)
	}

	if id != riff.RiffID {
		return fmt.Errorf("%w: %q is not a RIFF chunk ID", ErrInvalidFormat, string(id[:]))
	}

	wf.ChunkID = id
	wf.ChunkSize = size

	formatID, err := d.readTag("WAVE format ID")
	if err != nil {
		return err
	}

	if formatID != riff.WavFormatID {
		return fmt.Errorf("%w: RIFF form type %q, want WAVE", ErrInvalidFormat, string(formatID[:]))
	}

	wf.FormatID = formatID

	return nil
}

func (d *decoder) readFmtChunk(wf *WaveFile, id [4]byte, size uint32) error {
	if size < fmtChunkMinSize {
		return fmt.Errorf("%w: fmt chunk size %d, want at least %d", ErrInvalidFormat, size, fmtChunkMinSize)
	}

	wf.Subchunk1ID = id
	wf.Subchunk1Size = size

	audioFormat, err := d.readUint("audio format", 2)
	if err != nil {
		return err
	}

	wf.AudioFormat = uint16(audioFormat)

	numChannels, err := d.readUint("channel count", 2)
	if err != nil {
		return err
	}

	wf.NumChannels = uint16(numChannels)

	wf.SampleRate, err = d.readUint("sample rate", 4)
	if err != nil {
		return err
	}

	wf.ByteRate, err = d.readUint("byte rate", 4)
	if err != nil {
		return err
	}

	blockAlign, err := d.readUint("block align", 2)
	if err != nil {
		return err
	}

	wf.BlockAlign = uint16(blockAlign)

	bitsPerSample, err := d.readUint("bit depth", 2)
	if err != nil {
		return err
	}

	wf.BitsPerSample = uint16(bitsPerSample)

	// Extended formats (fmt chunk larger than 16 bytes) append extra
	// parameters the record does not carry; drain them so the cursor
	// lands on the next chunk header.
	extra := int64(size - fmtChunkMinSize)
	if size%2 == 1 {
		// chunks are word aligned, the padding byte is not counted
		extra++
	}

	if extra > 0 {
		err = d.discard("fmt extension", extra)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) readDataChunk(wf *WaveFile, id [4]byte, size uint32) error {
	wf.Subchunk2ID = id
	wf.Subchunk2Size = size
	wf.Data = make([]byte, size)

	_, err := io.ReadFull(d.r, wf.Data)
	if err != nil {
		return classifyReadErr("data payload", err)
	}

	return nil
}

// skipChunk passes over a non-core chunk, keeping only its identity
// and declared size. The payload goes to io.Discard.
func (d *decoder) skipChunk(wf *WaveFile, id [4]byte, size uint32) error {
	wf.Skipped = append(wf.Skipped, SkippedChunk{ID: id, Size: size})

	skip := int64(size)
	if size%2 == 1 {
		skip++
	}

	return d.discard(fmt.Sprintf("%q chunk payload", string(id[:])), skip)
}

func (d *decoder) readTag(field string) ([4]byte, error) {
	var tag [4]byte

	_, err := io.ReadFull(d.r, tag[:])
	if err != nil {
		return tag, classifyReadErr(field, err)
	}

	return tag, nil
}

// readUint reads an n-byte little-endian field and converts it to a
// host-native integer. n is 2 or 4.
func (d *decoder) readUint(field string, n int) (uint32, error) {
	buf := d.scratch[:n]

	_, err := io.ReadFull(d.r, buf)
	if err != nil {
		return 0, classifyReadErr(field, err)
	}

	return ToHostUint(buf), nil
}

func (d *decoder) discard(field string, n int64) error {
	_, err := io.CopyN(io.Discard, d.r, n)
	if err != nil {
		return classifyReadErr(field, err)
	}

	return nil
}

func classifyReadErr(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read %s: %w", field, ErrTruncatedInput)
	}

	return fmt.Errorf("failed to read %s: %w", field, err)
}
