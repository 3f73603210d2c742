package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrNotWAV indicates a missing RIFF/WAVE header.
	ErrNotWAV = errors.New("wav: missing RIFF/WAVE header")
	// ErrUnsupportedFormat indicates an encoding outside PCM16/float32.
	ErrUnsupportedFormat = errors.New("wav: unsupported encoding (want PCM16 or float32)")
	// ErrNoData indicates a container without a data chunk.
	ErrNoData = errors.New("wav: missing data chunk")
)

const (
	formatPCM   = 1
	formatFloat = 3
)

// File is a decoded waveform: interleaved samples normalized to [-1, 1].
type File struct {
	SampleRate int
	Channels   int
	Samples    []float64
}

// Mono returns the file's samples averaged down to one channel. Mono files
// return the sample slice unchanged.
func (f *File) Mono() []float64 {
	if f.Channels <= 1 {
		return f.Samples
	}

	frames := len(f.Samples) / f.Channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < f.Channels; c++ {
			sum += f.Samples[i*f.Channels+c]
		}
		out[i] = sum / float64(f.Channels)
	}

	return out
}

// Decode reads a RIFF/WAVE stream holding PCM16 or float32 samples.
func Decode(r io.Reader) (*File, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("wav: reading header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWAV
	}

	var (
		audioFormat   uint16
		channels      uint16
		sampleRate    uint32
		bitsPerSample uint16
		haveFmt       bool
	)

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrNoData
			}
			return nil, fmt.Errorf("wav: reading chunk header: %w", err)
		}

		id := string(chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("wav: reading fmt chunk: %w", err)
			}
			if size < 16 {
				return nil, ErrUnsupportedFormat
			}
			audioFormat = binary.LittleEndian.Uint16(body[0:2])
			channels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, ErrNoData
			}
			return decodeData(r, int(size), int(audioFormat), int(channels), int(sampleRate), int(bitsPerSample))
		default:
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return nil, fmt.Errorf("wav: skipping %q chunk: %w", id, err)
			}
		}
	}
}

func decodeData(r io.Reader, size int, format, channels, sampleRate, bits int) (*File, error) {
	if channels < 1 {
		return nil, ErrUnsupportedFormat
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("wav: reading data chunk: %w", err)
	}

	var samples []float64

	switch {
	case format == formatPCM && bits == 16:
		n := len(body) / 2
		samples = make([]float64, n)
		for i := 0; i < n; i++ {
			s := int16(binary.LittleEndian.Uint16(body[2*i : 2*i+2]))
			samples[i] = float64(s) / 32768
		}
	case format == formatFloat && bits == 32:
		n := len(body) / 4
		samples = make([]float64, n)
		for i := 0; i < n; i++ {
			bitsVal := binary.LittleEndian.Uint32(body[4*i : 4*i+4])
			samples[i] = float64(math.Float32frombits(bitsVal))
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	// Trim to whole frames.
	samples = samples[:len(samples)/channels*channels]

	return &File{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    samples,
	}, nil
}

// Encode writes left/right as a stereo 16-bit PCM WAV stream. The two
// slices must have equal length; samples are clamped to [-1, 1].
func Encode(w io.Writer, left, right []float64, sampleRate int) error {
	if len(left) != len(right) {
		return fmt.Errorf("wav: channel length mismatch: %d vs %d", len(left), len(right))
	}
	if sampleRate <= 0 {
		return fmt.Errorf("wav: sample rate must be > 0: %d", sampleRate)
	}

	const (
		channels       = 2
		bytesPerSample = 2
	)

	dataSize := len(left) * channels * bytesPerSample
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], formatPCM)
	binary.LittleEndian.PutUint16(buf[22:24], channels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*channels*bytesPerSample))
	binary.LittleEndian.PutUint16(buf[32:34], channels*bytesPerSample)
	binary.LittleEndian.PutUint16(buf[34:36], 8*bytesPerSample)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	for i := range left {
		binary.LittleEndian.PutUint16(buf[44+4*i:], uint16(pcm16(left[i])))
		binary.LittleEndian.PutUint16(buf[46+4*i:], uint16(pcm16(right[i])))
	}

	_, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("wav: writing stream: %w", err)
	}

	return nil
}

func pcm16(x float64) int16 {
	if x > 1 {
		x = 1
	}
	if x < -1 {
		x = -1
	}

	return int16(x * 32767)
}
