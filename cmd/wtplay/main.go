// Command wtplay streams the wavetable oscillator to the default audio
// device. Importing a WAV into a bank happens on a background goroutine
// while audio keeps running, exercising the lock-free bank swap.
//
// Usage:
//
//	wtplay [flags]
//
// Examples:
//
//	wtplay -freq 220 -dur 5
//	wtplay -voices 4 -detune 0.35 -spread 1 -dur 10
//	wtplay -import-a table.wav -dur 8
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-wavetable/dsp/buffer"
	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/oscillator"
	"github.com/cwbudde/algo-wavetable/dsp/wav"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

func main() {
	var (
		rate    = flag.Int("rate", 48000, "sample rate in Hz")
		dur     = flag.Float64("dur", 4.0, "play time in seconds")
		freq    = flag.Float64("freq", 261.6255653005986, "fundamental frequency in Hz")
		posA    = flag.Float64("posa", 0, "bank A frame position [0,1]")
		posB    = flag.Float64("posb", 0, "bank B frame position [0,1]")
		xfade   = flag.Float64("xfade", 0.5, "bank A/B crossfade [0,1]")
		voices  = flag.Int("voices", 1, "unison voices [1,4]")
		detune  = flag.Float64("detune", 0.2, "unison detune depth [0,1]")
		spread  = flag.Float64("spread", 0.5, "stereo spread [0,1]")
		quality = flag.Int("quality", 1, "quality tier: 0=low 1=medium 2=high")
		level   = flag.Float64("level", 0.8, "output level [0,1]")
		importA = flag.String("import-a", "", "WAV file to import into bank A while playing")
	)
	flag.Parse()

	bankA := wavetable.NewDefaultBank(wavetable.ShapeClassic)
	bankB := wavetable.NewDefaultBank(wavetable.ShapeFormant)

	osc, err := oscillator.New(bankA, bankB, core.WithSampleRate(float64(*rate)))
	if err != nil {
		fail(err)
	}

	params := oscillator.DefaultParams()
	params.Pitch = 12 * math.Log2(*freq/core.FreqC4)
	params.FramePosA = *posA
	params.FramePosB = *posB
	params.Crossfade = *xfade
	params.Voices = *voices
	params.Detune = *detune
	params.Spread = *spread
	params.Quality = wavetable.Quality(*quality)
	params.Level = *level

	if *importA != "" {
		go func(path string) {
			if err := importInto(bankA, path); err != nil {
				fmt.Fprintln(os.Stderr, "wtplay: import failed:", err)
			}
		}(*importA)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   *rate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		fail(err)
	}
	<-ready

	player := ctx.NewPlayer(&stream{osc: osc, params: params, pool: buffer.NewPool()})
	player.Play()

	time.Sleep(time.Duration(*dur * float64(time.Second)))

	if err := player.Close(); err != nil {
		fail(err)
	}
}

// stream adapts the oscillator's block renderer to oto's pull model.
type stream struct {
	osc    *oscillator.Oscillator
	params oscillator.Params
	pool   *buffer.Pool
}

// Read renders interleaved stereo float32 frames into p.
func (s *stream) Read(p []byte) (int, error) {
	const bytesPerFrame = 8 // two float32 channels

	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	blk := s.pool.Get(frames)
	defer s.pool.Put(blk)

	if err := s.osc.ProcessBlock(s.params, blk.L, blk.R); err != nil {
		return 0, err
	}

	for i := 0; i < frames; i++ {
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame:], math.Float32bits(float32(blk.L[i])))
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame+4:], math.Float32bits(float32(blk.R[i])))
	}

	return frames * bytesPerFrame, nil
}

func importInto(b *wavetable.Bank, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoded, err := wav.Decode(f)
	if err != nil {
		return err
	}

	return b.Import(decoded.Mono())
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "wtplay:", err)
	os.Exit(1)
}
