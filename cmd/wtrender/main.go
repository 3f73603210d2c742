// Command wtrender renders the wavetable oscillator offline to a WAV file.
//
// Usage:
//
//	wtrender [flags] -o out.wav
//
// Examples:
//
//	wtrender -freq 110 -dur 2 -o bass.wav
//	wtrender -voices 4 -detune 0.4 -spread 1 -o super.wav
//	wtrender -warp-a fold -warp-a-amt 0.6 -posa 0.8 -o folded.wav
//	wtrender -import-a table.wav -o imported.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-wavetable/dsp/buffer"
	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/oscillator"
	"github.com/cwbudde/algo-wavetable/dsp/wav"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
	"github.com/cwbudde/algo-wavetable/dsp/warp"
)

var warpModes = map[string]warp.Mode{
	"phase":  warp.ModePhaseDistort,
	"bend":   warp.ModeBendAsym,
	"mirror": warp.ModeMirror,
	"fold":   warp.ModeFold,
	"sync":   warp.ModeSyncLike,
}

func main() {
	var (
		out      = flag.String("o", "out.wav", "output WAV path")
		rate     = flag.Float64("rate", 48000, "sample rate in Hz")
		dur      = flag.Float64("dur", 1.0, "duration in seconds")
		freq     = flag.Float64("freq", 261.6255653005986, "fundamental frequency in Hz")
		posA     = flag.Float64("posa", 0, "bank A frame position [0,1]")
		posB     = flag.Float64("posb", 0, "bank B frame position [0,1]")
		xfade    = flag.Float64("xfade", 0.5, "bank A/B crossfade [0,1]")
		warpA    = flag.String("warp-a", "phase", "warp A mode: phase|bend|mirror|fold|sync")
		warpAAmt = flag.Float64("warp-a-amt", 0, "warp A amount [0,1]")
		warpB    = flag.String("warp-b", "phase", "warp B mode: phase|bend|mirror|fold|sync")
		warpBAmt = flag.Float64("warp-b-amt", 0, "warp B amount [0,1]")
		voices   = flag.Int("voices", 1, "unison voices [1,4]")
		detune   = flag.Float64("detune", 0.2, "unison detune depth [0,1]")
		spread   = flag.Float64("spread", 0.5, "stereo spread [0,1]")
		quality  = flag.Int("quality", 1, "quality tier: 0=low 1=medium 2=high")
		level    = flag.Float64("level", 0.8, "output level [0,1]")
		importA  = flag.String("import-a", "", "WAV file to import into bank A")
		importB  = flag.String("import-b", "", "WAV file to import into bank B")
	)
	flag.Parse()

	bankA := wavetable.NewDefaultBank(wavetable.ShapeClassic)
	bankB := wavetable.NewDefaultBank(wavetable.ShapeFormant)

	if *importA != "" {
		if err := importInto(bankA, *importA); err != nil {
			fail(err)
		}
	}
	if *importB != "" {
		if err := importInto(bankB, *importB); err != nil {
			fail(err)
		}
	}

	modeA, ok := warpModes[*warpA]
	if !ok {
		fail(fmt.Errorf("unknown warp mode %q", *warpA))
	}
	modeB, ok := warpModes[*warpB]
	if !ok {
		fail(fmt.Errorf("unknown warp mode %q", *warpB))
	}

	osc, err := oscillator.New(bankA, bankB, core.WithSampleRate(*rate))
	if err != nil {
		fail(err)
	}

	params := oscillator.DefaultParams()
	params.Pitch = 12 * math.Log2(*freq/core.FreqC4)
	params.FramePosA = *posA
	params.FramePosB = *posB
	params.Crossfade = *xfade
	params.WarpAMode = modeA
	params.WarpAAmount = *warpAAmt
	params.WarpBMode = modeB
	params.WarpBAmount = *warpBAmt
	params.Voices = *voices
	params.Detune = *detune
	params.Spread = *spread
	params.Quality = wavetable.Quality(*quality)
	params.Level = *level

	blocks := buffer.NewStereo(int(*dur * *rate))
	if err := osc.ProcessBlock(params, blocks.L, blocks.R); err != nil {
		fail(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	if err := wav.Encode(f, blocks.L, blocks.R, int(*rate)); err != nil {
		fail(err)
	}

	fmt.Printf("wrote %s: %d samples at %.0f Hz\n", *out, blocks.Len(), *rate)
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
	fmt.Fprintln(os.Stderr, "wtrender:", err)
	os.Exit(1)
}
