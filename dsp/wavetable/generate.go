package wavetable

import "math"

// Shape selects one of the built-in procedural table families.
type Shape int

const (
	// ShapeClassic morphs a sine into a saw/square/harmonic-rich blend.
	ShapeClassic Shape = iota
	// ShapeFormant morphs a sine into a moving-formant additive stack.
	ShapeFormant
)

// Generate builds the default table for shape. Construction is fully
// deterministic given shape, which keeps golden-output tests stable.
func Generate(shape Shape) *Table {
	level0 := make([]float64, NumFrames*TableSize)
	for f := 0; f < NumFrames; f++ {
		morph := float64(f) / float64(NumFrames-1)
		frame := level0[f*TableSize : (f+1)*TableSize]
		for s := 0; s < TableSize; s++ {
			phase := float64(s) / float64(TableSize)
			if shape == ShapeFormant {
				frame[s] = formantSample(phase, morph)
			} else {
				frame[s] = classicSample(phase, morph)
			}
		}
		normalizePeak(frame)
	}

	t, err := BuildTable(level0)
	if err != nil {
		// Unreachable: level0 has the exact required length.
		panic(err)
	}

	return t
}

func classicSample(phase, morph float64) float64 {
	sine := math.Sin(2 * math.Pi * phase)
	saw := 2*phase - 1
	square := 1.0
	if phase >= 0.5 {
		square = -1.0
	}

	rich := sine
	for h := 2; h <= 8; h++ {
		rich += 0.3 / float64(h) * math.Sin(2*math.Pi*phase*float64(h))
	}
	rich /= 1.8

	return sine*(1-morph*0.7) + saw*(morph*0.4) + square*(morph*0.3) + rich*(morph*0.5)
}

func formantSample(phase, morph float64) float64 {
	sine := math.Sin(2 * math.Pi * phase)

	w0 := 1.0
	w1 := 0.5 * (1 + math.Sin(morph*2*math.Pi))
	w2 := 0.3 * (1 + math.Cos(morph*3*math.Pi))

	formant := 0.0
	for h := 1; h <= 12; h++ {
		w := w0/float64(h) + w1/float64(h+2) + w2/float64(h+4)
		formant += w * math.Sin(2*math.Pi*phase*float64(h))
	}
	formant /= 2.5

	return sine*(1-morph) + formant*morph
}
