package oscillator

const (
	triggerHigh = 0.9
	triggerLow  = 0.1
)

// schmittTrigger detects rising edges with hysteresis so a noisy gate
// cannot double-fire.
type schmittTrigger struct {
	armed bool
}

func newSchmittTrigger() schmittTrigger {
	return schmittTrigger{armed: true}
}

// process consumes one gate sample and reports whether a trigger fired.
func (t *schmittTrigger) process(v float64) bool {
	if t.armed {
		if v >= triggerHigh {
			t.armed = false
			return true
		}
		return false
	}

	if v <= triggerLow {
		t.armed = true
	}

	return false
}
