package oscillator

import "testing"

func TestSchmittTriggerRisingEdge(t *testing.T) {
	tr := newSchmittTrigger()

	if tr.process(0) {
		t.Fatal("low input must not fire")
	}
	if !tr.process(1) {
		t.Fatal("rising edge must fire")
	}
	if tr.process(1) {
		t.Fatal("held high must not re-fire")
	}
	// Mid-band values neither fire nor re-arm.
	if tr.process(0.5) {
		t.Fatal("mid value must not fire while disarmed")
	}
	if tr.process(1) {
		t.Fatal("must stay disarmed until the gate drops")
	}
	if tr.process(0.05) {
		t.Fatal("re-arming must not fire")
	}
	if !tr.process(0.95) {
		t.Fatal("second rising edge must fire")
	}
}
