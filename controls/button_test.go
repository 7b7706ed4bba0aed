package controls

import "testing"

func newTestButton(hal *fakeHAL, invert bool) *Button {
	return NewButton(hal, 7, ButtonConfig{DebounceMs: 25, Pullup: true, Invert: invert})
}

func TestButtonBeginConfiguresPinAndTakesInitialState(t *testing.T) {
	hal := newFakeHAL().at(100)
	hal.digital[7] = true // pulled up, not pressed
	b := newTestButton(hal, true)
	b.Begin()

	if hal.modes[7] != PinInputPullup {
		t.Fatalf("mode=%v want input_pullup", hal.modes[7])
	}
	if b.IsPressed() || !b.IsReleased() || b.Changed() {
		t.Fatalf("pressed=%v changed=%v after begin", b.IsPressed(), b.Changed())
	}
	if b.LastChange() != 100 {
		t.Fatalf("lastChange=%d", b.LastChange())
	}

	b.SetPullup(false)
	b.Begin()
	if hal.modes[7] != PinInput {
		t.Fatalf("mode=%v want input", hal.modes[7])
	}
}

func TestButtonDebounce(t *testing.T) {
	hal := newFakeHAL().at(100)
	b := newTestButton(hal, false)
	b.Begin() // low: released

	// Accepted press.
	hal.digital[7] = true
	if !readAt(hal, b, 200) || !b.IsPressed() || !b.WasPressed() {
		t.Fatal("press at t=200 not accepted")
	}

	// Bounce 10 ms later is discarded.
	hal.digital[7] = false
	if readAt(hal, b, 210) || !b.IsPressed() || b.Changed() {
		t.Fatal("bounce inside debounce window changed state")
	}

	// Still inside the window at 224.
	if readAt(hal, b, 224) || !b.IsPressed() {
		t.Fatal("sample at 24 ms accepted")
	}

	// Window over: release is accepted.
	if !readAt(hal, b, 230) || !b.IsReleased() || !b.WasReleased() {
		t.Fatal("release at t=230 not accepted")
	}
	if b.LastChange() != 230 {
		t.Fatalf("lastChange=%d want 230", b.LastChange())
	}

	// Same level again: no change.
	if readAt(hal, b, 300) || b.WasReleased() {
		t.Fatal("steady level reported a change")
	}
}

func TestButtonDiscardsRatherThanQueues(t *testing.T) {
	hal := newFakeHAL().at(0)
	b := newTestButton(hal, false)
	b.Begin()

	hal.digital[7] = true
	readAt(hal, b, 50) // pressed
	hal.digital[7] = false
	readAt(hal, b, 60) // discarded
	hal.digital[7] = true
	// By the time the window closes the pin is high again, so nothing changes.
	if readAt(hal, b, 80) || !b.IsPressed() {
		t.Fatal("discarded release was replayed")
	}
}

func TestButtonInvert(t *testing.T) {
	hal := newFakeHAL().at(0)
	hal.digital[7] = true
	b := newTestButton(hal, true)
	b.Begin()
	if b.IsPressed() {
		t.Fatal("high with invert should be released")
	}
	hal.digital[7] = false
	if !readAt(hal, b, 100) || !b.IsPressed() {
		t.Fatal("low with invert should be pressed")
	}
}

func TestButtonPressedForReleasedFor(t *testing.T) {
	hal := newFakeHAL().at(0)
	b := newTestButton(hal, false)
	b.Begin()

	hal.digital[7] = true
	readAt(hal, b, 1000)
	if b.PressedFor(1) || !b.PressedFor(0) {
		t.Fatal("PressedFor right after press")
	}
	readAt(hal, b, 1499)
	if b.PressedFor(500) {
		t.Fatal("PressedFor(500) true after 499 ms")
	}
	readAt(hal, b, 1500)
	if !b.PressedFor(500) || b.ReleasedFor(0) {
		t.Fatal("PressedFor(500) false after 500 ms")
	}

	hal.digital[7] = false
	readAt(hal, b, 2000)
	if b.PressedFor(0) || !b.ReleasedFor(0) || b.ReleasedFor(1) {
		t.Fatal("ReleasedFor after release")
	}
}

func TestButtonThroughMultiplexer(t *testing.T) {
	hal := newFakeHAL().at(0)
	mux := NewMultiplexer(hal, 1, 2, 3, 4, NoPin)
	b := newTestButton(hal, false)
	b.SetMultiplexer(mux, 9)
	b.Begin()
	if mux.Channel() != 9 {
		t.Fatalf("mux channel=%d want 9", mux.Channel())
	}
	mux.SetChannel(0)
	readAt(hal, b, 100)
	if mux.Channel() != 9 {
		t.Fatal("Read did not reselect the channel")
	}
	last := hal.ops[len(hal.ops)-1]
	if last != "dread 7" {
		t.Fatalf("last op %q, want the read after the select writes", last)
	}
}

func TestButtonTimeWrap(t *testing.T) {
	hal := newFakeHAL().at(^uint32(0) - 9) // 10 ms before wrap
	b := newTestButton(hal, false)
	b.Begin()
	hal.digital[7] = true
	if readAt(hal, b, 5) { // 15 ms later across the wrap
		t.Fatal("accepted inside debounce window across wrap")
	}
	if !readAt(hal, b, 20) {
		t.Fatal("not accepted after window across wrap")
	}
}
