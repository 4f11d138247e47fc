package termview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEventsForwardsKeys(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	done := make(chan struct{})
	defer close(done)
	events := PumpEvents(s, done, 4)

	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		if !ok || key.Rune() != ' ' {
			t.Fatalf("event = %#v, want Space key", ev)
		}
	case <-time.After(time.Second):
		t.Fatalf("no event forwarded")
	}
}

func TestPumpEventsStopsWhenReaderLeaves(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	done := make(chan struct{})
	events := PumpEvents(s, done, 1)

	for i := 0; i < 3; i++ {
		s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	// Let the pump fill its buffer and block on the next send.
	time.Sleep(50 * time.Millisecond)
	close(done)

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("event pump still running after done was closed")
		}
	}
}
