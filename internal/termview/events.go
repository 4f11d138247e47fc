package termview

import "github.com/gdamore/tcell/v2"

// PumpEvents forwards screen events on the returned channel until the screen
// is finalized or done is closed. The channel is closed when it stops.
func PumpEvents(screen tcell.Screen, done <-chan struct{}, buffer int) <-chan tcell.Event {
	out := make(chan tcell.Event, buffer)
	go func() {
		defer close(out)
		for {
			select {
			case <-done:
				return
			default:
			}
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}()
	return out
}
