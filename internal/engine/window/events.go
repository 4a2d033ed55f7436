package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/glowsphere/internal/engine/input"
)

// hiddenWaitMS bounds how long PollEvents parks while the window is
// hidden, so the caller still gets to check for cancellation.
const hiddenWaitMS = 100

// PollEvents appends all pending events to dst and returns it.
// When the window is hidden it waits up to hiddenWaitMS for an event,
// which parks the render loop the way a browser stops animation frames in
// a background tab.
func (w *Window) PollEvents(dst []input.Event) []input.Event {
	if w.hidden {
		if ev := sdl.WaitEventTimeout(hiddenWaitMS); ev != nil {
			dst = w.translate(dst, ev)
		}
	}
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		dst = w.translate(dst, ev)
	}
	return dst
}

func (w *Window) translate(dst []input.Event, event sdl.Event) []input.Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		dst = append(dst, input.Event{Type: input.EventQuit})

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			dst = append(dst, input.Event{
				Type:   input.EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		case sdl.WINDOWEVENT_MINIMIZED, sdl.WINDOWEVENT_HIDDEN:
			w.hidden = true
			dst = append(dst, input.Event{Type: input.EventWindowHidden})
		case sdl.WINDOWEVENT_RESTORED, sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_EXPOSED:
			if w.hidden {
				w.hidden = false
				dst = append(dst, input.Event{Type: input.EventWindowShown})
			}
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			break
		}
		typ := input.EventKeyUp
		if e.Type == sdl.KEYDOWN {
			typ = input.EventKeyDown
		}
		dst = append(dst, input.Event{Type: typ, Key: translateKey(e.Keysym.Scancode)})

	case *sdl.MouseMotionEvent:
		dst = append(dst, input.Event{
			Type:   input.EventMouseMove,
			MouseX: float32(e.X),
			MouseY: float32(e.Y),
		})

	case *sdl.MouseButtonEvent:
		typ := input.EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			typ = input.EventMouseDown
		}
		dst = append(dst, input.Event{
			Type:   typ,
			MouseX: float32(e.X),
			MouseY: float32(e.Y),
			Button: e.Button,
		})

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		dst = append(dst, input.Event{Type: input.EventMouseWheel, Wheel: dy})
	}
	return dst
}

func translateKey(sc sdl.Scancode) input.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_F11:
		return input.KeyF11
	case sdl.SCANCODE_F12:
		return input.KeyF12
	}
	return input.KeyUnknown
}
