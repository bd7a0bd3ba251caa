// Package input keeps the keyboard and mouse state of the window.
//
// The platform layer feeds events into a Tracker from its callbacks and the
// application polls the Tracker between frames. Every query with a code
// outside the supported range answers false instead of failing.
package input

// Tracker records key and mouse button press state, the active drag gesture
// and the cursor position. It is not safe for concurrent use; all calls are
// expected from the thread that polls window events.
type Tracker struct {
	keys    [MaxKeys]bool
	buttons [MaxMouseButtons]bool

	dragging   bool
	dragButton MouseButton

	cursorX float64
	cursorY float64

	width  int
	height int
}

func NewTracker(width, height int) *Tracker {
	return &Tracker{
		dragButton: MouseButtonNone,
		width:      width,
		height:     height,
	}
}

func (t *Tracker) HandleKey(key Key, action Action) {
	if !key.Valid() {
		return
	}
	switch action {
	case Press, Repeat:
		t.keys[key] = true
	case Release:
		t.keys[key] = false
	}
}

func (t *Tracker) HandleMouseButton(btn MouseButton, action Action) {
	if !btn.Valid() {
		return
	}

	switch action {
	case Press:
		t.buttons[btn] = true
		if !t.dragging {
			t.dragging = true
			t.dragButton = btn
		}
	case Release:
		t.buttons[btn] = false
		if t.dragging && t.dragButton == btn {
			t.dragging = false
			t.dragButton = MouseButtonNone
		}
	}
}

// HandleCursorPos stores the raw window-relative cursor position.
func (t *Tracker) HandleCursorPos(x, y float64) {
	t.cursorX = x
	t.cursorY = y
}

// SetWindowSize updates the size used to normalize the cursor position.
func (t *Tracker) SetWindowSize(width, height int) {
	t.width = width
	t.height = height
}

func (t *Tracker) WindowSize() (int, int) {
	return t.width, t.height
}

func (t *Tracker) IsKeyPressed(key Key) bool {
	if !key.Valid() {
		return false
	}
	return t.keys[key]
}

func (t *Tracker) IsMousePressed(btn MouseButton) bool {
	if !btn.Valid() {
		return false
	}
	return t.buttons[btn]
}

func (t *Tracker) IsDragging() bool {
	return t.dragging
}

// DragButton returns the button that started the active drag, or
// MouseButtonNone.
func (t *Tracker) DragButton() MouseButton {
	return t.dragButton
}

func (t *Tracker) RawMousePos() (x, y float64) {
	return t.cursorX, t.cursorY
}

// MousePos returns the cursor position mapped to [-1, 1] on both axes using
// the current window size. A zero sized window maps to 0.
func (t *Tracker) MousePos() (x, y float32) {
	return normalize(t.cursorX, t.width), normalize(t.cursorY, t.height)
}

func (t *Tracker) MouseX() float32 {
	return normalize(t.cursorX, t.width)
}

func (t *Tracker) MouseY() float32 {
	return normalize(t.cursorY, t.height)
}

// Reset clears all press state and ends any drag.
func (t *Tracker) Reset() {
	t.keys = [MaxKeys]bool{}
	t.buttons = [MaxMouseButtons]bool{}
	t.dragging = false
	t.dragButton = MouseButtonNone
}

func normalize(v float64, size int) float32 {
	if size <= 0 {
		return 0
	}
	return float32(v/float64(size)*2 - 1)
}
