package game

import "github.com/go-gl/glfw/v3.3/glfw"

// InputState is the snapshot of player input consulted once per tick.
// Captured asynchronously; last write wins.
type InputState struct {
	Up, Down, Left, Right bool
	Focus                 bool // modifier: halves movement speed
	MouseX, MouseY        float64
	Firing                bool
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Capture reads the current keyboard and pointer state. The view is
// screen-fixed, so world coordinates equal framebuffer coordinates.
func Capture(window *glfw.Window, fbW, fbH int) InputState {
	st := InputState{
		Up:    window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press,
		Down:  window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press,
		Left:  window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press,
		Right: window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press,
		Focus: window.GetKey(glfw.KeyLeftShift) == glfw.Press,
		Firing: window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press ||
			window.GetKey(glfw.KeySpace) == glfw.Press,
	}

	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW > 0 && winH > 0 {
		st.MouseX = cx * float64(fbW) / float64(winW)
		st.MouseY = cy * float64(fbH) / float64(winH)
	}
	return st
}
