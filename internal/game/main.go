package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("GRIDFIRE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	cfg := DefaultConfig()
	if os.Getenv("GRIDFIRE_STEALTH") == "1" {
		cfg.StealthMode = true
		cfg.DrainBullets = true
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		fbW, fbH = WindowWidth, WindowHeight
	}

	g := NewGame(cfg, float64(fbW), float64(fbH), seed)
	AttachAudio(g.Bus)
	hud := &HUD{}
	hud.Attach(g.Bus)

	input := NewInput()

	// Reusable render buffers.
	var lineBuf, spriteBuf, glowBuf, hudBuf []float32

	lastW, lastH := fbW, fbH
	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		if fbW != lastW || fbH != lastH {
			g.Resize(float64(fbW), float64(fbH))
			lastW, lastH = fbW, fbH
		}

		if input.JustPressed(window, glfw.KeyP) {
			g.TogglePause()
		}

		g.SetInput(Capture(window, fbW, fbH))
		g.Step(glfw.GetTime())

		rend.BeginFrame(g.Cam, fbW, fbH)

		lineBuf = g.GridLineData(lineBuf)
		rend.DrawLines(lineBuf, g.Cam, fbW, fbH)

		spriteBuf = g.SpriteData(spriteBuf)
		rend.DrawSprites(spriteBuf, g.Cam, fbW, fbH, false)

		glowBuf = g.GlowData(glowBuf)
		rend.DrawGlowSprites(glowBuf, g.Cam, fbW, fbH)

		// HUD draws without shake.
		hudBuf = hud.Data(hudBuf[:0], g, fbW, fbH)
		rend.DrawSprites(hudBuf, Camera{}, fbW, fbH, false)

		window.SwapBuffers()
	}
}
