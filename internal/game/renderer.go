package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const maxSpriteRender = 12000

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

type Renderer struct {
	// Point sprite program (alpha blended).
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUResolution int32

	// Glow (radial light) program — uses spriteVAO, additive blend only.
	glowProg        uint32
	glowUCamera     int32
	glowUResolution int32

	// Grid line program.
	lineProg        uint32
	lineVAO         uint32
	lineVBO         uint32
	lineUCamera     int32
	lineUResolution int32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{
		spriteProg: spriteProg,
		glowProg:   glowProg,
		lineProg:   lineProg,
	}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	// Line VAO/VBO: streaming buffer, 6 floats per vertex (x, y, r, g, b, a).
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)

	lineStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSpriteRender*int(lineStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lineStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, lineStride, glOffset(2*4))
	r.lineVAO = lVAO
	r.lineVBO = lVBO

	gl.UseProgram(lineProg)
	r.lineUCamera = gl.GetUniformLocation(lineProg, gl.Str("uCamera\x00"))
	r.lineUResolution = gl.GetUniformLocation(lineProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.lineVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.lineVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteProg, r.glowProg, r.lineProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
}

// DrawLines streams a (x, y, r, g, b, a)-per-vertex buffer as GL_LINES.
func (r *Renderer) DrawLines(buf []float32, cam Camera, fbW, fbH int) {
	n := len(buf) / 6
	if n == 0 {
		return
	}
	if n > maxSpriteRender {
		n = maxSpriteRender
		buf = buf[:n*6]
	}

	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	gl.Uniform2f(r.lineUCamera, float32(cam.ShakeX), float32(cam.ShakeY))
	gl.Uniform2f(r.lineUResolution, float32(fbW), float32(fbH))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(&buf[0]))
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.LINES, 0, int32(n))
}

// DrawSprites streams an 8-float-per-sprite buffer. additive selects the
// blend mode used for hot/bright passes.
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int, additive bool) {
	n := len(buf) / 8
	if n == 0 {
		return
	}
	if n > maxSpriteRender {
		n = maxSpriteRender
		buf = buf[:n*8]
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.Uniform2f(r.spUCamera, float32(cam.ShakeX), float32(cam.ShakeY))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(&buf[0]))
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.DrawArrays(gl.POINTS, 0, int32(n))
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// DrawGlowSprites renders radial light sprites with additive blending.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	n := len(buf) / 8
	if n == 0 {
		return
	}
	if n > maxSpriteRender {
		n = maxSpriteRender
		buf = buf[:n*8]
	}

	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.Uniform2f(r.glowUCamera, float32(cam.ShakeX), float32(cam.ShakeY))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(&buf[0]))
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DrawArrays(gl.POINTS, 0, int32(n))
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}
