package game

import (
	"strings"
	"unicode/utf8"
)

// Glyph layout shared by the letter spawner and the renderer: 5x7 cells plus
// one cell of spacing, at a fixed on-screen scale.
const (
	glyphCols   = 5
	glyphRows   = 7
	letterScale = 3.0
	letterSpace = (glyphCols + 1) * letterScale // horizontal advance
	letterLineH = (glyphRows + 2) * letterScale
)

// FloatingLetter is a transient scoring pickup; quote bursts spawn one per
// non-space character.
type FloatingLetter struct {
	X, Y   float64
	VX, VY float64
	Ch     rune
	Life   float64 // seconds remaining
}

type quote struct {
	text   string
	author string
}

var quotes = []quote{
	{"SURVIVE FIRST ASK QUESTIONS LATER", "UNKNOWN"},
	{"THE GRID REMEMBERS EVERY IMPACT", "OPERATOR MANUAL"},
	{"WHAT FALLS APART WILL GATHER AGAIN", "UNKNOWN"},
	{"SPEED IS LIFE STILLNESS IS SAFETY", "STEALTH DOCTRINE"},
	{"EVERY SPARK WANTS TO BECOME SOMETHING", "OPERATOR MANUAL"},
	{"DO NOT TRUST A QUIET ARENA", "UNKNOWN"},
}

// wrapQuote greedily word-wraps text to a maximum pixel width using the
// letter advance.
func wrapQuote(text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		cand := cur + " " + w
		if float64(utf8.RuneCountInString(cand))*letterSpace > maxWidth {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = cand
	}
	return append(lines, cur)
}

// maybeSpawnQuote emits a centered multi-line quote plus an attribution line
// as floating letter pickups on the configured cadence.
func (g *Game) maybeSpawnQuote() {
	if g.Now-g.lastQuote < g.Cfg.QuoteInterval {
		return
	}
	g.lastQuote = g.Now

	q := quotes[g.Rand.Intn(len(quotes))]
	lines := wrapQuote(q.text, g.Cfg.QuoteMaxWidth)
	lines = append(lines, "- "+q.author)

	top := g.H*0.4 - float64(len(lines))*letterLineH*0.5
	for li, line := range lines {
		x := g.W*0.5 - float64(utf8.RuneCountInString(line))*letterSpace*0.5
		y := top + float64(li)*letterLineH
		col := 0
		for _, ch := range line {
			if ch != ' ' {
				g.Letters = append(g.Letters, FloatingLetter{
					X:    x + float64(col)*letterSpace,
					Y:    y,
					VX:   g.Rand.RangeF(-4, 4),
					VY:   g.Rand.RangeF(-4, 4),
					Ch:   ch,
					Life: g.Cfg.LetterLife,
				})
			}
			col++
		}
	}
}

func (g *Game) updateLetters(dt float64) {
	for i := 0; i < len(g.Letters); {
		l := &g.Letters[i]
		l.Life -= dt
		if l.Life <= 0 {
			g.removeLetter(i)
			continue
		}
		l.X += l.VX * dt
		l.Y += l.VY * dt
		i++
	}
}

func (g *Game) removeLetter(i int) {
	g.Letters[i] = g.Letters[len(g.Letters)-1]
	g.Letters = g.Letters[:len(g.Letters)-1]
}
