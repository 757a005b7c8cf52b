package game

import (
	"math"
	"sort"
	"testing"
)

func TestWrapQuote(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{
			"fits on one line",
			"AAAA BBBB", 100 * letterSpace,
			[]string{"AAAA BBBB"},
		},
		{
			"greedy wrap",
			"AAAA BBBB CCCC", 10 * letterSpace,
			[]string{"AAAA BBBB", "CCCC"},
		},
		{
			"word longer than the line stands alone",
			"A BBBBBBBBBBBB C", 6 * letterSpace,
			[]string{"A", "BBBBBBBBBBBB", "C"},
		},
		{"empty", "", 100, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapQuote(tt.text, tt.maxWidth)
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestQuoteSpawnSkipsSpaces(t *testing.T) {
	g := newTestGame()
	g.Now = g.Cfg.QuoteInterval

	g.maybeSpawnQuote()
	if len(g.Letters) == 0 {
		t.Fatal("no letters spawned")
	}
	for i := range g.Letters {
		l := &g.Letters[i]
		if l.Ch == ' ' {
			t.Fatal("space spawned as a pickup")
		}
		if _, ok := glyphs[l.Ch]; !ok {
			t.Fatalf("letter %q has no glyph", l.Ch)
		}
		if l.Life != g.Cfg.LetterLife {
			t.Errorf("letter life = %v, want %v", l.Life, g.Cfg.LetterLife)
		}
	}
}

func TestQuoteCadence(t *testing.T) {
	g := newTestGame()
	g.Now = g.Cfg.QuoteInterval
	g.maybeSpawnQuote()
	n := len(g.Letters)

	g.Now += 1
	g.maybeSpawnQuote()
	if len(g.Letters) != n {
		t.Error("quote spawned inside one cadence period")
	}
}

func TestLettersExpire(t *testing.T) {
	g := newTestGame()
	g.Letters = append(g.Letters, FloatingLetter{Ch: 'A', Life: 0.1})
	g.Letters = append(g.Letters, FloatingLetter{Ch: 'B', Life: 5})

	g.updateLetters(0.2)
	if len(g.Letters) != 1 {
		t.Fatalf("letters = %d, want 1", len(g.Letters))
	}
	if g.Letters[0].Ch != 'B' {
		t.Error("wrong letter expired")
	}
}

func TestQuoteColumnsAdvancePerRune(t *testing.T) {
	// A multi-byte rune must occupy a single column, not one per byte.
	orig := quotes
	quotes = []quote{{"ÆB", "X"}}
	defer func() { quotes = orig }()

	g := newTestGame()
	g.Now = g.Cfg.QuoteInterval
	g.maybeSpawnQuote()

	// Top row is the quote line; the attribution sits one line below.
	minY := math.Inf(1)
	for i := range g.Letters {
		if g.Letters[i].Y < minY {
			minY = g.Letters[i].Y
		}
	}
	var xs []float64
	for i := range g.Letters {
		if g.Letters[i].Y == minY {
			xs = append(xs, g.Letters[i].X)
		}
	}
	sort.Float64s(xs)
	if len(xs) != 2 {
		t.Fatalf("top row letters = %d, want 2", len(xs))
	}
	if d := xs[1] - xs[0]; math.Abs(d-letterSpace) > 1e-9 {
		t.Errorf("glyph advance = %v, want %v", d, letterSpace)
	}
}

func TestQuoteBlockCentered(t *testing.T) {
	g := newTestGame()
	g.Now = g.Cfg.QuoteInterval
	g.maybeSpawnQuote()

	// Every letter lands within the arena horizontally.
	for i := range g.Letters {
		l := &g.Letters[i]
		if l.X < 0 || l.X > g.W {
			t.Fatalf("letter at x=%v outside the arena", l.X)
		}
	}
}
