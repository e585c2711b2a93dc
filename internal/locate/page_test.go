package locate

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// chars builds a run of characters on one baseline starting at x.
// Each character is w points wide with no gap between them.
func chars(s string, x, y, w, size float64) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, pdf.Text{
			S:        string(r),
			X:        x,
			Y:        y,
			W:        w,
			FontSize: size,
		})
		x += w
	}
	return out
}

// TestPageText tests line assembly from positioned characters.
func TestPageText(t *testing.T) {
	t.Parallel()

	t.Run("single line", func(t *testing.T) {
		t.Parallel()

		p := NewPage(chars("hello", 10, 700, 6, 12))
		if got := p.Text(); got != "hello" {
			t.Errorf("Text() = %q, want %q", got, "hello")
		}
	})

	t.Run("lines ordered top to bottom", func(t *testing.T) {
		t.Parallel()

		var cs []pdf.Text
		cs = append(cs, chars("below", 10, 650, 6, 12)...)
		cs = append(cs, chars("above", 10, 700, 6, 12)...)

		p := NewPage(cs)
		if got := p.Text(); got != "above\nbelow" {
			t.Errorf("Text() = %q, want %q", got, "above\nbelow")
		}
	})

	t.Run("baseline jitter stays on one line", func(t *testing.T) {
		t.Parallel()

		var cs []pdf.Text
		cs = append(cs, pdf.Text{S: "a", X: 10, Y: 700.0, W: 6, FontSize: 12})
		cs = append(cs, pdf.Text{S: "b", X: 16, Y: 700.8, W: 6, FontSize: 12})

		p := NewPage(cs)
		if got := p.Text(); got != "ab" {
			t.Errorf("Text() = %q, want %q", got, "ab")
		}
	})

	t.Run("wide gap becomes a space", func(t *testing.T) {
		t.Parallel()

		var cs []pdf.Text
		cs = append(cs, chars("foo", 10, 700, 6, 12)...)
		cs = append(cs, chars("bar", 50, 700, 6, 12)...)

		p := NewPage(cs)
		if got := p.Text(); got != "foo bar" {
			t.Errorf("Text() = %q, want %q", got, "foo bar")
		}
	})

	t.Run("empty page", func(t *testing.T) {
		t.Parallel()

		p := NewPage(nil)
		if got := p.Text(); got != "" {
			t.Errorf("Text() = %q, want empty", got)
		}
	})
}

// TestPageFind tests literal term search and match geometry.
func TestPageFind(t *testing.T) {
	t.Parallel()

	t.Run("finds single occurrence with box", func(t *testing.T) {
		t.Parallel()

		// "say secret now" with 6pt glyphs starting at x=10.
		p := NewPage(chars("say secret now", 10, 700, 6, 12))

		rects := p.Find("secret")
		if len(rects) != 1 {
			t.Fatalf("Find returned %d rects, want 1", len(rects))
		}
		r := rects[0]
		// "secret" occupies character cells 4..9: x in [34, 70).
		if r.LLx != 34 || r.URx != 70 {
			t.Errorf("box x-range = [%g, %g], want [34, 70]", r.LLx, r.URx)
		}
		if r.LLy >= 700 || r.URy <= 700 {
			t.Errorf("box y-range [%g, %g] does not straddle the baseline", r.LLy, r.URy)
		}
	})

	t.Run("finds multiple occurrences in order", func(t *testing.T) {
		t.Parallel()

		var cs []pdf.Text
		cs = append(cs, chars("key and key", 10, 700, 6, 12)...)
		cs = append(cs, chars("key", 10, 650, 6, 12)...)

		p := NewPage(cs)
		rects := p.Find("key")
		if len(rects) != 3 {
			t.Fatalf("Find returned %d rects, want 3", len(rects))
		}
		if rects[0].LLx >= rects[1].LLx {
			t.Errorf("same-line matches out of order: %g then %g", rects[0].LLx, rects[1].LLx)
		}
		if rects[2].URy >= rects[0].LLy {
			t.Errorf("second-line match not below first line")
		}
	})

	t.Run("matches do not overlap", func(t *testing.T) {
		t.Parallel()

		p := NewPage(chars("aaaa", 10, 700, 6, 12))
		if got := len(p.Find("aa")); got != 2 {
			t.Errorf("Find(aa) in aaaa = %d matches, want 2 non-overlapping", got)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		t.Parallel()

		p := NewPage(chars("Secret", 10, 700, 6, 12))
		if got := len(p.Find("secret")); got != 0 {
			t.Errorf("Find(secret) = %d matches, want 0", got)
		}
	})

	t.Run("term with space matches across gap", func(t *testing.T) {
		t.Parallel()

		var cs []pdf.Text
		cs = append(cs, chars("John", 10, 700, 6, 12)...)
		cs = append(cs, chars("Smith", 40, 700, 6, 12)...)

		p := NewPage(cs)
		rects := p.Find("John Smith")
		if len(rects) != 1 {
			t.Fatalf("Find returned %d rects, want 1", len(rects))
		}
		if rects[0].LLx != 10 || rects[0].URx != 70 {
			t.Errorf("box x-range = [%g, %g], want [10, 70]", rects[0].LLx, rects[0].URx)
		}
	})

	t.Run("absent term yields nothing", func(t *testing.T) {
		t.Parallel()

		p := NewPage(chars("nothing here", 10, 700, 6, 12))
		if got := p.Find("missing"); got != nil {
			t.Errorf("Find = %v, want nil", got)
		}
	})

	t.Run("empty term yields nothing", func(t *testing.T) {
		t.Parallel()

		p := NewPage(chars("text", 10, 700, 6, 12))
		if got := p.Find(""); got != nil {
			t.Errorf("Find(\"\") = %v, want nil", got)
		}
	})
}
