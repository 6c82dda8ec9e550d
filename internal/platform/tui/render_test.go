package tui

import (
	"strings"
	"testing"

	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
)

func TestRenderFramePacksPixelPairs(t *testing.T) {
	f := core.NewFrame(4, 4)
	f.SetPixel(0, 0) // top only
	f.SetPixel(1, 1) // bottom only
	f.SetPixel(2, 0) // both
	f.SetPixel(2, 1)

	out := RenderFrame(f)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2 for a 4-pixel-high frame", len(rows))
	}
	if rows[0] != "▀▄█ " {
		t.Errorf("row 0 = %q, expected %q", rows[0], "▀▄█ ")
	}
	if rows[1] != "    " {
		t.Errorf("row 1 = %q, expected blank", rows[1])
	}
}

func TestRenderFrameTextOverlay(t *testing.T) {
	f := core.NewFrame(16, 16)
	f.PrintLine("hi", 0)

	rows := strings.Split(RenderFrame(f), "\n")
	// The first text band covers pixel rows 0-7, terminal rows 0-3; the
	// overlay lands on the middle row.
	if !strings.Contains(rows[2], "hi") {
		t.Errorf("row 2 = %q, expected the overlay text", rows[2])
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab  " {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText must not truncate, got %q", got)
	}
}
