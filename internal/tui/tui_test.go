package tui

import (
	"strings"
	"testing"

	"github.com/1broseidon/nudge/internal/ipc"
)

func TestWindowItemTitle(t *testing.T) {
	tests := []struct {
		name string
		info ipc.WindowInfo
		want string
	}{
		{"plain", ipc.WindowInfo{Title: "editor"}, "  editor"},
		{"focused", ipc.WindowInfo{Title: "editor", Focused: true}, "* editor"},
		{"minimized", ipc.WindowInfo{Title: "mail", Minimized: true}, "  mail (minimized)"},
		{"untitled falls back to app", ipc.WindowInfo{App: "term"}, "  term"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (windowItem{info: tt.info}).Title(); got != tt.want {
				t.Fatalf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewWindowsTabStartsEmpty(t *testing.T) {
	wt := NewWindowsTab(nil)
	if n := len(wt.list.Items()); n != 0 {
		t.Fatalf("new tab holds %d items, want 0", n)
	}
	if !strings.Contains(wt.View(), "no managed windows") {
		t.Fatal("empty tab view missing placeholder")
	}
}

func TestRenderStatusBar(t *testing.T) {
	connected := renderStatusBar(true, 2, 5, "", 80)
	if !strings.Contains(connected, "daemon connected") {
		t.Fatalf("connected bar = %q", connected)
	}
	if !strings.Contains(connected, "2 screens") || !strings.Contains(connected, "5 windows") {
		t.Fatalf("connected bar missing counts: %q", connected)
	}

	down := renderStatusBar(false, 0, 0, "", 80)
	if !strings.Contains(down, "daemon not running") {
		t.Fatalf("disconnected bar = %q", down)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "screen"); got != "1 screen" {
		t.Fatalf("plural(1) = %q", got)
	}
	if got := plural(3, "window"); got != "3 windows" {
		t.Fatalf("plural(3) = %q", got)
	}
}
