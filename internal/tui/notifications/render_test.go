package notifications

import (
	"strings"
	"testing"

	"github.com/trackmaster/trackmaster/internal/tui/state"
)

func TestRenderIncludesHeadingAndMessage(t *testing.T) {
	out := Render(state.LevelError, "Could not save task")
	if !strings.Contains(out, "Could not sync") {
		t.Errorf("expected heading in %q", out)
	}
	if !strings.Contains(out, "Could not save task") {
		t.Errorf("expected message in %q", out)
	}
}

func TestRenderHeadingPerLevel(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		want  string
	}{
		{state.LevelInfo, "Info"},
		{state.LevelWarning, "Warning"},
		{state.LevelError, "Could not sync"},
		{state.NotificationLevel(42), "Info"},
	}
	for _, tt := range tests {
		if got := Render(tt.level, "x"); !strings.Contains(got, tt.want) {
			t.Errorf("Render(%d) = %q, want heading %q", tt.level, got, tt.want)
		}
	}
}

func TestRenderFromState(t *testing.T) {
	out := RenderFromState(state.Notification{ID: 1, Level: state.LevelWarning, Message: "Reviewed tasks are locked"})
	if !strings.Contains(out, "Reviewed tasks are locked") {
		t.Errorf("expected message, got %q", out)
	}
	if !strings.Contains(out, "Warning") {
		t.Errorf("expected warning banner, got %q", out)
	}
}
