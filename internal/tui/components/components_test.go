package components

import (
	"strings"
	"testing"

	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/models"
)

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 150)

	tests := []struct {
		name       string
		desc       string
		expanded   bool
		wantLen    int
		wantToggle string
	}{
		{name: "short description", desc: "short", wantLen: 5, wantToggle: ""},
		{name: "exactly the limit", desc: strings.Repeat("b", 100), wantLen: 100, wantToggle: ""},
		{name: "long collapsed", desc: long, wantLen: 101, wantToggle: "more"},
		{name: "long expanded", desc: long, expanded: true, wantLen: 150, wantToggle: "less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, toggle := TruncateDescription(tt.desc, 100, tt.expanded)
			if got := len([]rune(text)); got != tt.wantLen {
				t.Errorf("TruncateDescription() length = %d, want %d", got, tt.wantLen)
			}
			if toggle != tt.wantToggle {
				t.Errorf("TruncateDescription() toggle = %q, want %q", toggle, tt.wantToggle)
			}
		})
	}
}

func TestTruncateDescription_CountsRunes(t *testing.T) {
	desc := strings.Repeat("ñ", 101)
	text, toggle := TruncateDescription(desc, 0, false)
	if toggle != "more" {
		t.Fatalf("toggle = %q, want more", toggle)
	}
	if !strings.HasSuffix(text, "…") {
		t.Errorf("collapsed text %q should end with an ellipsis", text)
	}
	if got := len([]rune(text)); got != DefaultPreviewLength+1 {
		t.Errorf("collapsed length = %d, want %d", got, DefaultPreviewLength+1)
	}
}

func TestRenderTask(t *testing.T) {
	tests := []struct {
		name      string
		task      *models.Task
		assignees []string
		want      []string
		notWant   []string
	}{
		{
			name:      "unassigned task",
			task:      &models.Task{ID: 1, Title: "Write spec", Status: models.StatusTodo},
			assignees: []string{models.UnassignedLabel},
			want:      []string{"Write spec", "unassigned"},
			notWant:   []string{"reviewed", "[more]"},
		},
		{
			name: "reviewed and done",
			task: &models.Task{ID: 2, Title: "Ship", Status: models.StatusDone, Reviewed: true},
			want: []string{"Ship", "✔ reviewed"},
		},
		{
			name:    "reviewed but not done is not locked",
			task:    &models.Task{ID: 3, Title: "Ship", Status: models.StatusInProgress, Reviewed: true},
			notWant: []string{"✔ reviewed"},
		},
		{
			name: "long description",
			task: &models.Task{ID: 4, Title: "Long", Description: strings.Repeat("x ", 80)},
			want: []string{"[more]"},
		},
		{
			name: "resources",
			task: &models.Task{ID: 5, Title: "Docs", Resources: []models.Resource{
				{Type: models.ResourceFile, Name: "spec.pdf", URL: "https://files/spec.pdf"},
				{Type: models.ResourceLink, URL: "https://board"},
			}},
			want: []string{"1 📄 spec.pdf", "2 🔗"},
		},
		{
			name: "unknown resource type",
			task: &models.Task{ID: 6, Title: "Demo", Resources: []models.Resource{
				{Type: "video", Name: "walkthrough", URL: "https://v/1"},
				{Type: models.ResourceLink, Name: "board", URL: "https://board"},
			}},
			want: []string{"1 ? walkthrough", "2 🔗 board"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderTask(CardProps{Task: tt.task, Assignees: tt.assignees, Width: 60})
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("RenderTask() missing %q in\n%s", w, out)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("RenderTask() should not contain %q in\n%s", nw, out)
				}
			}
		})
	}
}

func TestRenderTask_ExpandedShowsLess(t *testing.T) {
	task := &models.Task{ID: 1, Title: "Long", Description: strings.Repeat("y ", 80)}
	out := RenderTask(CardProps{Task: task, Expanded: true, Width: 60})
	if !strings.Contains(out, "[less]") {
		t.Errorf("expanded card should offer [less]:\n%s", out)
	}
}

func TestRenderTaskView_UnknownResourceStillListed(t *testing.T) {
	task := &models.Task{ID: 1, Title: "Demo", Status: models.StatusTodo, Resources: []models.Resource{
		{Type: "video", Name: "walkthrough", URL: "https://v/1"},
	}}
	out := RenderTaskView(TaskViewProps{Task: task, Width: 70})
	for _, want := range []string{"1 ? walkthrough", "video · https://v/1"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTaskView() missing %q in\n%s", want, out)
		}
	}
}

func TestRenderColumn_Empty(t *testing.T) {
	out, offset := RenderColumn(ColumnProps{
		Column: models.Column{ID: models.StatusDone, Title: "Done"},
		Width:  30,
		Height: 20,
	})
	if !strings.Contains(out, "Done (0)") {
		t.Errorf("RenderColumn() missing header in\n%s", out)
	}
	if !strings.Contains(out, EmptyColumnText) {
		t.Errorf("RenderColumn() missing %q in\n%s", EmptyColumnText, out)
	}
	if offset != 0 {
		t.Errorf("offset = %d, want 0", offset)
	}
}

func TestRenderColumn_ResolvesAssignees(t *testing.T) {
	members := models.NewMemberDirectory([]models.TeamMember{{ID: 1, Name: "Ana", LastName: "Rojas"}})
	out, _ := RenderColumn(ColumnProps{
		Column: models.Column{ID: models.StatusTodo, Title: "To Do", Tasks: []*models.Task{
			{ID: 1, Title: "A", AssignedTo: models.Assignees{1}},
		}},
		Members: members,
		Width:   40,
		Height:  30,
	})
	if !strings.Contains(out, "Ana Rojas") {
		t.Errorf("RenderColumn() missing assignee name in\n%s", out)
	}
	if !strings.Contains(out, "To Do (1)") {
		t.Errorf("RenderColumn() missing header in\n%s", out)
	}
}

func TestVisibleWindow(t *testing.T) {
	// every card is two lines tall
	cards := []string{"a\na", "b\nb", "c\nc", "d\nd", "e\ne"}

	tests := []struct {
		name      string
		offset    int
		focus     int
		height    int
		wantStart int
		wantEnd   int
	}{
		{name: "everything fits", offset: 0, focus: 0, height: 20, wantStart: 0, wantEnd: 5},
		{name: "window from the top", offset: 0, focus: 1, height: 4, wantStart: 0, wantEnd: 2},
		{name: "slides down to the focus", offset: 0, focus: 4, height: 4, wantStart: 3, wantEnd: 5},
		{name: "slides up to the focus", offset: 3, focus: 1, height: 4, wantStart: 1, wantEnd: 3},
		{name: "no focus keeps the offset", offset: 2, focus: -1, height: 4, wantStart: 2, wantEnd: 4},
		{name: "tiny height still shows one card", offset: 0, focus: 2, height: 1, wantStart: 2, wantEnd: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleWindow(cards, tt.offset, tt.focus, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleWindow() = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRenderHeader(t *testing.T) {
	sprints := []models.Sprint{{ID: 1, Title: "Sprint 1"}, {ID: 2, Title: "Sprint 2"}}
	out := RenderHeader(HeaderProps{Sprints: sprints, SelectedID: 2, User: "Ana (student)", Width: 80})
	for _, want := range []string{"Sprint 1", "Sprint 2", "Ana (student)"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderHeader() missing %q in\n%s", want, out)
		}
	}

	empty := RenderHeader(HeaderProps{Width: 40})
	if !strings.Contains(empty, "no sprints") {
		t.Errorf("RenderHeader() with no sprints = %q", empty)
	}
}

func TestGenerateHelpText_UsesMappings(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.AddTask = "n"
	out := GenerateHelpText(km)
	if !strings.Contains(out, "n     Add new task") {
		t.Errorf("help text does not reflect the remapped key:\n%s", out)
	}
}
