package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestStatuses_Order(t *testing.T) {
	assert.Equal(t, []Status{StatusTodo, StatusInProgress, StatusDone}, Statuses())
	for i, s := range Statuses() {
		assert.Equal(t, i, s.Index())
		assert.True(t, s.Valid())
	}
	assert.Equal(t, -1, Status("blocked").Index())
	assert.False(t, Status("blocked").Valid())
}

func TestStatus_Title(t *testing.T) {
	assert.Equal(t, "To Do", StatusTodo.Title())
	assert.Equal(t, "In Progress", StatusInProgress.Title())
	assert.Equal(t, "Done", StatusDone.Title())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"todo", StatusTodo},
		{"To Do", StatusTodo},
		{"in_progress", StatusInProgress},
		{"In Progress", StatusInProgress},
		{" DONE ", StatusDone},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseStatus("archived")
	assert.True(t, errors.Is(err, ErrUnknownStatus))
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTask_IsLocked(t *testing.T) {
	assert.True(t, (&Task{Status: StatusDone, Reviewed: true}).IsLocked())
	assert.False(t, (&Task{Status: StatusDone}).IsLocked())
	assert.False(t, (&Task{Status: StatusInProgress, Reviewed: true}).IsLocked())
}

func TestTask_CloneIsDeep(t *testing.T) {
	orig := &Task{
		ID:         1,
		AssignedTo: Assignees{1, 2},
		Resources:  []Resource{{Type: ResourceLink, Name: "docs", URL: "https://example.com"}},
	}
	c := orig.Clone()
	c.AssignedTo[0] = 99
	c.Resources[0].Name = "changed"
	c.Title = "other"

	assert.Equal(t, 1, orig.AssignedTo[0])
	assert.Equal(t, "docs", orig.Resources[0].Name)
	assert.Empty(t, orig.Title)
	assert.Nil(t, (*Task)(nil).Clone())
}

func TestAssignees_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Assignees
	}{
		{"single id", `{"assigned_to": 3}`, Assignees{3}},
		{"list", `{"assigned_to": [1, 2]}`, Assignees{1, 2}},
		{"objects", `{"assigned_to": [{"id": 4, "name": "Ana"}]}`, Assignees{4}},
		{"single object", `{"assigned_to": {"id": 5}}`, Assignees{5}},
		{"null", `{"assigned_to": null}`, nil},
		{"missing", `{}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			require.NoError(t, json.Unmarshal([]byte(tt.json), &task))
			assert.Equal(t, tt.want, task.AssignedTo)
		})
	}

	var task Task
	assert.Error(t, json.Unmarshal([]byte(`{"assigned_to": "x"}`), &task))
}

func TestAssignees_Contains(t *testing.T) {
	a := Assignees{1, 5}
	assert.True(t, a.Contains(5))
	assert.False(t, a.Contains(2))
}

// ============================================================================
// Resource Tests
// ============================================================================

func TestStyleFor_Total(t *testing.T) {
	for _, rt := range ResourceTypes() {
		style, err := StyleFor(rt)
		require.NoError(t, err, rt)
		assert.NotEmpty(t, style.Glyph)
		assert.Equal(t, string(rt), style.Label)
	}
	_, err := StyleFor("video")
	assert.True(t, errors.Is(err, ErrUnknownResourceType))
}

func TestResource_UnknownTypeIsKept(t *testing.T) {
	var task Task
	raw := `{"id":1,"resources":[{"type":"video","name":"x","url":"y"},{"type":"file","name":"a.pdf","url":"/f/a.pdf"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &task))
	require.Len(t, task.Resources, 2)

	assert.Equal(t, ResourceType("video"), task.Resources[0].Type)
	assert.Equal(t, ResourceStyle{Glyph: "?", Label: "video"}, task.Resources[0].Style())
	assert.Equal(t, "📄", task.Resources[1].Style().Glyph)
	assert.Equal(t, "unknown", Resource{URL: "u"}.Style().Label)
}

func TestResource_DisplayName(t *testing.T) {
	assert.Equal(t, "spec", Resource{Name: "spec", URL: "u"}.DisplayName())
	assert.Equal(t, "u", Resource{URL: "u"}.DisplayName())
}

// ============================================================================
// Sprint Tests
// ============================================================================

func TestSprint_DateFormats(t *testing.T) {
	var s Sprint
	raw := `{"id":2,"title":"Sprint 2","start_date":"2024-03-01","end_date":"2024-03-15T00:00:00Z"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, NewDate(2024, time.March, 1), s.StartDate)
	assert.Equal(t, NewDate(2024, time.March, 15), s.EndDate)
	assert.Equal(t, "2024-03-15", s.EndDate.String())

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"title":"Sprint 2","start_date":"2024-03-01","end_date":"2024-03-15"}`, string(out))
}

func TestSprint_EmptyDates(t *testing.T) {
	var s Sprint
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"start_date":null,"end_date":""}`), &s))
	assert.True(t, s.StartDate.IsZero())
	assert.Equal(t, "", s.EndDate.String())

	assert.Error(t, json.Unmarshal([]byte(`{"start_date":"March"}`), &s))
}

// ============================================================================
// Member Tests
// ============================================================================

func TestGroup_AssignableDeduplicates(t *testing.T) {
	rep := TeamMember{ID: 1, Name: "Ana", LastName: "Rojas"}
	g := Group{
		Representative: &rep,
		Members: []TeamMember{
			{ID: 2, Name: "Luis"},
			{ID: 1, Name: "Ana", LastName: "Rojas"},
			{ID: 3, Name: "Eva"},
		},
	}
	got := g.Assignable()
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})

	empty := Group{}
	assert.Empty(t, empty.Assignable())
}

func TestMemberDirectory_Names(t *testing.T) {
	dir := NewMemberDirectory([]TeamMember{{ID: 1, Name: "Ana", LastName: "Rojas"}})

	assert.Equal(t, "Ana Rojas", dir.NameOf(1))
	assert.Equal(t, UnassignedLabel, dir.NameOf(42))
	assert.Equal(t, []string{"Ana Rojas", "unassigned"}, dir.Names([]int{1, 42}))
	assert.Equal(t, []string{"unassigned"}, dir.Names(nil))
}
