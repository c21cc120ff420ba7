package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trackmaster/trackmaster/internal/models"
	"github.com/trackmaster/trackmaster/internal/tui/components"
	"github.com/trackmaster/trackmaster/internal/tui/layers"
	"github.com/trackmaster/trackmaster/internal/tui/notifications"
	"github.com/trackmaster/trackmaster/internal/tui/state"
)

// headerHeight is the sprint tab bar: top border, titles, bottom border
const headerHeight = 3

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}
	if modal := m.modalLayer(); modal != nil {
		layerStack = append(layerStack, modal)
	}
	layerStack = append(layerStack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// viewBoard renders the header, the three columns and the status bar
func (m Model) viewBoard() string {
	width, height := m.UiState.Width(), m.UiState.Height()

	header := components.RenderHeader(components.HeaderProps{
		Sprints:    m.Store.Sprints(),
		SelectedID: m.Store.SprintID(),
		User:       m.Session.String(),
		Width:      width,
	})
	footer := components.RenderStatusBar(components.StatusBarProps{
		Left:  m.statusLeft(),
		Right: m.statusRight(),
		Width: width,
	})

	bodyHeight := max(height-headerHeight-1, 3)

	var body string
	switch {
	case m.busy():
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading sprint...")
	case len(m.Store.Sprints()) == 0:
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center,
			components.SubtleStyle.Render(components.NoSprintsText))
	default:
		body = m.viewColumns(width, bodyHeight)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)

	// Constrain content to fit terminal height, leaving room for footer
	lines := strings.Split(content, "\n")
	if maxLines := max(height-1, 1); len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n") + "\n" + footer
}

func (m Model) viewColumns(width, height int) string {
	cols := m.Store.Columns()
	grabbing := m.UiState.Mode() == state.GrabMode && m.DragState.Active()
	if grabbing {
		cols = dragPreview(cols, m.DragState.TaskID(), m.DragState)
	}
	target, _ := m.DragState.Target()

	columnWidth := max(width/len(cols), 16)
	rendered := make([]string, 0, len(cols))
	for i, col := range cols {
		grabbedID := 0
		if grabbing {
			grabbedID = m.DragState.TaskID()
		}
		out, offset := components.RenderColumn(components.ColumnProps{
			Column:        col,
			Members:       m.Members,
			Focused:       i == m.UiState.SelectedColumn(),
			SelectedIdx:   m.UiState.SelectedTask(),
			GrabbedID:     grabbedID,
			DropTarget:    grabbing && col.ID == target,
			IsExpanded:    m.UiState.IsExpanded,
			PreviewLength: m.Config.UI.DescriptionPreview,
			Offset:        m.UiState.TaskScrollOffset(i),
			Width:         columnWidth,
			Height:        height,
		})
		// keep the window so scrolling does not jump between frames
		m.UiState.SetTaskScrollOffset(i, offset)
		rendered = append(rendered, out)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// dragPreview shows the grabbed card at its drop target without touching the store
func dragPreview(cols []models.Column, taskID int, drag *state.DragState) []models.Column {
	from, fromIdx := drag.Source()
	to, toIdx := drag.Target()

	var grabbed *models.Task
	for i := range cols {
		if cols[i].ID != from || fromIdx >= len(cols[i].Tasks) || cols[i].Tasks[fromIdx].ID != taskID {
			continue
		}
		grabbed = cols[i].Tasks[fromIdx]
		cols[i].Tasks = append(cols[i].Tasks[:fromIdx:fromIdx], cols[i].Tasks[fromIdx+1:]...)
	}
	if grabbed == nil {
		return cols
	}
	for i := range cols {
		if cols[i].ID != to {
			continue
		}
		idx := max(min(toIdx, len(cols[i].Tasks)), 0)
		tasks := make([]*models.Task, 0, len(cols[i].Tasks)+1)
		tasks = append(tasks, cols[i].Tasks[:idx]...)
		tasks = append(tasks, grabbed)
		tasks = append(tasks, cols[i].Tasks[idx:]...)
		cols[i].Tasks = tasks
	}
	return cols
}

func (m Model) statusLeft() string {
	switch m.UiState.Mode() {
	case state.GrabMode:
		return "moving card: arrows to aim, space/enter to drop, esc to cancel"
	}
	if sp, ok := m.Store.Sprint(); ok {
		if r := components.SprintRange(sp); r != "" {
			return sp.Title + "  " + r
		}
		return sp.Title
	}
	return "TrackMaster"
}

func (m Model) statusRight() string {
	if n := len(m.Store.Pending()); n > 0 {
		return fmt.Sprintf("saving %d change(s)…", n)
	}
	return "press " + m.Config.KeyMappings.ShowHelp + " for help"
}

// ============================================================================
// MODAL LAYERS
// ============================================================================

func (m Model) modalLayer() *lipgloss.Layer {
	width, height := m.UiState.Width(), m.UiState.Height()

	switch m.UiState.Mode() {
	case state.CreateMode, state.EditMode:
		if m.dialog == nil {
			return nil
		}
		return layers.CreateCenteredLayer(m.dialog.View(layers.OverlayWidth(width)), width, height)

	case state.DeleteConfirmMode:
		if m.deleteForm == nil {
			return nil
		}
		box := components.DeleteConfirmBoxStyle.
			Width(50).
			Render(m.deleteForm.View() + "\n\n" + components.SubtleStyle.Render("[y]es  [n]o"))
		return layers.CreateCenteredLayer(box, width, height)

	case state.DetailMode:
		task, ok := m.Store.Task(m.detailTaskID)
		if !ok {
			return nil
		}
		detail := components.RenderTaskView(components.TaskViewProps{
			Task:      task,
			Assignees: m.Members.Names(task.AssignedTo),
			Width:     max(min(width-4, 90), 20),
		})
		return layers.CreateCenteredLayer(detail, width, height)

	case state.HelpMode:
		help := components.HelpBoxStyle.
			Width(50).
			Render(components.GenerateHelpText(m.Config.KeyMappings))
		return layers.CreateCenteredLayer(help, width, height)
	}
	return nil
}
