package database

import (
	"context"
	"fmt"
	"time"

	"github.com/trackmaster/trackmaster/internal/models"
)

// SeedResult identifies the demo rows created by Seed
type SeedResult struct {
	GroupID   int
	SprintIDs []int
	MemberIDs []int
}

// Seed inserts a demo group with two sprints and a handful of tasks.
// Starts are relative to now so the first sprint is always current.
func Seed(ctx context.Context, repo *Repository, now time.Time) (*SeedResult, error) {
	groupID, err := repo.Groups.CreateGroup(ctx, "Demo Team")
	if err != nil {
		return nil, err
	}
	result := &SeedResult{GroupID: groupID}

	people := []struct {
		name, lastName string
		representative bool
	}{
		{"Ana", "Rojas", true},
		{"Luis", "Vargas", false},
		{"Eva", "Mendez", false},
	}
	for _, p := range people {
		m, err := repo.Groups.CreateMember(ctx, groupID, p.name, p.lastName, p.representative)
		if err != nil {
			return nil, err
		}
		result.MemberIDs = append(result.MemberIDs, m.ID)
	}

	y, mo, d := now.Date()
	for i := 0; i < 2; i++ {
		s := models.NewDate(y, mo, d+14*i)
		e := models.NewDate(y, mo, d+14*i+13)
		sprint, err := repo.Sprints.Create(ctx, groupID, fmt.Sprintf("Sprint %d", i+1), s, e)
		if err != nil {
			return nil, err
		}
		result.SprintIDs = append(result.SprintIDs, sprint.ID)
	}

	ana, luis, eva := result.MemberIDs[0], result.MemberIDs[1], result.MemberIDs[2]
	tasks := []struct {
		sprint      int
		title       string
		description string
		assignees   []int
		status      models.Status
		reviewed    bool
		resources   []models.Resource
	}{
		{0, "Write spec", "Draft the requirements document for the board and agree on the REST contract with the backend team.", []int{ana}, models.StatusTodo, false,
			[]models.Resource{{Type: models.ResourceLink, Name: "Contract", URL: "https://example.com/contract"}}},
		{0, "Design database", "Tables for groups, sprints and tasks.", []int{luis}, models.StatusInProgress, false, nil},
		{0, "Set up CI", "Run the test suite on every push.", []int{eva, luis}, models.StatusDone, true,
			[]models.Resource{{Type: models.ResourceFile, Name: "pipeline.yml", URL: "https://example.com/files/pipeline.yml"}}},
		{0, "Sprint review notes", "Summarise the feedback from the last review.", []int{ana}, models.StatusDone, false, nil},
		{1, "Build kanban board", "Three columns with keyboard drag and drop.", []int{ana, eva}, models.StatusTodo, false, nil},
	}
	for _, t := range tasks {
		created, err := repo.Tasks.Create(ctx, result.SprintIDs[t.sprint], t.title, t.description, t.assignees)
		if err != nil {
			return nil, err
		}
		if t.status != models.StatusTodo {
			if _, err := repo.Tasks.Update(ctx, created.ID, t.title, t.description, t.assignees, t.status); err != nil {
				return nil, err
			}
		}
		for _, res := range t.resources {
			if err := repo.Tasks.AddResource(ctx, created.ID, res); err != nil {
				return nil, err
			}
		}
		if t.reviewed {
			if _, err := repo.Tasks.SetReviewed(ctx, created.ID, true); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
