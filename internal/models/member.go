package models

import "strings"

// TeamMember is read-only reference data supplied by the group service
type TeamMember struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

// FullName joins first and last name
func (m TeamMember) FullName() string {
	return strings.TrimSpace(m.Name + " " + m.LastName)
}

// Group is the group record returned by the group details endpoint
type Group struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Representative *TeamMember  `json:"representative"`
	Members        []TeamMember `json:"members"`
}

// Assignable returns the representative followed by the members, de-duplicated by ID
func (g *Group) Assignable() []TeamMember {
	seen := make(map[int]bool)
	out := make([]TeamMember, 0, len(g.Members)+1)
	add := func(m TeamMember) {
		if seen[m.ID] {
			return
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	if g.Representative != nil {
		add(*g.Representative)
	}
	for _, m := range g.Members {
		add(m)
	}
	return out
}

// MemberDirectory resolves member IDs to display names
type MemberDirectory map[int]TeamMember

// NewMemberDirectory indexes members by ID
func NewMemberDirectory(members []TeamMember) MemberDirectory {
	dir := make(MemberDirectory, len(members))
	for _, m := range members {
		dir[m.ID] = m
	}
	return dir
}

// UnassignedLabel is shown for an assignee ID that is not in the directory
const UnassignedLabel = "unassigned"

// NameOf returns the member's full name or UnassignedLabel
func (d MemberDirectory) NameOf(id int) string {
	m, ok := d[id]
	if !ok || m.FullName() == "" {
		return UnassignedLabel
	}
	return m.FullName()
}

// Names resolves every assignee. An empty list yields a single UnassignedLabel.
func (d MemberDirectory) Names(ids []int) []string {
	if len(ids) == 0 {
		return []string{UnassignedLabel}
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, d.NameOf(id))
	}
	return names
}
