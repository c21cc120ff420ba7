package components

const (
	columnBorderOverhead = 2 // top and bottom border
	headerLines          = 1 // column name and count
	indicatorLines       = 2 // "more above" and "more below" rows

	// DefaultPreviewLength is how much of a description a collapsed card shows
	DefaultPreviewLength = 100

	moreLabel = "more"
	lessLabel = "less"

	// EmptyColumnText is shown in a column with no cards
	EmptyColumnText = "No tasks"
	// NoSprintsText replaces the board when the group has no sprints
	NoSprintsText = "No sprints for this group"
)
