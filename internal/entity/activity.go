package entity

type ActivityType string

const (
	ActivityPDF      ActivityType = "PDF"
	ActivityColoring ActivityType = "COLORING"
	ActivityPuzzle   ActivityType = "PUZZLE"
	ActivityGame     ActivityType = "GAME"
)

type ActivityDifficulty string

const (
	DifficultyEasy   ActivityDifficulty = "Easy"
	DifficultyMedium ActivityDifficulty = "Medium"
	DifficultyHard   ActivityDifficulty = "Hard"
)

// Activity is printable family-zone content. Bundled, read-only at runtime.
type Activity struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Type         ActivityType       `json:"type"`
	ThumbnailURL string             `json:"thumbnail_url"`
	DownloadURL  string             `json:"download_url"`
	Difficulty   ActivityDifficulty `json:"difficulty"`
}
