package entity

import "time"

// VideoSource tells the player how to render a video. It is stored
// alongside the URL so playback never has to guess from the URL shape.
type VideoSource string

const (
	SourceEmbed  VideoSource = "embed"  // external provider embed (YouTube)
	SourceUpload VideoSource = "upload" // file in object storage
	SourceLink   VideoSource = "link"   // raw external link, played as-is
)

type Video struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	ThumbnailURL  string      `json:"thumbnail_url"`
	VideoURL      string      `json:"video_url"`
	Source        VideoSource `json:"source"`
	Duration      string      `json:"duration"`
	Category      string      `json:"category"`
	IsPremium     bool        `json:"is_premium"`
	IsNew         bool        `json:"is_new"`
	Progress      *int        `json:"progress,omitempty"`
	UploaderID    string      `json:"uploader_id,omitempty"`
	UploaderEmail string      `json:"uploader_email,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
