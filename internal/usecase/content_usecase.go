package usecase

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"
	"github.com/otaviobrantes/lumen/internal/youtube"
	"github.com/otaviobrantes/lumen/pkg/logger"
	"github.com/otaviobrantes/lumen/pkg/s3"

	"github.com/redis/go-redis/v9"
)

// Upload type selector of the authoring form.
const (
	UploadTypeLink = "link"
	UploadTypeFile = "file"
)

const (
	uploadTimeout  = 2 * time.Minute
	inflightTTL    = 2 * time.Minute
	inflightPrefix = "inflight:video:"
)

// ErrSubmissionInFlight rejects a duplicate submit while the previous one
// for the same row is still running.
var ErrSubmissionInFlight = fmt.Errorf("a submission for this video is already in progress")

// Storage is the slice of the object-storage client the workflow needs.
type Storage interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

// FrameExtractor captures a still frame and probes the duration of a
// local video file.
type FrameExtractor interface {
	CaptureFrame(ctx context.Context, source string) (string, error)
	ProbeDuration(ctx context.Context, source string) (string, error)
}

// VideoDraft is the transient authoring form state for a create or edit.
// An empty ID means create. On edit, text fields left empty fall back to
// the values of the row being edited; IsPremium has no unset state and the
// submitted value always wins.
type VideoDraft struct {
	ID          string
	Title       string
	Description string
	Category    string
	Duration    string
	IsPremium   bool

	UploadType   string // "link" or "file"
	ExternalLink string
	VideoFile    *multipart.FileHeader

	ThumbnailFile         *multipart.FileHeader
	GeneratedThumbnailURL string
	AutoThumbnail         bool // capture a frame from the uploaded file
}

type ContentUseCase interface {
	Submit(ctx context.Context, session *entity.Session, draft *VideoDraft) (*entity.Video, error)
	Delete(ctx context.Context, videoID string) error
	LinkThumbnail(link string) (string, error)
}

type contentUseCase struct {
	videoRepo   persistent.VideoRepository
	storage     Storage
	frames      FrameExtractor
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewContentUseCase(
	videoRepo persistent.VideoRepository,
	storage Storage,
	frames FrameExtractor,
	redisClient *redis.Client,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		videoRepo:   videoRepo,
		storage:     storage,
		frames:      frames,
		redisClient: redisClient,
		logger:      logger,
	}
}

// LinkThumbnail derives the predictable cover image for an external link.
func (uc *contentUseCase) LinkThumbnail(link string) (string, error) {
	id, ok := youtube.ParseVideoID(link)
	if !ok {
		return "", errs.ErrInvalidLink
	}
	return youtube.CoverURL(id), nil
}

// Submit validates the draft, resolves binaries and URLs, then inserts or
// updates the row. Validation runs before any upload or database call;
// a zero-row mutation surfaces as a policy denial, never a success.
func (uc *contentUseCase) Submit(ctx context.Context, session *entity.Session, draft *VideoDraft) (*entity.Video, error) {
	if draft.Title == "" {
		return nil, errs.Validation("title")
	}
	if draft.Category == "" {
		return nil, errs.Validation("category")
	}

	isEdit := draft.ID != ""

	if !isEdit {
		hasThumbnail := draft.ThumbnailFile != nil ||
			draft.GeneratedThumbnailURL != "" ||
			(draft.AutoThumbnail && draft.UploadType == UploadTypeFile && draft.VideoFile != nil)
		if !hasThumbnail {
			return nil, errs.Validation("thumbnail")
		}
		if draft.UploadType == UploadTypeLink && draft.ExternalLink == "" {
			return nil, errs.Validation("video")
		}
		if draft.UploadType == UploadTypeFile && draft.VideoFile == nil {
			return nil, errs.Validation("video")
		}
	}

	var prev *entity.Video
	if isEdit {
		var err error
		prev, err = uc.videoRepo.GetByID(ctx, draft.ID)
		if err != nil {
			return nil, err
		}
	}

	release, err := uc.acquireInflight(ctx, draft.ID, session.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	// Stage the uploaded file locally once; frame capture and the storage
	// upload both read from it.
	var stagedVideoPath string
	if draft.UploadType == UploadTypeFile && draft.VideoFile != nil {
		stagedVideoPath, err = stageUpload(draft.VideoFile)
		if err != nil {
			return nil, fmt.Errorf("failed to stage video file: %w", err)
		}
		defer os.Remove(stagedVideoPath)
	}

	videoURL, source, err := uc.resolveVideoURL(ctx, draft, prev, stagedVideoPath)
	if err != nil {
		return nil, err
	}

	thumbnailURL, err := uc.resolveThumbnailURL(ctx, draft, prev, stagedVideoPath)
	if err != nil {
		return nil, err
	}

	duration := draft.Duration
	if duration == "" && stagedVideoPath != "" {
		if probed, err := uc.frames.ProbeDuration(ctx, stagedVideoPath); err == nil {
			duration = probed
		} else {
			uc.logger.Warn("Duration probe failed: %v", err)
		}
	}
	if duration == "" && isEdit {
		duration = prev.Duration
	}
	if duration == "" {
		duration = "Unknown"
	}

	description := draft.Description
	if description == "" && isEdit {
		description = prev.Description
	}

	video := &entity.Video{
		ID:           draft.ID,
		Title:        draft.Title,
		Description:  description,
		Category:     draft.Category,
		Duration:     duration,
		IsPremium:    draft.IsPremium,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Source:       source,
	}

	if isEdit {
		video.UploaderID = prev.UploaderID
		if err := uc.videoRepo.Update(ctx, video); err != nil {
			return nil, err
		}
		return video, nil
	}

	video.UploaderID = session.ID
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// Delete removes a row with affected-row confirmation, then cleans up the
// objects the row pointed at. The confirm step of the two-step flow lives
// at the API surface; this is the execute step.
func (uc *contentUseCase) Delete(ctx context.Context, videoID string) error {
	release, err := uc.acquireInflight(ctx, videoID, "")
	if err != nil {
		return err
	}
	defer release()

	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}

	// The row is gone either way; an orphaned object is only logged.
	if video.Source == entity.SourceUpload {
		uc.removeObject(video.VideoURL)
	}
	uc.removeObject(video.ThumbnailURL)
	return nil
}

// removeObject deletes a stored object by its public URL. External URLs,
// like generated YouTube covers, carry no managed key and are skipped.
func (uc *contentUseCase) removeObject(url string) {
	key, ok := s3.KeyFromURL(url)
	if !ok {
		return
	}
	if err := uc.storage.DeleteFile(key); err != nil {
		uc.logger.Warn("Object cleanup failed for %s: %v", key, err)
	}
}

// resolveVideoURL picks the stored URL and source discriminator. External
// links normalize to the canonical embed form when an id is extractable;
// otherwise the raw link is kept and tagged as such. Edits without a new
// link or file keep the previous values.
func (uc *contentUseCase) resolveVideoURL(ctx context.Context, draft *VideoDraft, prev *entity.Video, stagedVideoPath string) (string, entity.VideoSource, error) {
	switch draft.UploadType {
	case UploadTypeLink:
		if id, ok := youtube.ParseVideoID(draft.ExternalLink); ok {
			return youtube.EmbedURL(id), entity.SourceEmbed, nil
		}
		if draft.ExternalLink != "" {
			return draft.ExternalLink, entity.SourceLink, nil
		}
	case UploadTypeFile:
		if stagedVideoPath != "" {
			url, err := uc.uploadStaged(ctx, stagedVideoPath, draft.VideoFile, s3.FolderVideos, "video/mp4")
			if err != nil {
				return "", "", err
			}
			return url, entity.SourceUpload, nil
		}
	}

	if prev != nil {
		return prev.VideoURL, prev.Source, nil
	}
	return "", "", errs.Validation("video")
}

// resolveThumbnailURL uploads a newly selected image, keeps a generated
// cover URL, captures a frame from the staged file, or falls back to the
// previous thumbnail on edits, in that order.
func (uc *contentUseCase) resolveThumbnailURL(ctx context.Context, draft *VideoDraft, prev *entity.Video, stagedVideoPath string) (string, error) {
	if draft.ThumbnailFile != nil {
		src, err := draft.ThumbnailFile.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open thumbnail file: %w", err)
		}
		defer src.Close()

		contentType := draft.ThumbnailFile.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
		defer cancel()

		url, err := uc.storage.UploadFile(uploadCtx, s3.GenerateKey(s3.FolderThumbnails, draft.ThumbnailFile.Filename), src, contentType)
		if err != nil {
			return "", fmt.Errorf("%w: %v", errs.ErrUpload, err)
		}
		return url, nil
	}

	if draft.GeneratedThumbnailURL != "" {
		return draft.GeneratedThumbnailURL, nil
	}

	if draft.AutoThumbnail && stagedVideoPath != "" {
		framePath, err := uc.frames.CaptureFrame(ctx, stagedVideoPath)
		if err != nil {
			return "", err
		}
		defer os.Remove(framePath)

		frame, err := os.Open(framePath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", errs.ErrThumbnailCapture, err)
		}
		defer frame.Close()

		uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
		defer cancel()

		url, err := uc.storage.UploadFile(uploadCtx, s3.GenerateKey(s3.FolderThumbnails, "thumb.jpg"), frame, "image/jpeg")
		if err != nil {
			return "", fmt.Errorf("%w: %v", errs.ErrUpload, err)
		}
		return url, nil
	}

	if prev != nil {
		return prev.ThumbnailURL, nil
	}
	return "", errs.Validation("thumbnail")
}

func (uc *contentUseCase) uploadStaged(ctx context.Context, path string, header *multipart.FileHeader, folder, defaultContentType string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	url, err := uc.storage.UploadFile(uploadCtx, s3.GenerateKey(folder, header.Filename), file, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUpload, err)
	}
	return url, nil
}

// acquireInflight takes the per-row duplicate-submission guard. Unrelated
// rows stay independently submittable.
func (uc *contentUseCase) acquireInflight(ctx context.Context, videoID, sessionID string) (func(), error) {
	key := inflightPrefix + videoID
	if videoID == "" {
		key = inflightPrefix + "new:" + sessionID
	}

	ok, err := uc.redisClient.SetNX(ctx, key, "1", inflightTTL).Result()
	if err != nil {
		// The guard is best-effort; a cache outage must not block authoring.
		uc.logger.Warn("In-flight guard unavailable: %v", err)
		return func() {}, nil
	}
	if !ok {
		return nil, ErrSubmissionInFlight
	}
	return func() {
		uc.redisClient.Del(context.Background(), key)
	}, nil
}

func stageUpload(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dest, err := os.CreateTemp("", "lumen-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(dest.Name())
		return "", err
	}
	return dest.Name(), nil
}
