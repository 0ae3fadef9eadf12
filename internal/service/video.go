package service

import (
	"fmt"
	"os"
	"path/filepath"

	"filmbot/internal/domain"
	"filmbot/internal/repository"
)

// VideoService handles the code -> video file catalog
type VideoService struct {
	videoRepo repository.VideoRepository
	dir       string
}

// NewVideoService creates a new video service
func NewVideoService(videoRepo repository.VideoRepository, dir string) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		dir:       dir,
	}
}

// StoragePath returns where the file for a code is stored on disk.
// The extension is taken from the uploaded file name, defaulting to .mp4.
func (s *VideoService) StoragePath(code, uploadName string) string {
	ext := filepath.Ext(uploadName)
	if ext == "" {
		ext = ".mp4"
	}
	return filepath.Join(s.dir, code+ext)
}

// Register adds a code/file mapping to the catalog.
// Returns false when the code is already taken; the stored mapping is
// never overwritten.
func (s *VideoService) Register(code, filePath string) (bool, error) {
	if code == "" {
		return false, fmt.Errorf("code cannot be empty")
	}
	return s.videoRepo.AddVideo(code, filePath)
}

// Resolve looks up a code and verifies the backing file still exists.
// The lookup is exact and case-sensitive.
func (s *VideoService) Resolve(code string) (domain.Resolution, error) {
	video, err := s.videoRepo.GetVideo(code)
	if err != nil {
		return domain.Resolution{}, err
	}
	if video == nil {
		return domain.Resolution{Status: domain.ResolveNotFound}, nil
	}

	if _, err := os.Stat(video.FilePath); err != nil {
		return domain.Resolution{Status: domain.ResolveFileMissing, FilePath: video.FilePath}, nil
	}

	return domain.Resolution{Status: domain.ResolveFound, FilePath: video.FilePath}, nil
}
