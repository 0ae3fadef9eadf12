package service

import (
	"os"
	"path/filepath"
	"testing"

	"filmbot/internal/domain"
	"filmbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestVideoService_StoragePath(t *testing.T) {
	service := NewVideoService(nil, "videos")

	tests := []struct {
		name       string
		code       string
		uploadName string
		expected   string
	}{
		{
			name:       "extension from upload name",
			code:       "M100",
			uploadName: "movie.mkv",
			expected:   filepath.Join("videos", "M100.mkv"),
		},
		{
			name:       "no extension defaults to mp4",
			code:       "M100",
			uploadName: "movie",
			expected:   filepath.Join("videos", "M100.mp4"),
		},
		{
			name:       "empty upload name defaults to mp4",
			code:       "M100",
			uploadName: "",
			expected:   filepath.Join("videos", "M100.mp4"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.StoragePath(tt.code, tt.uploadName))
		})
	}
}

func TestVideoService_Register(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		mockAdded     bool
		expectedAdded bool
		expectedError bool
	}{
		{
			name:          "new code",
			code:          "M100",
			mockAdded:     true,
			expectedAdded: true,
		},
		{
			name:          "duplicate code",
			code:          "M100",
			mockAdded:     false,
			expectedAdded: false,
		},
		{
			name:          "empty code",
			code:          "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVideoRepository)
			if tt.code != "" {
				mockRepo.On("AddVideo", tt.code, "videos/M100.mp4").Return(tt.mockAdded, nil)
			}

			service := NewVideoService(mockRepo, "videos")

			added, err := service.Register(tt.code, "videos/M100.mp4")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdded, added)
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestVideoService_Resolve_NotFound(t *testing.T) {
	mockRepo := new(testutil.MockVideoRepository)
	mockRepo.On("GetVideo", "missing").Return(nil, nil)

	service := NewVideoService(mockRepo, "videos")

	res, err := service.Resolve("missing")

	assert.NoError(t, err)
	assert.Equal(t, domain.ResolveNotFound, res.Status)
	mockRepo.AssertExpectations(t)
}

func TestVideoService_Resolve_Found(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "M100.mp4")
	assert.NoError(t, os.WriteFile(path, []byte("video"), 0o644))

	mockRepo := new(testutil.MockVideoRepository)
	mockRepo.On("GetVideo", "M100").Return(testutil.NewTestVideo(1, "M100", path), nil)

	service := NewVideoService(mockRepo, dir)

	res, err := service.Resolve("M100")

	assert.NoError(t, err)
	assert.Equal(t, domain.ResolveFound, res.Status)
	assert.Equal(t, path, res.FilePath)
	mockRepo.AssertExpectations(t)
}

func TestVideoService_Resolve_FileMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "M100.mp4")

	mockRepo := new(testutil.MockVideoRepository)
	mockRepo.On("GetVideo", "M100").Return(testutil.NewTestVideo(1, "M100", path), nil)

	service := NewVideoService(mockRepo, dir)

	res, err := service.Resolve("M100")

	assert.NoError(t, err)
	assert.Equal(t, domain.ResolveFileMissing, res.Status)
	mockRepo.AssertExpectations(t)
}
