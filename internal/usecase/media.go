package usecase

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"snapboard/internal/entity"
	"snapboard/pkg/images"
	"snapboard/pkg/storage"
)

const (
	postImageMaxSize = 500
	avatarMaxSize    = 125
)

var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	videoExtensions = map[string]bool{".mp4": true, ".mov": true}
)

// saveImage resizes an uploaded image to fit within maxSize x maxSize and
// stores the result, returning the generated name.
func saveImage(store storage.Store, kind storage.Kind, file *multipart.FileHeader, maxSize int) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported image format %q", entity.ErrValidation, ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	resized, err := images.FitToBox(src, ext, maxSize, maxSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	name, err := store.Save(kind, ext, resized)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return name, nil
}

// saveVideo stores an uploaded video unmodified.
func saveVideo(store storage.Store, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !videoExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported video format %q", entity.ErrValidation, ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name, err := store.Save(storage.KindVideo, ext, src)
	if err != nil {
		return "", fmt.Errorf("failed to store video: %w", err)
	}
	return name, nil
}

func kindToStorage(kind entity.MediaKind) storage.Kind {
	if kind == entity.MediaKindVideo {
		return storage.KindVideo
	}
	return storage.KindImage
}
