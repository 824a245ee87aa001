package usecase

import (
	"fmt"
	"mime/multipart"
	"strings"

	"snapboard/internal/entity"
	"snapboard/internal/repo/persistent"
	"snapboard/pkg/logger"
	"snapboard/pkg/storage"
)

type PostUseCase interface {
	Create(actorID, title, content, tags string, imageFiles, videoFiles []*multipart.FileHeader) (*entity.Post, error)
	Get(postID string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	Search(term string) ([]*entity.Post, error)
	Edit(actorID, postID, title, content, tags string) (*entity.Post, error)
	Delete(actorID, postID string) error
	IncrementLikes(postID string) (int, error)
	IncrementViews(postID string) (int, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	store    storage.Store
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, store storage.Store, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		store:    store,
		logger:   logger,
	}
}

// Create stores every attachment, then writes the post and its media rows in
// one transaction. If any file or the transaction fails, files stored during
// this attempt are removed and nothing is persisted.
func (uc *postUseCase) Create(actorID, title, content, tags string, imageFiles, videoFiles []*multipart.FileHeader) (*entity.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrValidation)
	}

	var media []entity.Media

	cleanup := func() {
		for _, m := range media {
			if err := uc.store.Delete(kindToStorage(m.Kind), m.FileName); err != nil {
				uc.logger.Error("Failed to clean up stored file %s: %v", m.FileName, err)
			}
		}
	}

	for _, file := range imageFiles {
		name, err := saveImage(uc.store, storage.KindImage, file, postImageMaxSize)
		if err != nil {
			cleanup()
			return nil, err
		}
		media = append(media, entity.Media{FileName: name, Kind: entity.MediaKindImage})
	}

	for _, file := range videoFiles {
		name, err := saveVideo(uc.store, file)
		if err != nil {
			cleanup()
			return nil, err
		}
		media = append(media, entity.Media{FileName: name, Kind: entity.MediaKindVideo})
	}

	post := &entity.Post{
		AuthorID: actorID,
		Title:    title,
		Content:  content,
		Tags:     tags,
		Media:    media,
	}

	if err := uc.postRepo.Create(post); err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) Get(postID string) (*entity.Post, error) {
	return uc.postRepo.GetByID(postID)
}

func (uc *postUseCase) List() ([]*entity.Post, error) {
	return uc.postRepo.List()
}

// Search matches term case-insensitively as a substring of title or tags. An
// empty term yields no results, not an error.
func (uc *postUseCase) Search(term string) ([]*entity.Post, error) {
	if strings.TrimSpace(term) == "" {
		return []*entity.Post{}, nil
	}
	return uc.postRepo.Search(term)
}

// Edit replaces title, content, and tags. All three are supplied on every
// edit; partial updates are not supported. Only the author may edit, and the
// media list is immutable after creation.
func (uc *postUseCase) Edit(actorID, postID, title, content, tags string) (*entity.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrValidation)
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != actorID {
		return nil, entity.ErrUnauthorized
	}

	post.Title = title
	post.Content = content
	post.Tags = tags

	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes the post and every media row it owns, then removes the
// stored files. The row delete is transactional; file removal afterwards is
// best effort and only logged on failure.
func (uc *postUseCase) Delete(actorID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		return entity.ErrUnauthorized
	}

	removed, err := uc.postRepo.Delete(postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	for _, m := range removed {
		if err := uc.store.Delete(kindToStorage(m.Kind), m.FileName); err != nil {
			uc.logger.Error("Failed to remove stored file %s: %v", m.FileName, err)
		}
	}

	return nil
}

func (uc *postUseCase) IncrementLikes(postID string) (int, error) {
	return uc.postRepo.IncrementLikes(postID)
}

func (uc *postUseCase) IncrementViews(postID string) (int, error) {
	return uc.postRepo.IncrementViews(postID)
}
