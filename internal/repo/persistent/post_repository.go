package persistent

import (
	"errors"

	"snapboard/internal/entity"
	"snapboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	Search(term string) ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) ([]entity.Media, error)
	IncrementLikes(id string) (int, error)
	IncrementViews(id string) (int, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create persists the post and all its media rows in one transaction. A failed
// media insert rolls the post back; there is no state where media rows exist
// without their post or a post exists with only part of its media.
func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		media := postModel.Media
		postModel.Media = nil

		if err := tx.Create(postModel).Error; err != nil {
			return err
		}

		for i := range media {
			media[i].PostID = postModel.ID
			if media[i].ID == "" {
				media[i].ID = uuid.New().String()
			}
			if err := tx.Create(&media[i]).Error; err != nil {
				return err
			}
		}
		postModel.Media = media

		*post = *ToPostEntity(postModel)
		return nil
	})
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Preload("Media").Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Preload("Media").Order("created_at ASC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Search(term string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	pattern := "%" + term + "%"
	err := r.db.Preload("Media").
		Where("title ILIKE ? OR tags ILIKE ?", pattern, pattern).
		Order("created_at ASC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Update touches only the mutable columns. Authorship and counters never
// change through this path.
func (r *postRepository) Update(post *entity.Post) error {
	res := r.db.Model(&model.PostModel{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":   post.Title,
		"content": post.Content,
		"tags":    post.Tags,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Delete removes the post's media rows and the post row in one transaction and
// returns the media that was attached, so the caller can clean up stored files.
func (r *postRepository) Delete(id string) ([]entity.Media, error) {
	var removed []entity.Media

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var mediaModels []model.MediaModel
		if err := tx.Where("post_id = ?", id).Find(&mediaModels).Error; err != nil {
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&model.MediaModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&model.PostModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}

		removed = make([]entity.Media, len(mediaModels))
		for i := range mediaModels {
			removed[i] = ToMediaEntity(&mediaModels[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *postRepository) IncrementLikes(id string) (int, error) {
	return r.incrementCounter(id, "likes")
}

func (r *postRepository) IncrementViews(id string) (int, error) {
	return r.incrementCounter(id, "views")
}

// incrementCounter applies the increment as a single atomic UPDATE; concurrent
// increments against the same row never lose updates.
func (r *postRepository) incrementCounter(id, column string) (int, error) {
	var count int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PostModel{}).Where("id = ?", id).
			UpdateColumn(column, clause.Expr{SQL: column + " + ?", Vars: []interface{}{1}})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}

		return tx.Model(&model.PostModel{}).Where("id = ?", id).Pluck(column, &count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
