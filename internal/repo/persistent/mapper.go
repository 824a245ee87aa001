package persistent

import (
	"snapboard/internal/entity"
	"snapboard/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Nickname:  m.Nickname,
		Password:  m.Password,
		Avatar:    m.Avatar,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Nickname:  e.Nickname,
		Password:  e.Password,
		Avatar:    e.Avatar,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      m.Tags,
		Likes:     m.Likes,
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Media) > 0 {
		post.Media = make([]entity.Media, len(m.Media))
		for i, mm := range m.Media {
			post.Media[i] = ToMediaEntity(&mm)
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:        e.ID,
		AuthorID:  e.AuthorID,
		Title:     e.Title,
		Content:   e.Content,
		Tags:      e.Tags,
		Likes:     e.Likes,
		Views:     e.Views,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if len(e.Media) > 0 {
		post.Media = make([]model.MediaModel, len(e.Media))
		for i, me := range e.Media {
			post.Media[i] = *ToMediaModel(&me)
		}
	}

	return post
}

func ToMediaEntity(m *model.MediaModel) entity.Media {
	if m == nil {
		return entity.Media{}
	}

	return entity.Media{
		ID:        m.ID,
		PostID:    m.PostID,
		FileName:  m.FileName,
		Kind:      entity.MediaKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

func ToMediaModel(e *entity.Media) *model.MediaModel {
	if e == nil {
		return nil
	}

	return &model.MediaModel{
		ID:        e.ID,
		PostID:    e.PostID,
		FileName:  e.FileName,
		Kind:      string(e.Kind),
		CreatedAt: e.CreatedAt,
	}
}
