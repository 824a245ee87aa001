package persistent

import (
	"errors"

	"snapboard/internal/entity"
	"snapboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByNickname(nickname string) (*entity.User, error)
	Update(user *entity.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if userModel.Avatar == "" {
		userModel.Avatar = entity.DefaultAvatar
	}
	if err := r.db.Create(userModel).Error; err != nil {
		// The unique index on nickname is the last line of defense; a failed
		// insert leaves the table untouched.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrDuplicateNickname
		}
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByNickname(nickname string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("nickname = ?", nickname).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	err := r.db.Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"nickname": user.Nickname,
		"password": user.Password,
		"avatar":   user.Avatar,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.ErrDuplicateNickname
	}
	return err
}
