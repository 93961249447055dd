package mappers

import (
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToDomain(model *models.UserModel) *user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:                entity.ID,
		Username:          entity.Username,
		Password:          entity.PasswordHash,
		EmailAddress:      entity.EmailAddress,
		FirstName:         entity.FirstName,
		LastName:          entity.LastName,
		ProfilePictureURL: entity.ProfilePictureURL,
		CreatedAt:         entity.CreatedAt,
		Archived:          entity.Archived,
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return &user.User{
		ID:                model.ID,
		Username:          model.Username,
		PasswordHash:      model.Password,
		EmailAddress:      model.EmailAddress,
		FirstName:         model.FirstName,
		LastName:          model.LastName,
		ProfilePictureURL: model.ProfilePictureURL,
		CreatedAt:         model.CreatedAt,
		Archived:          model.Archived,
	}
}
