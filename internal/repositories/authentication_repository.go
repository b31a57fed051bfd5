package repositories

import (
	"errors"
	"propertyHub/internal/enums"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/utils"

	"gorm.io/gorm"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(user *models.User) (*models.User, []error) {
	var errors []error
	result := ar.db.Create(user)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) CheckIfUserExists(email string) *models.User {
	var user models.User
	result := ar.db.Where("email = ?", email).First(&user)
	if result.Error == nil && result.RowsAffected > 0 {
		return &user
	}
	return nil
}

func (ar *AuthenticationRepository) Login(login *models.LoginRequestBody) (*models.User, []error) {
	var loginErrs []error
	user := ar.CheckIfUserExists(login.Email)
	if user == nil {
		loginErrs = append(loginErrs, errs.ErrUserNotFound)
		return nil, loginErrs
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, login.Password); err != nil {
		loginErrs = append(loginErrs, errs.ErrWrongPassword)
		return nil, loginErrs
	}
	return user, nil
}

func (ar *AuthenticationRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := ar.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (ar *AuthenticationRepository) FindUsersByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := ar.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindAdminIDs feeds the allowed-peer resolution: every user may always
// message an admin.
func (ar *AuthenticationRepository) FindAdminIDs() ([]uint, error) {
	var ids []uint
	if err := ar.db.Model(&models.User{}).Where("role = ?", enums.ROLE_ADMIN).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (ar *AuthenticationRepository) GetAllUsersWithPagination(page, size, offset int) (*models.GetUsersResponse, []error) {
	var errors []error
	var users []models.User
	var total int64

	if err := ar.db.Model(&models.User{}).Count(&total).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if err := ar.db.Scopes(utils.Paginate(page, size)).Find(&users).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	userResponses := make([]*models.UserResponse, 0, len(users))
	for i := range users {
		userResponses = append(userResponses, users[i].ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users: userResponses,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (ar *AuthenticationRepository) SaveUser(user *models.User) error {
	return ar.db.Save(user).Error
}

func (ar *AuthenticationRepository) DeleteUser(user *models.User) error {
	return ar.db.Delete(user).Error
}
