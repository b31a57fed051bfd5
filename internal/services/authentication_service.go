package services

import (
	"fmt"
	"propertyHub/configs"
	"propertyHub/internal/enums"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/repositories"
	"propertyHub/internal/utils"
	"propertyHub/internal/validators"
	"time"
)

type AuthenticationService struct {
	authRepo            *repositories.AuthenticationRepository
	notificationService *NotificationService
	config              *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

// SetNotificationService is optional wiring; without it profile changes simply
// emit no notifications.
func (as *AuthenticationService) SetNotificationService(notificationService *NotificationService) {
	as.notificationService = notificationService
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if as.CheckIfUserExists(user.Email) {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	if user.Role == "" {
		user.Role = enums.ROLE_TENANT
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	return as.authRepo.CreateUser(user)
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, loginErrs := as.authRepo.Login(loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		return nil, errors
	}

	expiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(user, utils.GetJwtKey(), expiration)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  user.ToUserResponse(),
		Token: token,
	}, nil
}

func (as *AuthenticationService) CheckIfUserExists(email string) bool {
	return as.authRepo.CheckIfUserExists(email) != nil
}

func (as *AuthenticationService) GetUserByID(id uint) (*models.User, []error) {
	var errors []error
	user, err := as.authRepo.FindUserByID(id)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return user, nil
}

func (as *AuthenticationService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	if page < 1 || size < 1 {
		errors = append(errors, errs.ErrInvalidPageOrSize)
		return nil, errors
	}
	offset := (page - 1) * size
	return as.authRepo.GetAllUsersWithPagination(page, size, offset)
}

func (as *AuthenticationService) UpdateUser(request *models.UpdateUserRequest) (*models.UserResponse, []error) {
	var errors []error

	user, err := as.authRepo.FindUserByID(request.ID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if request.FirstName != nil {
		user.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
	}
	if request.Email != nil {
		if !validators.ValidateEmail(*request.Email) {
			errors = append(errors, errs.ErrInvalidEmail)
			return nil, errors
		}
		user.Email = *request.Email
	}
	if request.Role != nil {
		if !validators.ValidateRole(*request.Role) {
			errors = append(errors, errs.ErrInvalidRole)
			return nil, errors
		}
		user.Role = *request.Role
	}
	if request.Password != nil {
		if !validators.ValidatePassword(*request.Password) {
			errors = append(errors, errs.ErrInvalidPassword)
			return nil, errors
		}
		hash, hashErr := utils.HashPassword(*request.Password)
		if hashErr != nil {
			errors = append(errors, hashErr)
			return nil, errors
		}
		user.PasswordHash = hash
	}

	if err := as.authRepo.SaveUser(user); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if as.notificationService != nil {
		as.notificationService.Notify(
			enums.NOTIFICATION_TYPE_PROFILE_UPDATED,
			fmt.Sprintf("%s %s updated their profile settings", user.FirstName, user.LastName),
			&user.ID,
		)
	}

	return user.ToUserResponse(), nil
}

func (as *AuthenticationService) DeleteUser(id uint) []error {
	var errors []error
	user, err := as.authRepo.FindUserByID(id)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if as.notificationService != nil {
		as.notificationService.Notify(
			enums.NOTIFICATION_TYPE_USER_DELETED,
			fmt.Sprintf("User %s %s was deleted", user.FirstName, user.LastName),
			&user.ID,
		)
	}
	if err := as.authRepo.DeleteUser(user); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}
