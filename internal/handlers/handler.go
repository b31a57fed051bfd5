package handlers

import (
	"errors"
	"net/http"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/msgs"
	"propertyHub/internal/services"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService         *services.AuthenticationService
	messagingService    *services.MessagingService
	propertyService     *services.PropertyService
	maintenanceService  *services.MaintenanceService
	fileService         *services.FileService
	notificationService *services.NotificationService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	messagingService *services.MessagingService,
	propertyService *services.PropertyService,
	maintenanceService *services.MaintenanceService,
	fileService *services.FileService,
	notificationService *services.NotificationService,
) *RestHandler {
	return &RestHandler{
		authService:         authService,
		messagingService:    messagingService,
		propertyService:     propertyService,
		maintenanceService:  maintenanceService,
		fileService:         fileService,
		notificationService: notificationService,
	}
}

func (rh *RestHandler) ok(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    data,
	})
}

func (rh *RestHandler) created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    data,
	})
}

func (rh *RestHandler) abortWithErrors(ctx *gin.Context, errorList []error) {
	ctx.AbortWithStatusJSON(statusFor(errorList), models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  errorList,
	})
}

// statusFor maps the error taxonomy onto HTTP codes: bad input 400, missing
// target 404, denied peer or record 403, anything unclassified 500.
func statusFor(errorList []error) int {
	for _, err := range errorList {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			return http.StatusUnauthorized
		case errors.Is(err, errs.ErrForbidden),
			errors.Is(err, errs.ErrMessagingNotAllowed),
			errors.Is(err, errs.ErrPropertyAccessDenied),
			errors.Is(err, errs.ErrFileAccessDenied):
			return http.StatusForbidden
		case errors.Is(err, errs.ErrUserNotFound),
			errors.Is(err, errs.ErrPropertyNotFound),
			errors.Is(err, errs.ErrMaintenanceRequestNotFound),
			errors.Is(err, errs.ErrFileNotFound):
			return http.StatusNotFound
		case errors.Is(err, errs.ErrInvalidRequestBody),
			errors.Is(err, errs.ErrInvalidRequest),
			errors.Is(err, errs.ErrInvalidParams),
			errors.Is(err, errs.ErrInvalidPageOrSize),
			errors.Is(err, errs.ErrReceiverRequired),
			errors.Is(err, errs.ErrEmptyMessageContent),
			errors.Is(err, errs.ErrSelfMessagingNotAllowed),
			errors.Is(err, errs.ErrUserAlreadyExists),
			errors.Is(err, errs.ErrInvalidEmail),
			errors.Is(err, errs.ErrInvalidPassword),
			errors.Is(err, errs.ErrInvalidUser),
			errors.Is(err, errs.ErrInvalidRole),
			errors.Is(err, errs.ErrWrongPassword),
			errors.Is(err, errs.ErrFirstName),
			errors.Is(err, errs.ErrLastName),
			errors.Is(err, errs.ErrLandlordRequired),
			errors.Is(err, errs.ErrInvalidTenant),
			errors.Is(err, errs.ErrInvalidMaintenanceStatus),
			errors.Is(err, errs.ErrIssueRequired),
			errors.Is(err, errs.ErrNoFileUploaded):
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
