package services

import (
	"fmt"
	"propertyHub/internal/enums"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/repositories"
)

type MaintenanceService struct {
	maintenanceRepo     *repositories.MaintenanceRepository
	propertyRepo        *repositories.PropertyRepository
	notificationService *NotificationService
}

func NewMaintenanceService(
	maintenanceRepo *repositories.MaintenanceRepository,
	propertyRepo *repositories.PropertyRepository,
	notificationService *NotificationService,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo:     maintenanceRepo,
		propertyRepo:        propertyRepo,
		notificationService: notificationService,
	}
}

func (ms *MaintenanceService) CreateRequest(creator *models.User, body *models.CreateMaintenanceRequestBody) (*models.MaintenanceRequest, []error) {
	var errors []error

	if body.PropertyID == 0 || body.Issue == "" {
		errors = append(errors, errs.ErrIssueRequired)
		return nil, errors
	}

	if _, err := ms.propertyRepo.FindPropertyByID(body.PropertyID); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	// Admins may raise a request on behalf of a tenant.
	tenantID := creator.ID
	if creator.IsAdmin() && body.TenantID != nil {
		tenantID = *body.TenantID
	}

	request := &models.MaintenanceRequest{
		TenantID:   tenantID,
		PropertyID: body.PropertyID,
		Issue:      body.Issue,
		Status:     enums.MAINTENANCE_STATUS_PENDING,
	}
	saved, createErrs := ms.maintenanceRepo.CreateRequest(request)
	if len(createErrs) > 0 {
		return nil, createErrs
	}

	ms.notificationService.Notify(
		enums.NOTIFICATION_TYPE_MAINTENANCE_REQUEST,
		fmt.Sprintf("New maintenance issue: %q", body.Issue),
		&tenantID,
	)

	return saved, nil
}

func (ms *MaintenanceService) ListRequests(viewer *models.User) ([]models.MaintenanceRequest, []error) {
	var errors []error
	var requests []models.MaintenanceRequest
	var err error

	switch viewer.Role {
	case enums.ROLE_TENANT:
		requests, err = ms.maintenanceRepo.FindByTenant(viewer.ID)
	case enums.ROLE_LANDLORD:
		requests, err = ms.maintenanceRepo.FindByLandlord(viewer.ID)
	default:
		requests, err = ms.maintenanceRepo.FindAll()
	}
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return requests, nil
}

func (ms *MaintenanceService) GetRequest(viewer *models.User, id uint) (*models.MaintenanceRequest, []error) {
	var errors []error
	request, err := ms.maintenanceRepo.FindRequestByID(id)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if !ms.canViewRequest(viewer, request) {
		errors = append(errors, errs.ErrPropertyAccessDenied)
		return nil, errors
	}
	return request, nil
}

func (ms *MaintenanceService) UpdateStatus(viewer *models.User, id uint, body *models.UpdateMaintenanceStatusRequestBody) (*models.MaintenanceRequest, []error) {
	var errors []error

	if body.Status != nil && !validMaintenanceStatus(*body.Status) {
		errors = append(errors, errs.ErrInvalidMaintenanceStatus)
		return nil, errors
	}

	request, err := ms.maintenanceRepo.FindRequestByID(id)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if !ms.canManageRequest(viewer, request) {
		errors = append(errors, errs.ErrPropertyAccessDenied)
		return nil, errors
	}

	if body.Status != nil {
		request.Status = *body.Status
	}
	if body.Response != nil {
		request.Response = *body.Response
	}

	if err := ms.maintenanceRepo.SaveRequest(request); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return request, nil
}

func (ms *MaintenanceService) canViewRequest(viewer *models.User, request *models.MaintenanceRequest) bool {
	switch viewer.Role {
	case enums.ROLE_ADMIN:
		return true
	case enums.ROLE_TENANT:
		return request.TenantID == viewer.ID
	case enums.ROLE_LANDLORD:
		return request.Property != nil &&
			request.Property.LandlordID != nil &&
			*request.Property.LandlordID == viewer.ID
	}
	return false
}

func (ms *MaintenanceService) canManageRequest(viewer *models.User, request *models.MaintenanceRequest) bool {
	if viewer.IsAdmin() {
		return true
	}
	return viewer.Role == enums.ROLE_LANDLORD &&
		request.Property != nil &&
		request.Property.LandlordID != nil &&
		*request.Property.LandlordID == viewer.ID
}

func validMaintenanceStatus(status string) bool {
	switch status {
	case enums.MAINTENANCE_STATUS_PENDING,
		enums.MAINTENANCE_STATUS_IN_PROGRESS,
		enums.MAINTENANCE_STATUS_RESOLVED:
		return true
	}
	return false
}
