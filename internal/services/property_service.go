package services

import (
	"fmt"
	"propertyHub/internal/enums"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/repositories"
)

type PropertyService struct {
	propertyRepo        *repositories.PropertyRepository
	authRepo            *repositories.AuthenticationRepository
	notificationService *NotificationService
}

func NewPropertyService(
	propertyRepo *repositories.PropertyRepository,
	authRepo *repositories.AuthenticationRepository,
	notificationService *NotificationService,
) *PropertyService {
	return &PropertyService{
		propertyRepo:        propertyRepo,
		authRepo:            authRepo,
		notificationService: notificationService,
	}
}

func (ps *PropertyService) CreateProperty(creator *models.User, body *models.CreatePropertyRequestBody) (*models.Property, []error) {
	var errors []error

	// Landlords always create properties under their own name.
	landlordID := body.LandlordID
	if creator.Role == enums.ROLE_LANDLORD {
		landlordID = &creator.ID
	}
	if landlordID == nil {
		errors = append(errors, errs.ErrLandlordRequired)
		return nil, errors
	}

	status := body.Status
	if status == "" {
		status = enums.PROPERTY_STATUS_AVAILABLE
	}

	property := &models.Property{
		Title:          body.Title,
		Address:        body.Address,
		Price:          body.Price,
		Status:         status,
		LandlordID:     landlordID,
		TenantID:       body.TenantID,
		ContactEmail:   body.ContactEmail,
		ContactPhone:   body.ContactPhone,
		Nationality:    body.Nationality,
		ShareCode:      body.ShareCode,
		GasSafety:      body.GasSafety,
		Epc:            body.Epc,
		ElectricalCert: body.ElectricalCert,
	}
	return ps.propertyRepo.CreateProperty(property)
}

func (ps *PropertyService) GetProperties(viewer *models.User) ([]models.Property, []error) {
	var errors []error
	var properties []models.Property
	var err error

	switch viewer.Role {
	case enums.ROLE_ADMIN:
		properties, err = ps.propertyRepo.FindAll()
	case enums.ROLE_LANDLORD:
		properties, err = ps.propertyRepo.FindByLandlord(viewer.ID)
	default:
		properties, err = ps.propertyRepo.FindByTenant(viewer.ID)
	}
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return properties, nil
}

func (ps *PropertyService) GetProperty(viewer *models.User, id uint) (*models.Property, []error) {
	var errors []error
	property, err := ps.propertyRepo.FindPropertyByID(id)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if !canViewProperty(viewer, property) {
		errors = append(errors, errs.ErrPropertyAccessDenied)
		return nil, errors
	}
	return property, nil
}

func (ps *PropertyService) UpdateProperty(viewer *models.User, id uint, body *models.UpdatePropertyRequestBody) (*models.Property, []error) {
	var errors []error
	property, err := ps.propertyRepo.FindPropertyByID(id)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if !canManageProperty(viewer, property) {
		errors = append(errors, errs.ErrPropertyAccessDenied)
		return nil, errors
	}

	if body.Title != nil {
		property.Title = *body.Title
	}
	if body.Address != nil {
		property.Address = *body.Address
	}
	if body.Price != nil {
		property.Price = *body.Price
	}
	if body.Status != nil {
		property.Status = *body.Status
	}
	if body.TenantID != nil {
		property.TenantID = body.TenantID
	}
	if body.ContactEmail != nil {
		property.ContactEmail = *body.ContactEmail
	}
	if body.ContactPhone != nil {
		property.ContactPhone = *body.ContactPhone
	}
	if body.Nationality != nil {
		property.Nationality = *body.Nationality
	}
	if body.ShareCode != nil {
		property.ShareCode = *body.ShareCode
	}
	if body.GasSafety != nil {
		property.GasSafety = *body.GasSafety
	}
	if body.Epc != nil {
		property.Epc = *body.Epc
	}
	if body.ElectricalCert != nil {
		property.ElectricalCert = *body.ElectricalCert
	}

	if err := ps.propertyRepo.SaveProperty(property); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	updated, err := ps.propertyRepo.FindPropertyByID(property.ID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (ps *PropertyService) DeleteProperty(viewer *models.User, id uint) []error {
	var errors []error
	property, err := ps.propertyRepo.FindPropertyByID(id)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if !canManageProperty(viewer, property) {
		errors = append(errors, errs.ErrPropertyAccessDenied)
		return errors
	}
	if err := ps.propertyRepo.DeleteProperty(property); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

// AssignTenant links a tenant to the property, marks it occupied and notifies
// the tenant. Changing this link is what grants (or revokes) the messaging
// path between tenant and landlord.
func (ps *PropertyService) AssignTenant(viewer *models.User, propertyID, tenantID uint) (*models.Property, []error) {
	var errors []error

	property, err := ps.propertyRepo.FindPropertyByID(propertyID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if !canManageProperty(viewer, property) {
		errors = append(errors, errs.ErrPropertyAccessDenied)
		return nil, errors
	}

	tenant, err := ps.authRepo.FindUserByID(tenantID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if tenant.Role != enums.ROLE_TENANT {
		errors = append(errors, errs.ErrInvalidTenant)
		return nil, errors
	}

	property.TenantID = &tenant.ID
	property.Status = enums.PROPERTY_STATUS_OCCUPIED
	if err := ps.propertyRepo.SaveProperty(property); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	ps.notificationService.Notify(
		enums.NOTIFICATION_TYPE_PROPERTY_ASSIGNED,
		fmt.Sprintf("%s %s was assigned to property %s", tenant.FirstName, tenant.LastName, property.Title),
		&tenant.ID,
	)

	updated, err := ps.propertyRepo.FindPropertyByID(property.ID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (ps *PropertyService) GetLandlordTenants(landlord *models.User) ([]*models.UserResponse, []error) {
	var errors []error
	tenants, err := ps.propertyRepo.FindTenantsOfLandlord(landlord.ID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	responses := make([]*models.UserResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, tenants[i].ToUserResponse())
	}
	return responses, nil
}

func canViewProperty(viewer *models.User, property *models.Property) bool {
	if viewer.IsAdmin() {
		return true
	}
	if property.LandlordID != nil && *property.LandlordID == viewer.ID {
		return true
	}
	if property.TenantID != nil && *property.TenantID == viewer.ID {
		return true
	}
	return false
}

func canManageProperty(viewer *models.User, property *models.Property) bool {
	if viewer.IsAdmin() {
		return true
	}
	return viewer.Role == enums.ROLE_LANDLORD &&
		property.LandlordID != nil && *property.LandlordID == viewer.ID
}
