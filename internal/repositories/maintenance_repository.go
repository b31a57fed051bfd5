package repositories

import (
	"errors"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{
		db: db,
	}
}

func (mr *MaintenanceRepository) CreateRequest(request *models.MaintenanceRequest) (*models.MaintenanceRequest, []error) {
	var errors []error
	if err := mr.db.Create(request).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return request, nil
}

func (mr *MaintenanceRepository) FindRequestByID(id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := mr.db.Preload("Tenant").Preload("Property").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrMaintenanceRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (mr *MaintenanceRepository) FindAll() ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	if err := mr.db.Preload("Tenant").Preload("Property").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (mr *MaintenanceRepository) FindByTenant(tenantID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := mr.db.Preload("Tenant").Preload("Property").
		Where("tenant_id = ?", tenantID).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (mr *MaintenanceRepository) FindByLandlord(landlordID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := mr.db.Preload("Tenant").Preload("Property").
		Joins("JOIN properties ON properties.id = maintenance_requests.property_id").
		Where("properties.landlord_id = ?", landlordID).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (mr *MaintenanceRepository) SaveRequest(request *models.MaintenanceRequest) error {
	return mr.db.Save(request).Error
}
