package repositories

import (
	"errors"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		db: db,
	}
}

func (pr *PropertyRepository) CreateProperty(property *models.Property) (*models.Property, []error) {
	var errors []error
	if err := pr.db.Create(property).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return property, nil
}

func (pr *PropertyRepository) FindPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	err := pr.db.Preload("Landlord").Preload("Tenant").First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// FindByParticipant returns every property where the user appears as landlord
// or tenant. The access resolver derives the allowed-peer set from these rows.
func (pr *PropertyRepository) FindByParticipant(userID uint) ([]models.Property, error) {
	var properties []models.Property
	err := pr.db.
		Where("landlord_id = ? OR tenant_id = ?", userID, userID).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (pr *PropertyRepository) FindAll() ([]models.Property, error) {
	var properties []models.Property
	if err := pr.db.Preload("Landlord").Preload("Tenant").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (pr *PropertyRepository) FindByLandlord(landlordID uint) ([]models.Property, error) {
	var properties []models.Property
	err := pr.db.Preload("Landlord").Preload("Tenant").
		Where("landlord_id = ?", landlordID).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (pr *PropertyRepository) FindByTenant(tenantID uint) ([]models.Property, error) {
	var properties []models.Property
	err := pr.db.Preload("Landlord").Preload("Tenant").
		Where("tenant_id = ?", tenantID).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// FindTenantsOfLandlord returns the distinct tenants currently assigned to any
// of the landlord's properties.
func (pr *PropertyRepository) FindTenantsOfLandlord(landlordID uint) ([]models.User, error) {
	var tenants []models.User
	err := pr.db.Model(&models.User{}).
		Where("id IN (SELECT tenant_id FROM properties WHERE landlord_id = ? AND tenant_id IS NOT NULL AND deleted_at IS NULL)", landlordID).
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

func (pr *PropertyRepository) SaveProperty(property *models.Property) error {
	return pr.db.Save(property).Error
}

func (pr *PropertyRepository) DeleteProperty(property *models.Property) error {
	return pr.db.Delete(property).Error
}
