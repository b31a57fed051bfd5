package repositories

import (
	"errors"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"

	"gorm.io/gorm"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{
		db: db,
	}
}

func (fr *FileRepository) CreateFile(file *models.StoredFile) (*models.StoredFile, []error) {
	var errors []error
	if err := fr.db.Create(file).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return file, nil
}

func (fr *FileRepository) FindFileByID(id uint) (*models.StoredFile, error) {
	var file models.StoredFile
	err := fr.db.Preload("Uploader").Preload("Property").First(&file, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrFileNotFound
		}
		return nil, err
	}
	return &file, nil
}

func (fr *FileRepository) FindAll() ([]models.StoredFile, error) {
	var files []models.StoredFile
	if err := fr.db.Preload("Uploader").Preload("Property").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// FindForTenant returns files the tenant uploaded or that were assigned to
// them directly.
func (fr *FileRepository) FindForTenant(userID uint) ([]models.StoredFile, error) {
	var files []models.StoredFile
	err := fr.db.Preload("Uploader").Preload("Property").
		Where("uploader_id = ? OR assigned_to_id = ?", userID, userID).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// FindForLandlord returns the landlord's own uploads plus every file attached
// to one of their properties.
func (fr *FileRepository) FindForLandlord(landlordID uint) ([]models.StoredFile, error) {
	var files []models.StoredFile
	err := fr.db.Preload("Uploader").Preload("Property").
		Where("uploader_id = ? OR property_id IN (SELECT id FROM properties WHERE landlord_id = ? AND deleted_at IS NULL)",
			landlordID, landlordID).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (fr *FileRepository) DeleteFile(file *models.StoredFile) error {
	return fr.db.Delete(file).Error
}
