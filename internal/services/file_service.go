package services

import (
	"fmt"
	"io"
	"propertyHub/internal/enums"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/repositories"
	"time"
)

type FileService struct {
	fileRepo            *repositories.FileRepository
	propertyRepo        *repositories.PropertyRepository
	fileManagerService  *FileManagerService
	notificationService *NotificationService
}

func NewFileService(
	fileRepo *repositories.FileRepository,
	propertyRepo *repositories.PropertyRepository,
	fileManagerService *FileManagerService,
	notificationService *NotificationService,
) *FileService {
	return &FileService{
		fileRepo:            fileRepo,
		propertyRepo:        propertyRepo,
		fileManagerService:  fileManagerService,
		notificationService: notificationService,
	}
}

// UploadFile stores the bytes in the document bucket and records a row for
// them. When the file is attached to a property, the uploader must be its
// landlord, its tenant, or an admin.
func (fs *FileService) UploadFile(
	uploader *models.User,
	originalName string,
	file io.Reader,
	fileSize int64,
	contentType string,
	body *models.UploadFileRequestBody,
) (*models.StoredFile, []error) {
	var errors []error

	if body.PropertyID != nil {
		property, err := fs.propertyRepo.FindPropertyByID(*body.PropertyID)
		if err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		if !canViewProperty(uploader, property) {
			errors = append(errors, errs.ErrPropertyAccessDenied)
			return nil, errors
		}
	}

	fileType := body.FileType
	if fileType == "" {
		fileType = enums.FILE_TYPE_OTHER
	}

	objectKey := fmt.Sprintf("%d_%d_%s", uploader.ID, time.Now().UnixNano(), originalName)
	url, err := fs.fileManagerService.UploadDocument(objectKey, file, fileSize, contentType, enums.FILE_BUCKET_PROPERTY_DOCUMENTS)
	if err != nil {
		errors = append(errors, errs.ErrUnableToUploadFile)
		return nil, errors
	}

	stored := &models.StoredFile{
		UploaderID:   uploader.ID,
		PropertyID:   body.PropertyID,
		FileURL:      url,
		ObjectKey:    objectKey,
		OriginalName: originalName,
		FileType:     fileType,
		Description:  body.Description,
	}
	saved, createErrs := fs.fileRepo.CreateFile(stored)
	if len(createErrs) > 0 {
		return nil, createErrs
	}

	fs.notificationService.Notify(
		enums.NOTIFICATION_TYPE_FILE_UPLOADED,
		fmt.Sprintf("%s %s uploaded %s", uploader.FirstName, uploader.LastName, originalName),
		&uploader.ID,
	)

	return saved, nil
}

func (fs *FileService) ListFiles(viewer *models.User) ([]models.StoredFile, []error) {
	var errors []error
	var files []models.StoredFile
	var err error

	switch viewer.Role {
	case enums.ROLE_ADMIN:
		files, err = fs.fileRepo.FindAll()
	case enums.ROLE_LANDLORD:
		files, err = fs.fileRepo.FindForLandlord(viewer.ID)
	default:
		files, err = fs.fileRepo.FindForTenant(viewer.ID)
	}
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return files, nil
}

// DeleteFile removes the object first, then the row; a dangling row is worse
// than a dangling object.
func (fs *FileService) DeleteFile(viewer *models.User, id uint) []error {
	var errors []error

	file, err := fs.fileRepo.FindFileByID(id)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if !viewer.IsAdmin() && file.UploaderID != viewer.ID {
		errors = append(errors, errs.ErrFileAccessDenied)
		return errors
	}

	if file.ObjectKey != "" {
		if err := fs.fileManagerService.RemoveDocument(file.ObjectKey, enums.FILE_BUCKET_PROPERTY_DOCUMENTS); err != nil {
			errors = append(errors, errs.ErrUnableToDeleteFile)
			return errors
		}
	}
	if err := fs.fileRepo.DeleteFile(file); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}
