package services

import (
	"io"
	"propertyHub/internal/interfaces"
)

type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

func (fs *FileManagerService) UploadDocument(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	return fs.fileManager.UploadFile(fileName, file, fileSize, contentType, bucketName)
}

func (fs *FileManagerService) RemoveDocument(fileName string, bucketName string) error {
	return fs.fileManager.RemoveFile(fileName, bucketName)
}
