package handlers

import "gorm.io/gorm"

// Handler carries the injected database handle and upload directory shared by
// all endpoint methods.
type Handler struct {
	DB        *gorm.DB
	UploadDir string
}

func New(database *gorm.DB, uploadDir string) *Handler {
	return &Handler{DB: database, UploadDir: uploadDir}
}
