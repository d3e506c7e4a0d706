package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freeflow/services/storage"
)

// AssetHandler exposes upload and delivery endpoints for listing images and
// documentation attachments.
type AssetHandler struct {
	StorageSvc storage.StorageService
}

// NewAssetHandler creates a new AssetHandler instance.
func NewAssetHandler(svc storage.StorageService) *AssetHandler {
	return &AssetHandler{StorageSvc: svc}
}

// allowedFolders defines permitted upload destinations.
var allowedFolders = map[string]bool{
	"listings":  true,
	"documents": true,
	"avatars":   true,
}

// UploadAssetHandler accepts a multipart upload into one of the allowed
// folders and returns the stored asset's public ID.
func (h *AssetHandler) UploadAssetHandler(c *gin.Context) {
	logger := getLogger(c)

	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'listings', 'documents' and 'avatars'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		logger.Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		logger.Error("Failed to upload asset", zap.String("folder", folder), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload asset"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"public_id": publicID})
}

// GetAssetURLHandler returns the delivery URL for an asset; secure=1 returns
// a signed, expiring URL instead.
func (h *AssetHandler) GetAssetURLHandler(c *gin.Context) {
	publicID := c.Query("public_id")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_id is required"})
		return
	}
	resourceType := c.DefaultQuery("type", "image")

	var (
		url string
		err error
	)
	if c.Query("secure") == "1" {
		url, err = h.StorageSvc.GetSecureDownloadURL(c.Request.Context(), resourceType, publicID, 15*time.Minute)
	} else {
		url, err = h.StorageSvc.GetDownloadURL(c.Request.Context(), resourceType, publicID)
	}
	if err != nil {
		getLogger(c).Error("Failed to resolve asset URL", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve asset URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteAssetHandler removes a stored asset.
func (h *AssetHandler) DeleteAssetHandler(c *gin.Context) {
	publicID := c.Query("public_id")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_id is required"})
		return
	}

	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		getLogger(c).Error("Failed to delete asset", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete asset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
