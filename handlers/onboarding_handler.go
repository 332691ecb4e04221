package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/dto"
	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"
	"github.com/xalgrow/HRMS/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"
)

// POST /onboarding
func CreateOnboarding(c *fiber.Ctx) error {
	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	exists, err := employeeExists(req.EmployeeID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check employee", nil)
	}
	if !exists {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "employee not found", nil)
	}

	onboarding := req.ToModel()
	if err := config.DB.Create(&onboarding).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create onboarding record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "onboarding created successfully", dto.NewOnboardingResponse(onboarding))
}

// GET /onboarding/:id
func GetOnboardingByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var onboarding models.Onboarding
	if err := config.DB.First(&onboarding, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "onboarding record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve onboarding record", nil)
	}

	response := dto.NewOnboardingResponse(onboarding)
	if onboarding.DocumentKey != "" && storage.Enabled() {
		url, err := storage.GetPresignedURL(onboarding.DocumentKey)
		if err != nil {
			log.Printf("failed to presign URL for key %s: %v", onboarding.DocumentKey, err)
		} else {
			response.DocumentURL = url
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "onboarding retrieved successfully", response)
}

// PUT /onboarding/:id (full replacement)
func UpdateOnboarding(c *fiber.Ctx) error {
	id := c.Params("id")
	var onboarding models.Onboarding
	if err := config.DB.First(&onboarding, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "onboarding record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve onboarding record", nil)
	}

	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	exists, err := employeeExists(req.EmployeeID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check employee", nil)
	}
	if !exists {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "employee not found", nil)
	}

	req.Apply(&onboarding)

	if err := config.DB.Save(&onboarding).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update onboarding record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "onboarding updated successfully", dto.NewOnboardingResponse(onboarding))
}

// DELETE /onboarding/:id
func DeleteOnboarding(c *fiber.Ctx) error {
	id := c.Params("id")
	result := config.DB.Delete(&models.Onboarding{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete onboarding record", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "onboarding record not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "onboarding deleted successfully", nil)
}

// POST /onboarding/:id/document — multipart upload of the signed paperwork.
// Replaces any previous document for the record.
func UploadOnboardingDocument(c *fiber.Ctx) error {
	if !storage.Enabled() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "document storage is not configured", nil)
	}

	id := c.Params("id")
	var onboarding models.Onboarding
	if err := config.DB.First(&onboarding, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "onboarding record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve onboarding record", nil)
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "form field 'document' (file upload) is required", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid file upload", err.Error())
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("onboarding/%d/%s%s", onboarding.ID, uuid.NewString(), ext)

	if _, err := storage.UploadFile(c.Context(), fileHeader, key); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to upload document", nil)
	}

	oldKey := onboarding.DocumentKey
	onboarding.DocumentKey = key
	onboarding.DocumentsSubmitted = true

	if err := config.DB.Save(&onboarding).Error; err != nil {
		go storage.DeleteFile(context.Background(), key)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update onboarding record", nil)
	}

	if oldKey != "" {
		go func() {
			if err := storage.DeleteFile(context.Background(), oldKey); err != nil {
				log.Printf("failed to delete replaced document %s: %v", oldKey, err)
			}
		}()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "document uploaded successfully", dto.NewOnboardingResponse(onboarding))
}
