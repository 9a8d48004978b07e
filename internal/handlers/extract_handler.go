package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillbridge/backend/internal/models"
	"skillbridge/backend/internal/services"
)

type ExtractHandler struct {
	pdfExtractor services.PDFExtractor
	maxFileSize  int64
}

func NewExtractHandler(pdfExtractor services.PDFExtractor, maxFileSize int64) *ExtractHandler {
	return &ExtractHandler{
		pdfExtractor: pdfExtractor,
		maxFileSize:  maxFileSize,
	}
}

func (h *ExtractHandler) HandleExtractPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded.",
		})
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF files supported.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large (max %d MB).", h.maxFileSize/(1024*1024)),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file.",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file.",
		})
	}

	content, err := h.pdfExtractor.ExtractText(data)
	if err != nil {
		return err
	}

	return c.JSON(models.ExtractResponse{
		Text:  content.Text,
		Pages: content.PageCount,
	})
}
