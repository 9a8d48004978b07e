package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillbridge/backend/internal/models"
	"skillbridge/backend/internal/services"
)

func TestExtractText_RejectsNonPDFBytes(t *testing.T) {
	extractor := services.NewPDFExtractor(30)

	_, err := extractor.ExtractText([]byte("plain text pretending to be a pdf"))
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestExtractText_RejectsEmptyInput(t *testing.T) {
	extractor := services.NewPDFExtractor(30)

	_, err := extractor.ExtractText(nil)
	assert.Error(t, err)
}
