package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillbridge/backend/internal/models"
	"skillbridge/backend/internal/repositories"
)

const minResumeLen = 50

// AnalyzerService runs the full analysis pipeline for one request:
// validate → build prompt → AI call → normalize → persist scan →
// update user aggregates.
type AnalyzerService interface {
	Analyze(ctx context.Context, userID uuid.UUID, resume, jobRole, jobDescription string) (*models.AnalyzeResponse, error)
}

type analyzerService struct {
	scanRepo      repositories.ScanRepository
	aiClient      AIClient
	promptBuilder *PromptBuilder
	normalizer    *Normalizer
	statsUpdater  StatsUpdater
	aiTimeout     time.Duration
}

func NewAnalyzerService(
	scanRepo repositories.ScanRepository,
	aiClient AIClient,
	statsUpdater StatsUpdater,
	aiTimeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		scanRepo:      scanRepo,
		aiClient:      aiClient,
		promptBuilder: NewPromptBuilder(),
		normalizer:    NewNormalizer(),
		statsUpdater:  statsUpdater,
		aiTimeout:     aiTimeout,
	}
}

// Analyze implements AnalyzerService. Validation happens before the AI
// call so a bad request never spends an upstream invocation.
func (s *analyzerService) Analyze(ctx context.Context, userID uuid.UUID, resume, jobRole, jobDescription string) (*models.AnalyzeResponse, error) {
	resume = strings.TrimSpace(resume)
	jobRole = strings.TrimSpace(jobRole)
	jobDescription = strings.TrimSpace(jobDescription)

	if resume == "" {
		return nil, fmt.Errorf("%w: resume text required", models.ErrValidation)
	}
	if jobRole == "" {
		return nil, fmt.Errorf("%w: job role required", models.ErrValidation)
	}
	if len(resume) < minResumeLen {
		return nil, fmt.Errorf("%w: resume too short", models.ErrValidation)
	}

	prompt := s.promptBuilder.BuildAnalysisPrompt(resume, jobRole, jobDescription)

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	raw, err := s.aiClient.GenerateText(aiCtx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := s.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	jdMatchPercent := 0
	if result.JDMatch != nil {
		jdMatchPercent = result.JDMatch.MatchPercentage
	}

	scan := &models.Scan{
		ID:             uuid.New(),
		UserID:         userID,
		JobRole:        jobRole,
		ATSScore:       result.ATSScore,
		JDMatchPercent: jdMatchPercent,
		ScannedAt:      time.Now().UTC(),
		Result:         *result,
	}

	if err := s.scanRepo.Create(scan); err != nil {
		return nil, err
	}

	// Scan is durable at this point; a failed aggregate update is logged
	// and the stale average self-corrects on the next scan.
	if err := s.statsUpdater.Recalculate(userID); err != nil {
		log.Printf("⚠️  Failed to update stats for user %s: %v\n", userID, err)
	}

	return &models.AnalyzeResponse{
		ScanID:         scan.ID.String(),
		AnalysisResult: *result,
	}, nil
}
