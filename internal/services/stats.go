package services

import (
	"github.com/google/uuid"

	"skillbridge/backend/internal/repositories"
)

// StatsUpdater recomputes a user's aggregate counters after each saved
// scan. The read-then-write sequence is not isolated from a concurrent
// scan by the same user; a stale average self-corrects on the next scan.
type StatsUpdater interface {
	Recalculate(userID uuid.UUID) error
}

type statsUpdater struct {
	userRepo repositories.UserRepository
	scanRepo repositories.ScanRepository
}

func NewStatsUpdater(userRepo repositories.UserRepository, scanRepo repositories.ScanRepository) StatsUpdater {
	return &statsUpdater{
		userRepo: userRepo,
		scanRepo: scanRepo,
	}
}

// Recalculate implements StatsUpdater. total_scans is the count of all
// scans for the user; avg_ats_score is the floor of their mean ats_score.
// O(total scans) per new scan, acceptable at the declared scale.
func (s *statsUpdater) Recalculate(userID uuid.UUID) error {
	scans, err := s.scanRepo.FindAllByUser(userID)
	if err != nil {
		return err
	}

	if len(scans) == 0 {
		return s.userRepo.UpdateStats(userID, 0, 0)
	}

	sum := 0
	for _, scan := range scans {
		sum += scan.ATSScore
	}

	return s.userRepo.UpdateStats(userID, len(scans), sum/len(scans))
}
