package services

import (
	"time"

	"github.com/google/uuid"

	"skillbridge/backend/internal/models"
	"skillbridge/backend/internal/repositories"
)

const (
	recentScansWindow = 10
	trendWindow       = 7
)

// DashboardService derives the per-user analytics view. Read-only; it
// never mutates store state.
type DashboardService interface {
	GetDashboard(userID uuid.UUID) (*models.DashboardResponse, error)
	GetScan(userID, scanID uuid.UUID) (*models.Scan, error)
}

type dashboardService struct {
	userRepo repositories.UserRepository
	scanRepo repositories.ScanRepository
}

func NewDashboardService(userRepo repositories.UserRepository, scanRepo repositories.ScanRepository) DashboardService {
	return &dashboardService{
		userRepo: userRepo,
		scanRepo: scanRepo,
	}
}

// GetDashboard implements DashboardService. The trend is a prefix of the
// recent-scans list and the role distribution counts only the fetched
// window, not the user's entire history.
func (s *dashboardService) GetDashboard(userID uuid.UUID) (*models.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.scanRepo.FindRecentByUser(userID, recentScansWindow)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []models.ScanSummary{}
	}

	trend := make([]models.TrendPoint, 0, trendWindow)
	for i, scan := range recent {
		if i == trendWindow {
			break
		}
		trend = append(trend, models.TrendPoint{
			Role:  scan.JobRole,
			Score: scan.ATSScore,
			Date:  scan.ScannedAt.Format(time.RFC3339),
		})
	}

	counts := map[string]int{}
	order := []string{}
	for _, scan := range recent {
		if _, seen := counts[scan.JobRole]; !seen {
			order = append(order, scan.JobRole)
		}
		counts[scan.JobRole]++
	}

	distribution := make([]models.RoleCount, 0, len(order))
	for _, role := range order {
		distribution = append(distribution, models.RoleCount{
			Role:  role,
			Count: counts[role],
		})
	}

	return &models.DashboardResponse{
		User:             user,
		TotalScans:       user.TotalScans,
		AvgATS:           user.AvgATSScore,
		RecentScans:      recent,
		ATSTrend:         trend,
		RoleDistribution: distribution,
	}, nil
}

// GetScan implements DashboardService. Ownership is enforced in the
// query itself; non-owned ids come back as not-found.
func (s *dashboardService) GetScan(userID, scanID uuid.UUID) (*models.Scan, error) {
	return s.scanRepo.FindByIDAndUser(scanID, userID)
}
