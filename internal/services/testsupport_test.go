package services_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"skillbridge/backend/internal/models"
	"skillbridge/backend/internal/repositories"
)

// In-memory fakes for the repository and AI ports. Shared by the service
// tests in this package.

type memScanRepo struct {
	scans     []models.Scan
	createErr error
}

var _ repositories.ScanRepository = (*memScanRepo)(nil)

func (r *memScanRepo) Create(scan *models.Scan) error {
	if r.createErr != nil {
		return r.createErr
	}
	scan.Seq = int64(len(r.scans) + 1)
	r.scans = append(r.scans, *scan)
	return nil
}

func (r *memScanRepo) FindByIDAndUser(id, userID uuid.UUID) (*models.Scan, error) {
	for i := range r.scans {
		if r.scans[i].ID == id && r.scans[i].UserID == userID {
			scan := r.scans[i]
			return &scan, nil
		}
	}
	return nil, fmt.Errorf("%w: scan", models.ErrNotFound)
}

func (r *memScanRepo) FindRecentByUser(userID uuid.UUID, limit int) ([]models.ScanSummary, error) {
	var owned []models.Scan
	for _, s := range r.scans {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		if !owned[i].ScannedAt.Equal(owned[j].ScannedAt) {
			return owned[i].ScannedAt.After(owned[j].ScannedAt)
		}
		return owned[i].Seq > owned[j].Seq
	})
	if len(owned) > limit {
		owned = owned[:limit]
	}
	summaries := make([]models.ScanSummary, 0, len(owned))
	for _, s := range owned {
		summaries = append(summaries, models.ScanSummary{
			ID:             s.ID,
			JobRole:        s.JobRole,
			ATSScore:       s.ATSScore,
			JDMatchPercent: s.JDMatchPercent,
			ScannedAt:      s.ScannedAt,
		})
	}
	return summaries, nil
}

func (r *memScanRepo) FindAllByUser(userID uuid.UUID) ([]models.Scan, error) {
	var owned []models.Scan
	for _, s := range r.scans {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}
	return owned, nil
}

type memUserRepo struct {
	users       map[uuid.UUID]*models.User
	statsErr    error
	statsCalled int
}

var _ repositories.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *memUserRepo) Create(user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: user", models.ErrNotFound)
}

func (r *memUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user", models.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) UpdateStats(id uuid.UUID, totalScans, avgATSScore int) error {
	r.statsCalled++
	if r.statsErr != nil {
		return r.statsErr
	}
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("%w: user", models.ErrNotFound)
	}
	u.TotalScans = totalScans
	u.AvgATSScore = avgATSScore
	return nil
}

type stubAIClient struct {
	response string
	err      error
	calls    int
}

func (c *stubAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}
