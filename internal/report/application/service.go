package application

import (
	"context"

	"github.com/retailops/inventory-manager/internal/report/domain"
)

type Service struct {
	repo ReportRepository
}

func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo}
}

// DepartmentProfitReport returns one row per department, ordered by
// department id, including departments with no sales.
func (s *Service) DepartmentProfitReport(ctx context.Context) ([]domain.DepartmentProfit, error) {
	return s.repo.DepartmentProfit(ctx)
}
