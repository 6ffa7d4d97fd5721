package reporting

import (
	"github.com/vfg2006/sim-manager/internal/domain"
)

// Reporter define a interface para obter as estatísticas do dashboard
type Reporter interface {
	// GetDashboardStats recalcula as estatísticas a partir das coleções atuais
	GetDashboardStats() (*domain.DashboardStats, error)
}
