package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sim-manager/infrastructure/repository"
	"github.com/vfg2006/sim-manager/internal/domain"
	"github.com/vfg2006/sim-manager/pkg/utils"
)

// trendDays é o tamanho fixo da janela dos gráficos de tendência
const trendDays = 7

// Service implementa Reporter sobre os repositórios de funcionários e SIMs
type Service struct {
	employeeRepository repository.EmployeeRepository
	simRepository      repository.SIMRepository
}

// NewService cria uma nova instância do serviço de estatísticas
func NewService(
	employeeRepo repository.EmployeeRepository,
	simRepo repository.SIMRepository,
) Reporter {
	return &Service{
		employeeRepository: employeeRepo,
		simRepository:      simRepo,
	}
}

// GetDashboardStats busca as coleções atuais e recalcula as estatísticas.
// Não há cache: cada chamada recomputa sobre o estado corrente.
func (s *Service) GetDashboardStats() (*domain.DashboardStats, error) {
	employees, err := s.employeeRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar funcionários para o dashboard")
		return nil, err
	}

	sims, err := s.simRepository.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar SIMs para o dashboard")
		return nil, err
	}

	stats := ComputeStats(employees, sims)

	logrus.WithFields(logrus.Fields{
		"total_employees": stats.TotalEmployees,
		"total_sims":      stats.TotalSIMs,
	}).Debug("Estatísticas do dashboard recalculadas")

	return stats, nil
}

// ComputeStats deriva as estatísticas do dashboard a partir das coleções
// recebidas. É uma função pura: depende apenas dos argumentos (e do relógio,
// para ancorar a janela de tendência no dia corrente).
func ComputeStats(employees []*domain.Employee, sims []*domain.SIMRecord) *domain.DashboardStats {
	return statsAt(employees, sims, time.Now())
}

func statsAt(employees []*domain.Employee, sims []*domain.SIMRecord, now time.Time) *domain.DashboardStats {
	return &domain.DashboardStats{
		TotalEmployees: len(employees),
		TotalSIMs:      len(sims),
		EmployeesByRegion: regionBreakdown(employees, func(e *domain.Employee) string {
			return e.Region
		}),
		SIMsByRegion: regionBreakdown(sims, func(s *domain.SIMRecord) string {
			return s.Region
		}),
		EmployeeTrend: trendSeries(employees, func(e *domain.Employee) time.Time {
			return e.CreatedAt
		}, now),
		SIMTrend: trendSeries(sims, func(s *domain.SIMRecord) time.Time {
			return s.CreatedAt
		}, now),
	}
}

// regionBreakdown conta os registros por região preservando a ordem da
// enumeração fixa (nunca por contagem); regiões sem registros são omitidas
func regionBreakdown[T any](items []T, regionOf func(T) string) []domain.RegionCount {
	counts := make(map[string]int, len(domain.Regions))
	for _, item := range items {
		counts[regionOf(item)]++
	}

	breakdown := make([]domain.RegionCount, 0, len(domain.Regions))
	for _, region := range domain.Regions {
		if counts[region] > 0 {
			breakdown = append(breakdown, domain.RegionCount{
				Region: region,
				Count:  counts[region],
			})
		}
	}
	return breakdown
}

// trendSeries produz um ponto por dia para os últimos trendDays dias, do mais
// antigo para o mais recente, terminando no dia corrente. Um registro entra
// no balde do dia quando a data de calendário local da criação coincide.
func trendSeries[T any](items []T, createdAt func(T) time.Time, now time.Time) []domain.TrendPoint {
	series := make([]domain.TrendPoint, 0, trendDays)

	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		count := 0
		for _, item := range items {
			if utils.SameDay(createdAt(item), day) {
				count++
			}
		}

		series = append(series, domain.TrendPoint{
			Date:  utils.FormatMonthDay(day),
			Count: count,
		})
	}
	return series
}
