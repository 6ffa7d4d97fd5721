package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sim-manager/infrastructure/repository/mocks"
	"github.com/vfg2006/sim-manager/internal/domain"
	"github.com/vfg2006/sim-manager/pkg/utils"
	"go.uber.org/mock/gomock"
)

// Data de referência dos testes (meio do dia para evitar bordas de calendário)
var testNow = time.Date(2024, 1, 16, 12, 0, 0, 0, time.Local)

func employeeIn(region string, createdAt time.Time) *domain.Employee {
	return &domain.Employee{
		ID:        "emp-" + region + createdAt.Format("0102"),
		FirstName: "Rahul",
		LastName:  "Sharma",
		Region:    region,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func simIn(region string, createdAt time.Time) *domain.SIMRecord {
	return &domain.SIMRecord{
		ID:        "sim-" + region + createdAt.Format("0102"),
		Region:    region,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestStatsAt_RegionBreakdown(t *testing.T) {
	tests := []struct {
		name      string
		employees []*domain.Employee
		expected  []domain.RegionCount
	}{
		{
			name: "Regiões na ordem da enumeração, não por contagem",
			employees: []*domain.Employee{
				employeeIn("Pune", testNow),
				employeeIn("Delhi", testNow),
				employeeIn("Delhi", testNow.AddDate(0, 0, -1)),
			},
			expected: []domain.RegionCount{
				{Region: "Delhi", Count: 2},
				{Region: "Pune", Count: 1},
			},
		},
		{
			name:      "Coleção vazia produz agrupamento vazio",
			employees: []*domain.Employee{},
			expected:  []domain.RegionCount{},
		},
		{
			name: "Região com contagem zero é omitida",
			employees: []*domain.Employee{
				employeeIn("Ahmedabad", testNow),
			},
			expected: []domain.RegionCount{
				{Region: "Ahmedabad", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := statsAt(tt.employees, nil, testNow)

			assert.Equal(t, tt.expected, stats.EmployeesByRegion)
			assert.Equal(t, len(tt.employees), stats.TotalEmployees)

			// A soma das contagens sempre fecha com o tamanho da coleção
			sum := 0
			seen := map[string]bool{}
			for _, entry := range stats.EmployeesByRegion {
				sum += entry.Count
				assert.False(t, seen[entry.Region], "região repetida no agrupamento")
				assert.True(t, domain.IsValidRegion(entry.Region))
				seen[entry.Region] = true
			}
			assert.Equal(t, len(tt.employees), sum)
		})
	}
}

func TestStatsAt_TrendSeries(t *testing.T) {
	employees := []*domain.Employee{
		employeeIn("Delhi", testNow),                    // hoje
		employeeIn("Mumbai", testNow.AddDate(0, 0, -6)), // primeiro dia da janela
		employeeIn("Pune", testNow.AddDate(0, 0, -7)),   // fora da janela
		employeeIn("Delhi", testNow.Add(-2*time.Hour)),  // hoje, outro horário
	}

	stats := statsAt(employees, nil, testNow)

	// Sempre 7 pontos, do mais antigo para o mais recente
	assert.Len(t, stats.EmployeeTrend, 7)
	assert.Equal(t, utils.FormatMonthDay(testNow.AddDate(0, 0, -6)), stats.EmployeeTrend[0].Date)
	assert.Equal(t, utils.FormatMonthDay(testNow), stats.EmployeeTrend[6].Date)

	// O horário do registro não importa, só a data de calendário
	assert.Equal(t, 1, stats.EmployeeTrend[0].Count)
	assert.Equal(t, 2, stats.EmployeeTrend[6].Count)

	// Dias sem criação ficam com zero
	assert.Equal(t, 0, stats.EmployeeTrend[3].Count)

	// A série de SIMs é independente
	assert.Len(t, stats.SIMTrend, 7)
	for _, point := range stats.SIMTrend {
		assert.Equal(t, 0, point.Count)
	}
}

func TestStatsAt_EmptyInput(t *testing.T) {
	stats := statsAt(nil, nil, testNow)

	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Equal(t, 0, stats.TotalSIMs)
	assert.Empty(t, stats.EmployeesByRegion)
	assert.Empty(t, stats.SIMsByRegion)
	assert.Len(t, stats.EmployeeTrend, 7)
	assert.Len(t, stats.SIMTrend, 7)
}

func TestStatsAt_RecomputeAfterPrepend(t *testing.T) {
	employees := []*domain.Employee{
		employeeIn("Delhi", testNow.AddDate(0, 0, -2)),
		employeeIn("Mumbai", testNow.AddDate(0, 0, -3)),
	}
	sims := []*domain.SIMRecord{
		simIn("Delhi", testNow.AddDate(0, 0, -2)),
	}

	before := statsAt(employees, sims, testNow)

	// Nova coleção com um registro criado hoje no início, como fazem as telas
	newEmployee := employeeIn("Delhi", testNow)
	employees = append([]*domain.Employee{newEmployee}, employees...)

	after := statsAt(employees, sims, testNow)

	assert.Equal(t, before.TotalEmployees+1, after.TotalEmployees)
	assert.Equal(t, before.TotalSIMs, after.TotalSIMs)

	// Só a região do novo registro muda, e exatamente em 1
	assert.Equal(t, before.EmployeesByRegion[0].Count+1, after.EmployeesByRegion[0].Count)
	assert.Equal(t, "Delhi", after.EmployeesByRegion[0].Region)
	assert.Equal(t, before.EmployeesByRegion[1], after.EmployeesByRegion[1])

	// Só o balde de hoje muda, e exatamente em 1
	assert.Equal(t, before.EmployeeTrend[6].Count+1, after.EmployeeTrend[6].Count)
	for i := 0; i < 6; i++ {
		assert.Equal(t, before.EmployeeTrend[i], after.EmployeeTrend[i])
	}
}

func TestService_GetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := mocks.NewMockEmployeeRepository(ctrl)
	mockSIMRepo := mocks.NewMockSIMRepository(ctrl)

	service := NewService(mockEmployeeRepo, mockSIMRepo)

	employees := []*domain.Employee{
		employeeIn("Delhi", testNow),
		employeeIn("Chennai", testNow),
	}
	sims := []*domain.SIMRecord{
		simIn("Delhi", testNow),
	}

	mockEmployeeRepo.EXPECT().List().Return(employees, nil)
	mockSIMRepo.EXPECT().List().Return(sims, nil)

	stats, err := service.GetDashboardStats()

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalEmployees)
	assert.Equal(t, 1, stats.TotalSIMs)
	assert.Equal(t, []domain.RegionCount{
		{Region: "Delhi", Count: 1},
		{Region: "Chennai", Count: 1},
	}, stats.EmployeesByRegion)
}

func TestService_GetDashboardStats_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := mocks.NewMockEmployeeRepository(ctrl)
	mockSIMRepo := mocks.NewMockSIMRepository(ctrl)

	service := NewService(mockEmployeeRepo, mockSIMRepo)

	expectedErr := errors.New("coleção indisponível")
	mockEmployeeRepo.EXPECT().List().Return(nil, expectedErr)

	stats, err := service.GetDashboardStats()

	assert.Nil(t, stats)
	assert.Equal(t, expectedErr, err)
}
