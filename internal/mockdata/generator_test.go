package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sim-manager/internal/domain"
)

func TestGenerator_Employees(t *testing.T) {
	generator := NewGenerator(42, 90)

	employees, err := generator.Employees(50)

	assert.NoError(t, err)
	assert.Len(t, employees, 50)

	seen := map[string]bool{}
	for _, employee := range employees {
		assert.NotEmpty(t, employee.ID)
		assert.False(t, seen[employee.ID], "IDs devem ser únicos")
		seen[employee.ID] = true

		assert.True(t, domain.IsValidRegion(employee.Region))
		assert.Contains(t, employee.Email, "@company.com")
		assert.Contains(t, employee.PhoneNumber, "+91 ")
		assert.Equal(t, employee.CreatedAt, employee.UpdatedAt)

		// Datas de criação dentro da janela de lookback
		assert.False(t, employee.CreatedAt.After(time.Now()))
		assert.True(t, employee.CreatedAt.After(time.Now().AddDate(0, 0, -91)))
	}
}

func TestGenerator_SIMs(t *testing.T) {
	generator := NewGenerator(42, 90)

	employees, err := generator.Employees(20)
	assert.NoError(t, err)

	sims, err := generator.SIMs(employees)

	assert.NoError(t, err)
	assert.Len(t, sims, len(employees))

	for i, sim := range sims {
		owner := employees[i]

		// Snapshot do proprietário copiado na alocação
		assert.Equal(t, owner.ID, sim.OwnerID)
		assert.Equal(t, owner.FullName(), sim.OwnerName)
		assert.Equal(t, owner.Region, sim.Region)
		assert.Equal(t, owner.PhoneNumber, sim.MobileNumber)

		// Franquias positivas e uso não negativo
		assert.GreaterOrEqual(t, sim.DataAllowance, 5.0)
		assert.GreaterOrEqual(t, sim.SMSAllowance, 100)
		assert.GreaterOrEqual(t, sim.VoiceMinutes, 100)
		assert.GreaterOrEqual(t, sim.DataUsed, 0.0)
		assert.GreaterOrEqual(t, sim.SMSUsed, 0)
		assert.GreaterOrEqual(t, sim.VoiceUsed, 0)
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	first, err := NewGenerator(7, 30).Employees(10)
	assert.NoError(t, err)

	second, err := NewGenerator(7, 30).Employees(10)
	assert.NoError(t, err)

	// Mesma seed produz os mesmos nomes e regiões (IDs são opacos e variam)
	for i := range first {
		assert.Equal(t, first[i].FirstName, second[i].FirstName)
		assert.Equal(t, first[i].LastName, second[i].LastName)
		assert.Equal(t, first[i].Region, second[i].Region)
	}
}
