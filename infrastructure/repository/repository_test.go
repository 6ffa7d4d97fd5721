package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sim-manager/internal/domain"
)

func TestEmployeeRepository_InsertPrepends(t *testing.T) {
	repo := NewEmployeeRepository([]*domain.Employee{
		{ID: "emp-1", FirstName: "Rahul"},
		{ID: "emp-2", FirstName: "Priya"},
	})

	err := repo.Insert(&domain.Employee{ID: "emp-3", FirstName: "Ananya"})
	assert.NoError(t, err)

	employees, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, employees, 3)

	// A inserção entra no início, preservando a ordem dos demais
	assert.Equal(t, "emp-3", employees[0].ID)
	assert.Equal(t, "emp-1", employees[1].ID)
	assert.Equal(t, "emp-2", employees[2].ID)
}

func TestEmployeeRepository_InsertRejectsInvalid(t *testing.T) {
	repo := NewEmployeeRepository([]*domain.Employee{
		{ID: "emp-1"},
	})

	assert.ErrorIs(t, repo.Insert(nil), ErrNilRecord)
	assert.ErrorIs(t, repo.Insert(&domain.Employee{ID: "emp-1"}), ErrDuplicateID)

	employees, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	repo := NewEmployeeRepository([]*domain.Employee{
		{ID: "emp-1", FirstName: "Rahul"},
	})

	employee, err := repo.GetByID("emp-1")
	assert.NoError(t, err)
	assert.Equal(t, "Rahul", employee.FirstName)

	// ID desconhecido não é erro, apenas ausência
	missing, err := repo.GetByID("emp-99")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEmployeeRepository_ListIsIsolated(t *testing.T) {
	seed := []*domain.Employee{
		{ID: "emp-1"},
	}
	repo := NewEmployeeRepository(seed)

	before, err := repo.List()
	assert.NoError(t, err)

	assert.NoError(t, repo.Insert(&domain.Employee{ID: "emp-2"}))

	// Fatias antigas não observam inserções posteriores
	assert.Len(t, before, 1)

	// Mutação na fatia inicial também não afeta a coleção
	seed[0] = nil
	after, err := repo.List()
	assert.NoError(t, err)
	assert.Equal(t, "emp-1", after[1].ID)
}

func TestSIMRepository_InsertAndLookup(t *testing.T) {
	repo := NewSIMRepository(nil)

	err := repo.Insert(&domain.SIMRecord{ID: "sim-1", MobileNumber: "+91 9876543210"})
	assert.NoError(t, err)

	sims, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, sims, 1)

	sim, err := repo.GetByID("sim-1")
	assert.NoError(t, err)
	assert.Equal(t, "+91 9876543210", sim.MobileNumber)

	missing, err := repo.GetByID("sim-99")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	assert.ErrorIs(t, repo.Insert(nil), ErrNilRecord)
	assert.ErrorIs(t, repo.Insert(&domain.SIMRecord{ID: "sim-1"}), ErrDuplicateID)
}
