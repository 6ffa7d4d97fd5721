// Package repository mantém as coleções de registros em memória. Não há
// persistência: as coleções vivem apenas durante a sessão do processo.
package repository

import (
	"errors"
	"sync"

	"github.com/vfg2006/sim-manager/internal/domain"
)

// Erros das operações sobre as coleções
var (
	ErrNilRecord   = errors.New("registro vazio")
	ErrDuplicateID = errors.New("já existe um registro com este ID")
)

type EmployeeRepository interface {
	List() ([]*domain.Employee, error)
	GetByID(id string) (*domain.Employee, error)
	Insert(employee *domain.Employee) error
}

type employeeRepository struct {
	mu        sync.RWMutex
	employees []*domain.Employee
}

// NewEmployeeRepository cria um repositório em memória, opcionalmente já
// populado com uma coleção inicial (a fatia recebida é copiada)
func NewEmployeeRepository(seed []*domain.Employee) EmployeeRepository {
	employees := make([]*domain.Employee, len(seed))
	copy(employees, seed)

	return &employeeRepository{
		employees: employees,
	}
}

// List retorna uma cópia da coleção na ordem atual (mais recentes primeiro).
// Quem guarda uma fatia antiga nunca observa inserções posteriores.
func (r *employeeRepository) List() ([]*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]*domain.Employee, len(r.employees))
	copy(employees, r.employees)
	return employees, nil
}

// GetByID busca um funcionário pelo ID; retorna nil quando não existe
func (r *employeeRepository) GetByID(id string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, employee := range r.employees {
		if employee.ID == id {
			return employee, nil
		}
	}
	return nil, nil
}

// Insert adiciona o registro no início da coleção
func (r *employeeRepository) Insert(employee *domain.Employee) error {
	if employee == nil {
		return ErrNilRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.ID == employee.ID {
			return ErrDuplicateID
		}
	}

	r.employees = append([]*domain.Employee{employee}, r.employees...)
	return nil
}
