package repository

import (
	"sync"

	"github.com/vfg2006/sim-manager/internal/domain"
)

type SIMRepository interface {
	List() ([]*domain.SIMRecord, error)
	GetByID(id string) (*domain.SIMRecord, error)
	Insert(sim *domain.SIMRecord) error
}

type simRepository struct {
	mu   sync.RWMutex
	sims []*domain.SIMRecord
}

// NewSIMRepository cria um repositório em memória, opcionalmente já populado
func NewSIMRepository(seed []*domain.SIMRecord) SIMRepository {
	sims := make([]*domain.SIMRecord, len(seed))
	copy(sims, seed)

	return &simRepository{
		sims: sims,
	}
}

// List retorna uma cópia da coleção na ordem atual (mais recentes primeiro)
func (r *simRepository) List() ([]*domain.SIMRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sims := make([]*domain.SIMRecord, len(r.sims))
	copy(sims, r.sims)
	return sims, nil
}

// GetByID busca um SIM pelo ID; retorna nil quando não existe
func (r *simRepository) GetByID(id string) (*domain.SIMRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sim := range r.sims {
		if sim.ID == id {
			return sim, nil
		}
	}
	return nil, nil
}

// Insert adiciona o registro no início da coleção
func (r *simRepository) Insert(sim *domain.SIMRecord) error {
	if sim == nil {
		return ErrNilRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sims {
		if existing.ID == sim.ID {
			return ErrDuplicateID
		}
	}

	r.sims = append([]*domain.SIMRecord{sim}, r.sims...)
	return nil
}
