package domain

import (
	"fmt"
	"time"
)

// Employee representa um funcionário com direito a alocação de SIM.
// Registros são imutáveis por substituição: atualizações geram um novo valor,
// nunca mutação observável por quem guarda uma referência antiga.
type Employee struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergencyContact"`
	Region           string    `json:"region"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// FullName retorna o nome de exibição do funcionário
func (e *Employee) FullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

// EmployeeInput carrega os dados de um formulário de cadastro de funcionário.
// As tags de validação são o contrato de aceitação do formulário: quando a
// validação falha nenhum registro parcial é criado.
type EmployeeInput struct {
	FirstName        string `json:"firstName" validate:"required,min=2"`
	LastName         string `json:"lastName" validate:"required,min=2"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phoneNumber" validate:"required,min=10"`
	Address          string `json:"address" validate:"required,min=5"`
	EmergencyContact string `json:"emergencyContact" validate:"required,min=10"`
	Region           string `json:"region" validate:"required,region"`
}
