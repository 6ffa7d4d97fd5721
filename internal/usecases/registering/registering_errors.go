package registering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cadastro de registros
var (
	// Erros de validação
	ErrInvalidInput = errors.New("dados de cadastro inválidos")
	ErrNilInput     = errors.New("cadastro sem dados")

	// Erros de infraestrutura
	ErrGenerateID          = errors.New("erro ao gerar o ID do registro")
	ErrRepositoryOperation = errors.New("erro ao gravar o registro na coleção")
)

// FieldError descreve a violação de um único campo do formulário
type FieldError struct {
	Field   string `json:"field"`   // Nome do campo violado
	Rule    string `json:"rule"`    // Regra que falhou (required, min, email, ...)
	Message string `json:"message"` // Mensagem para exibição junto ao campo
}

// ValidationError agrega as violações de um formulário submetido.
// Quando ele é retornado, nenhum registro parcial foi criado.
type ValidationError struct {
	Fields []FieldError
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d campo(s) inválido(s)", ErrInvalidInput.Error(), len(e.Fields))
}

// Unwrap permite errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// FieldMessages mapeia campo -> mensagem, no formato que as telas exibem
// ao lado de cada campo do formulário
func (e *ValidationError) FieldMessages() map[string]string {
	messages := make(map[string]string, len(e.Fields))
	for _, field := range e.Fields {
		if _, exists := messages[field.Field]; !exists {
			messages[field.Field] = field.Message
		}
	}
	return messages
}
