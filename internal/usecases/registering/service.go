package registering

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sim-manager/infrastructure/repository"
	"github.com/vfg2006/sim-manager/internal/domain"
	"github.com/vfg2006/sim-manager/pkg/utils"
)

// Registrar define o cadastro de funcionários e SIMs a partir dos
// formulários já submetidos pelas telas de gestão
type Registrar interface {
	// RegisterEmployee valida e insere um novo funcionário no início da coleção
	RegisterEmployee(input *domain.EmployeeInput) (*domain.Employee, error)

	// RegisterSIM valida e insere um novo SIM, com snapshot do proprietário
	RegisterSIM(input *domain.SIMInput) (*domain.SIMRecord, error)
}

// Service implementa Registrar sobre os repositórios em memória
type Service struct {
	employeeRepository repository.EmployeeRepository
	simRepository      repository.SIMRepository
	validate           *validator.Validate
}

// NewService cria uma nova instância do serviço de cadastro
func NewService(
	employeeRepo repository.EmployeeRepository,
	simRepo repository.SIMRepository,
) Registrar {
	validate := validator.New()

	// A região do formulário precisa pertencer à enumeração conhecida
	_ = validate.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return domain.IsValidRegion(fl.Field().String())
	})

	return &Service{
		employeeRepository: employeeRepo,
		simRepository:      simRepo,
		validate:           validate,
	}
}

// RegisterEmployee valida o formulário e insere o funcionário na coleção
func (s *Service) RegisterEmployee(input *domain.EmployeeInput) (*domain.Employee, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, ErrGenerateID.Error())
	}

	now := time.Now()
	employee := &domain.Employee{
		ID:               id,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
		Region:           input.Region,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.employeeRepository.Insert(employee); err != nil {
		logrus.WithError(err).WithField("employee_id", id).Error("Erro ao inserir funcionário")
		return nil, errors.Wrap(err, ErrRepositoryOperation.Error())
	}

	logrus.WithFields(logrus.Fields{
		"employee_id": employee.ID,
		"region":      employee.Region,
	}).Info("Funcionário cadastrado com sucesso")

	return employee, nil
}

// RegisterSIM valida o formulário, resolve o proprietário e insere o SIM.
// O nome e a região do proprietário são copiados no momento do cadastro;
// referência que não resolve degrada para "Unknown" em vez de falhar.
func (s *Service) RegisterSIM(input *domain.SIMInput) (*domain.SIMRecord, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	owner, err := s.employeeRepository.GetByID(input.OwnerID)
	if err != nil {
		logrus.WithError(err).WithField("owner_id", input.OwnerID).Error("Erro ao buscar o proprietário do SIM")
		return nil, errors.Wrap(err, ErrRepositoryOperation.Error())
	}

	ownerName := domain.UnknownOwner
	region := domain.UnknownRegion
	if owner != nil {
		ownerName = owner.FullName()
		region = owner.Region
	} else {
		logrus.WithField("owner_id", input.OwnerID).Warn("Proprietário do SIM não encontrado; cadastrando como Unknown")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, ErrGenerateID.Error())
	}

	now := time.Now()
	sim := &domain.SIMRecord{
		ID:            id,
		MobileNumber:  input.MobileNumber,
		DataAllowance: input.DataAllowance,
		SMSAllowance:  input.SMSAllowance,
		VoiceMinutes:  input.VoiceMinutes,
		DataUsed:      input.DataUsed,
		SMSUsed:       input.SMSUsed,
		VoiceUsed:     input.VoiceUsed,
		OwnerID:       input.OwnerID,
		OwnerName:     ownerName,
		Region:        region,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.simRepository.Insert(sim); err != nil {
		logrus.WithError(err).WithField("sim_id", id).Error("Erro ao inserir SIM")
		return nil, errors.Wrap(err, ErrRepositoryOperation.Error())
	}

	logrus.WithFields(logrus.Fields{
		"sim_id":        sim.ID,
		"mobile_number": sim.MobileNumber,
		"owner_id":      sim.OwnerID,
	}).Info("SIM cadastrado com sucesso")

	return sim, nil
}

// validateInput aplica as tags de validação do formulário e converte as
// violações para o formato exibido ao lado de cada campo
func (s *Service) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fieldErr.Field(),
			Rule:    fieldErr.Tag(),
			Message: fieldMessage(fieldErr),
		})
	}

	return &ValidationError{Fields: fields}
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s deve ter pelo menos %s caracteres", fieldErr.Field(), fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser no mínimo %s", fieldErr.Field(), fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s deve ser um e-mail válido", fieldErr.Field())
	case "region":
		return fmt.Sprintf("%s deve ser uma região conhecida", fieldErr.Field())
	default:
		return fmt.Sprintf("%s é inválido", fieldErr.Field())
	}
}
