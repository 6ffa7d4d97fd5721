package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sim-manager/infrastructure/repository"
	"github.com/vfg2006/sim-manager/internal/config"
	"github.com/vfg2006/sim-manager/internal/domain"
	"github.com/vfg2006/sim-manager/internal/mockdata"
	"github.com/vfg2006/sim-manager/internal/usecases/registering"
	"github.com/vfg2006/sim-manager/internal/usecases/reporting"
	"github.com/vfg2006/sim-manager/pkg/datatable"
	"github.com/vfg2006/sim-manager/pkg/log"
	"github.com/vfg2006/sim-manager/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, _ := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)

	// Gera o dataset da sessão (não há persistência: as coleções vivem
	// apenas enquanto o processo roda)
	generator := mockdata.NewGenerator(cfg.Dataset.Seed, cfg.Dataset.LookbackDays)

	employees, err := generator.Employees(cfg.Dataset.EmployeeCount)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar funcionários de demonstração")
	}

	sims, err := generator.SIMs(employees)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar SIMs de demonstração")
	}

	employeeRepo := repository.NewEmployeeRepository(employees)
	simRepo := repository.NewSIMRepository(sims)

	logger.WithFields(log.Fields{
		"employees": len(employees),
		"sims":      len(sims),
	}).Info("Dataset da sessão carregado")

	// Dashboard: estatísticas recalculadas sob demanda
	reporter := reporting.NewService(employeeRepo, simRepo)

	stats, err := reporter.GetDashboardStats()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular as estatísticas do dashboard")
	}
	logger.Info("Estatísticas do dashboard:\n", utils.PrettyJson(stats))

	// Fluxo de cadastro: um funcionário novo entra no início da coleção e o
	// SIM copia nome e região do proprietário no momento do cadastro
	registrar := registering.NewService(employeeRepo, simRepo)

	newEmployee, err := registrar.RegisterEmployee(&domain.EmployeeInput{
		FirstName:        "Ananya",
		LastName:         "Mehta",
		Email:            "ananya.mehta@company.com",
		PhoneNumber:      "+91 9876543210",
		Address:          "42, MG Road, Delhi",
		EmergencyContact: "+91 9123456780",
		Region:           "Delhi",
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao cadastrar funcionário de demonstração")
	}

	if _, err := registrar.RegisterSIM(&domain.SIMInput{
		MobileNumber:  "+91 9876543210",
		DataAllowance: 10,
		SMSAllowance:  500,
		VoiceMinutes:  1000,
		OwnerID:       newEmployee.ID,
	}); err != nil {
		logrus.WithError(err).Fatal("Erro ao cadastrar SIM de demonstração")
	}

	// As estatísticas refletem os cadastros imediatamente, sem cache
	stats, err = reporter.GetDashboardStats()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao recalcular as estatísticas do dashboard")
	}
	logger.WithFields(log.Fields{
		"total_employees": stats.TotalEmployees,
		"total_sims":      stats.TotalSIMs,
	}).Info("Estatísticas após os cadastros")

	employees, err = employeeRepo.List()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao listar funcionários")
	}
	sims, err = simRepo.List()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao listar SIMs")
	}

	// Telas de gestão: primeira página de cada listagem
	employeeTable := datatable.New(employees, employeeColumns(), datatable.Options{
		PageSize:   cfg.Table.PageSize,
		SearchKeys: []string{"FirstName", "LastName", "Email", "PhoneNumber", "Region"},
		SortKey:    "name",
	})
	logger.Infof("Funcionários (página %d de %d):\n%s",
		employeeTable.Page(), employeeTable.TotalPages(), utils.PrettyJson(employeeTable.VisibleRows()))

	simTable := datatable.New(sims, simColumns(), datatable.Options{
		PageSize:   cfg.Table.PageSize,
		SearchKeys: []string{"MobileNumber", "OwnerName", "Region"},
	})
	logger.Infof("SIMs (página %d de %d):\n%s",
		simTable.Page(), simTable.TotalPages(), utils.PrettyJson(simTable.VisibleRows()))
}

func employeeColumns() []datatable.Column[*domain.Employee] {
	return []datatable.Column[*domain.Employee]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(e *domain.Employee) any {
			return e.FullName()
		}},
		{Key: "email", Label: "Email", Sortable: true, Value: func(e *domain.Employee) any {
			return e.Email
		}},
		{Key: "phoneNumber", Label: "Phone", Sortable: true, Value: func(e *domain.Employee) any {
			return e.PhoneNumber
		}},
		{Key: "region", Label: "Region", Sortable: true, Value: func(e *domain.Employee) any {
			return e.Region
		}},
		{Key: "address", Label: "Address", Value: func(e *domain.Employee) any {
			return e.Address
		}},
		{Key: "emergencyContact", Label: "Emergency Contact", Value: func(e *domain.Employee) any {
			return e.EmergencyContact
		}},
	}
}

func simColumns() []datatable.Column[*domain.SIMRecord] {
	return []datatable.Column[*domain.SIMRecord]{
		{Key: "mobileNumber", Label: "Mobile Number", Sortable: true, Value: func(s *domain.SIMRecord) any {
			return s.MobileNumber
		}},
		{Key: "ownerName", Label: "Owner", Sortable: true, Value: func(s *domain.SIMRecord) any {
			return s.OwnerName
		}},
		{Key: "dataUsage", Label: "Data Usage", Value: func(s *domain.SIMRecord) any {
			return fmt.Sprintf("%.1f GB / %.0f GB (%.2f%%)", s.DataUsed, s.DataAllowance, s.DataUsagePercent())
		}},
		{Key: "smsUsage", Label: "SMS Usage", Value: func(s *domain.SIMRecord) any {
			return fmt.Sprintf("%d / %d (%.2f%%)", s.SMSUsed, s.SMSAllowance, s.SMSUsagePercent())
		}},
		{Key: "voiceUsage", Label: "Voice Usage", Value: func(s *domain.SIMRecord) any {
			return fmt.Sprintf("%d min / %d min (%.2f%%)", s.VoiceUsed, s.VoiceMinutes, s.VoiceUsagePercent())
		}},
		{Key: "region", Label: "Region", Sortable: true, Value: func(s *domain.SIMRecord) any {
			return s.Region
		}},
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
