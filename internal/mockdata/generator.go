// Package mockdata gera as coleções de demonstração usadas pela sessão.
// É uma fixture externa ao núcleo: nenhum contrato do dashboard ou das
// tabelas depende do formato gerado aqui.
package mockdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vfg2006/sim-manager/internal/domain"
	"github.com/vfg2006/sim-manager/pkg/utils"
)

var (
	firstNames = []string{"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Anjali", "Rohan", "Neha", "Arjun", "Kavita"}
	lastNames  = []string{"Sharma", "Patel", "Singh", "Kumar", "Gupta", "Verma", "Reddy", "Joshi", "Nair", "Iyer"}

	// Planos comerciais de franquia
	dataTiers  = []float64{5, 10, 15, 20, 30}
	smsTiers   = []int{100, 200, 500, 1000}
	voiceTiers = []int{100, 200, 500, 1000, 2000}
)

const defaultLookbackDays = 90

// Generator produz coleções reprodutíveis a partir de uma seed
type Generator struct {
	rng          *rand.Rand
	lookbackDays int
}

// NewGenerator cria um gerador; seed 0 usa o relógio (coleções diferentes a
// cada sessão) e lookbackDays limita a idade das datas de criação geradas
func NewGenerator(seed int64, lookbackDays int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if lookbackDays <= 0 {
		lookbackDays = defaultLookbackDays
	}

	return &Generator{
		rng:          rand.New(rand.NewSource(seed)),
		lookbackDays: lookbackDays,
	}
}

// Employees gera a coleção de funcionários de demonstração
func (g *Generator) Employees(count int) ([]*domain.Employee, error) {
	employees := make([]*domain.Employee, 0, count)

	for i := 0; i < count; i++ {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		firstName := pick(g.rng, firstNames)
		lastName := pick(g.rng, lastNames)
		region := pick(g.rng, domain.Regions)
		createdAt := g.randomCreationDate()

		employees = append(employees, &domain.Employee{
			ID:               id,
			FirstName:        firstName,
			LastName:         lastName,
			Email:            fmt.Sprintf("%s.%s%d@company.com", strings.ToLower(firstName), strings.ToLower(lastName), i),
			PhoneNumber:      g.phoneNumber(),
			Address:          fmt.Sprintf("%d, Street %d, %s", g.rng.Intn(999)+1, g.rng.Intn(50)+1, region),
			EmergencyContact: g.phoneNumber(),
			Region:           region,
			CreatedAt:        createdAt,
			UpdatedAt:        createdAt,
		})
	}

	return employees, nil
}

// SIMs gera um SIM para cada funcionário, com o snapshot do proprietário
// copiado no momento da alocação
func (g *Generator) SIMs(employees []*domain.Employee) ([]*domain.SIMRecord, error) {
	sims := make([]*domain.SIMRecord, 0, len(employees))

	for _, employee := range employees {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		dataAllowance := pick(g.rng, dataTiers)
		smsAllowance := pick(g.rng, smsTiers)
		voiceMinutes := pick(g.rng, voiceTiers)

		sims = append(sims, &domain.SIMRecord{
			ID:            id,
			MobileNumber:  employee.PhoneNumber,
			DataAllowance: dataAllowance,
			SMSAllowance:  smsAllowance,
			VoiceMinutes:  voiceMinutes,
			DataUsed:      utils.RoundWithTwoDecimalPlace(g.rng.Float64() * dataAllowance),
			SMSUsed:       g.rng.Intn(smsAllowance),
			VoiceUsed:     g.rng.Intn(voiceMinutes),
			OwnerID:       employee.ID,
			OwnerName:     employee.FullName(),
			Region:        employee.Region,
			CreatedAt:     employee.CreatedAt,
			UpdatedAt:     employee.UpdatedAt,
		})
	}

	return sims, nil
}

func (g *Generator) phoneNumber() string {
	return fmt.Sprintf("+91 %d", g.rng.Int63n(9000000000)+1000000000)
}

func (g *Generator) randomCreationDate() time.Time {
	return time.Now().AddDate(0, 0, -g.rng.Intn(g.lookbackDays))
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}
