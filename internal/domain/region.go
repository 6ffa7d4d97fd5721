// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Regions é a enumeração fixa de regiões usadas para agrupar funcionários e SIMs.
// A ordem da lista é a ordem canônica dos agrupamentos do dashboard.
var Regions = []string{
	"Delhi",
	"Mumbai",
	"Bangalore",
	"Chennai",
	"Kolkata",
	"Hyderabad",
	"Pune",
	"Ahmedabad",
}

// UnknownRegion é o valor usado quando a região não pode ser resolvida
const UnknownRegion = "Unknown"

// IsValidRegion verifica se a região pertence à enumeração conhecida
func IsValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}
