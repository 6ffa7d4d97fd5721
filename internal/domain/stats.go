package domain

// RegionCount é a quantidade de registros de uma região
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// TrendPoint é o total de criações de um dia do gráfico de tendência.
// Date é o rótulo curto do dia (ex: "Jan 5").
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardStats agrega as estatísticas derivadas exibidas no dashboard.
// Não é persistido: é recalculado sob demanda a partir das coleções.
type DashboardStats struct {
	TotalEmployees    int           `json:"totalEmployees"`
	TotalSIMs         int           `json:"totalSIMs"`
	EmployeesByRegion []RegionCount `json:"employeesByRegion"`
	SIMsByRegion      []RegionCount `json:"simsByRegion"`
	EmployeeTrend     []TrendPoint  `json:"employeeTrend"`
	SIMTrend          []TrendPoint  `json:"simTrend"`
}
