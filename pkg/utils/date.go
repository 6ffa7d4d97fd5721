package utils

import "time"

// SameDay verifica se dois instantes caem no mesmo dia de calendário local
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatMonthDay formata a data no rótulo curto usado nos gráficos (ex: "Jan 5")
func FormatMonthDay(t time.Time) string {
	return t.Format("Jan 2")
}
