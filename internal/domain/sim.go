package domain

import (
	"time"

	"github.com/vfg2006/sim-manager/pkg/utils"
)

// UnknownOwner é o nome de exibição usado quando o proprietário não pode ser resolvido
const UnknownOwner = "Unknown"

// SIMRecord representa um SIM corporativo alocado a um funcionário.
// OwnerName e Region são uma cópia desnormalizada do proprietário tirada no
// momento da alocação; alterações posteriores no funcionário não são refletidas.
type SIMRecord struct {
	ID            string    `json:"id"`
	MobileNumber  string    `json:"mobileNumber"`
	DataAllowance float64   `json:"dataAllowance"` // GB
	SMSAllowance  int       `json:"smsAllowance"`
	VoiceMinutes  int       `json:"voiceMinutes"`
	DataUsed      float64   `json:"dataUsed"` // GB
	SMSUsed       int       `json:"smsUsed"`
	VoiceUsed     int       `json:"voiceUsed"`
	OwnerID       string    `json:"ownerId"`
	OwnerName     string    `json:"ownerName"`
	Region        string    `json:"region"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DataUsagePercent retorna o percentual consumido da franquia de dados.
// O uso pode ultrapassar a franquia, então o percentual pode passar de 100.
func (s *SIMRecord) DataUsagePercent() float64 {
	return usagePercent(s.DataUsed, s.DataAllowance)
}

// SMSUsagePercent retorna o percentual consumido da franquia de SMS
func (s *SIMRecord) SMSUsagePercent() float64 {
	return usagePercent(float64(s.SMSUsed), float64(s.SMSAllowance))
}

// VoiceUsagePercent retorna o percentual consumido da franquia de minutos de voz
func (s *SIMRecord) VoiceUsagePercent() float64 {
	return usagePercent(float64(s.VoiceUsed), float64(s.VoiceMinutes))
}

func usagePercent(used, allowance float64) float64 {
	if allowance <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((used / allowance) * 100)
}

// SIMInput carrega os dados de um formulário de cadastro de SIM
type SIMInput struct {
	MobileNumber  string  `json:"mobileNumber" validate:"required,min=10"`
	DataAllowance float64 `json:"dataAllowance" validate:"required,gte=1"`
	SMSAllowance  int     `json:"smsAllowance" validate:"required,gte=1"`
	VoiceMinutes  int     `json:"voiceMinutes" validate:"required,gte=1"`
	DataUsed      float64 `json:"dataUsed" validate:"gte=0"`
	SMSUsed       int     `json:"smsUsed" validate:"gte=0"`
	VoiceUsed     int     `json:"voiceUsed" validate:"gte=0"`
	OwnerID       string  `json:"ownerId" validate:"required"`
}
