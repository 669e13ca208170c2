package models

// OwnerType is the legal form of a property owner.
type OwnerType string

const (
	OwnerTypeLLC         OwnerType = "LLC"
	OwnerTypeIndividual  OwnerType = "Individual"
	OwnerTypeTrust       OwnerType = "Trust"
	OwnerTypeCorporation OwnerType = "Corporation"
)

// RiskScore is a qualitative label attached to an owner record.
type RiskScore string

const (
	RiskLow    RiskScore = "Low"
	RiskMedium RiskScore = "Medium"
	RiskHigh   RiskScore = "High"
)

// OwnerInfo is the synthetic ownership record shown in the owner lookup.
type OwnerInfo struct {
	Name             string    `json:"name"`
	Type             OwnerType `json:"type"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	MailingAddress   string    `json:"mailing_address"`
	AcquisitionDate  string    `json:"acquisition_date"`
	AcquisitionPrice float64   `json:"acquisition_price"`
	EstimatedEquity  float64   `json:"estimated_equity"`
	LinkedProperties int       `json:"linked_properties"`
	RiskScore        RiskScore `json:"risk_score"`
}
