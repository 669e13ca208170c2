// Package owners fabricates ownership records for the owner lookup.
//
// Every record is a pure function of the property id, price and days on
// market: a random.Seeded stream is keyed by the id and consumed in a frozen
// order. Changing the order of the draws changes every generated record.
//
// Draw order:
//
//  1. owner is an LLC (roll > 0.4)
//  2. owner is a Trust (roll > 0.5, only drawn when not an LLC)
//  3. name index
//  4. email suffix (only drawn when not an LLC)
//  5. years since acquisition (2..9)
//  6. acquisition price factor (0.55..0.85 of list price)
//  7. acquisition month (01..12)
//  8. acquisition day (01..28)
//  9. risk score roll
//  10. phone exchange (100..999)
//  11. phone line (1000..9999)
//  12. mailing address index
//  13. linked properties (1..7)
package owners

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"propdash/server/internal/models"
	"propdash/server/internal/random"
)

const emailDomainLength = 15

var (
	whitespace      = regexp.MustCompile(`\s+`)
	companySuffixes = regexp.MustCompile(`(?i)llc|inc|corp|co\.`)
	riskLevels      = []models.RiskScore{models.RiskLow, models.RiskMedium, models.RiskHigh}
)

// RiskPolicy decides how days on market bias the synthetic risk score.
type RiskPolicy struct {
	// Listings on the market for more than CutoffDays use StaleWeights.
	CutoffDays   int
	FreshWeights []float64
	StaleWeights []float64
}

// DefaultRiskPolicy makes listings older than 60 days look riskier.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		CutoffDays:   60,
		FreshWeights: []float64{0.5, 0.35, 0.15},
		StaleWeights: []float64{0.1, 0.3, 0.6},
	}
}

func (p RiskPolicy) weights(daysOnMarket int) []float64 {
	if daysOnMarket > p.CutoffDays {
		return p.StaleWeights
	}
	return p.FreshWeights
}

// Generator builds OwnerInfo records. The zero value is not usable; use
// NewGenerator.
type Generator struct {
	risk RiskPolicy
	now  func() time.Time
}

// Option customises a Generator.
type Option func(*Generator)

// WithClock fixes the reference time used to compute acquisition years.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRiskPolicy replaces DefaultRiskPolicy.
func WithRiskPolicy(policy RiskPolicy) Option {
	return func(g *Generator) {
		g.risk = policy
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		risk: DefaultRiskPolicy(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateOwnerInfo uses the default policy and the current year.
func GenerateOwnerInfo(property models.Property) models.OwnerInfo {
	return NewGenerator().Generate(property)
}

// Generate fabricates the owner record for property. Only the id, price and
// days on market take part.
func (g *Generator) Generate(property models.Property) models.OwnerInfo {
	rng := random.New(property.ID)

	name, ownerType := pickIdentity(rng)
	email := generateEmail(name, ownerType, rng)
	acquisitionDate, acquisitionPrice := generateAcquisition(property.Price, g.now().Year(), rng)
	risk := random.WeightedPick(riskLevels, g.risk.weights(property.DaysOnMLS), rng.Next())
	phone := fmt.Sprintf("(305) %d-%d", rng.Intn(900)+100, rng.Intn(9000)+1000)
	mailing := mailingAddresses[rng.Intn(len(mailingAddresses))]
	linked := rng.Intn(7) + 1

	return models.OwnerInfo{
		Name:             name,
		Type:             ownerType,
		Email:            email,
		Phone:            phone,
		MailingAddress:   mailing,
		AcquisitionDate:  acquisitionDate,
		AcquisitionPrice: acquisitionPrice,
		EstimatedEquity:  property.Price - acquisitionPrice,
		LinkedProperties: linked,
		RiskScore:        risk,
	}
}

func pickIdentity(rng *random.Seeded) (string, models.OwnerType) {
	if rng.Next() > 0.4 {
		return llcNames[rng.Intn(len(llcNames))], models.OwnerTypeLLC
	}
	ownerType := models.OwnerTypeIndividual
	if rng.Next() > 0.5 {
		ownerType = models.OwnerTypeTrust
	}
	return individualNames[rng.Intn(len(individualNames))], ownerType
}

func generateEmail(name string, ownerType models.OwnerType, rng *random.Seeded) string {
	if ownerType == models.OwnerTypeLLC {
		domain := whitespace.ReplaceAllString(strings.ToLower(name), "")
		domain = companySuffixes.ReplaceAllString(domain, "")
		if len(domain) > emailDomainLength {
			domain = domain[:emailDomainLength]
		}
		return "contact@" + domain + ".com"
	}
	first := strings.Split(strings.ToLower(name), " ")[0]
	return fmt.Sprintf("%s%d@gmail.com", first, rng.Intn(99))
}

func generateAcquisition(price float64, currentYear int, rng *random.Seeded) (string, float64) {
	yearsAgo := rng.Intn(8) + 2
	acquisitionPrice := math.Floor(price * (0.55 + rng.Next()*0.3))
	month := rng.Intn(12) + 1
	day := rng.Intn(28) + 1
	return fmt.Sprintf("%04d-%02d-%02d", currentYear-yearsAgo, month, day), acquisitionPrice
}
