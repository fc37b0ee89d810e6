package types

// CostCategory buckets a cost line item.
type CostCategory string

const (
	CostHosting    CostCategory = "hosting"
	CostDatabase   CostCategory = "database"
	CostStorage    CostCategory = "storage"
	CostBandwidth  CostCategory = "bandwidth"
	CostThirdParty CostCategory = "third-party"
	CostDeveloper  CostCategory = "developer"
	CostOther      CostCategory = "other"
)

// Confidence expresses how much enrichment data backed an estimate.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// CostItem is one line in the monthly/annual cost table.
type CostItem struct {
	Service         string       `json:"service"`
	Category        CostCategory `json:"category"`
	MonthlyEstimate float64      `json:"monthlyEstimate"`
	AnnualEstimate  float64      `json:"annualEstimate"`
	Tier            string       `json:"tier"`
	Assumptions     []string     `json:"assumptions"`
	ScalingNotes    string       `json:"scalingNotes,omitempty"`
}

// DevelopmentCost is the one-time build cost range derived from team hours.
type DevelopmentCost struct {
	TotalHours    float64 `json:"totalHours"`
	HourlyRateMin float64 `json:"hourlyRateMin"`
	HourlyRateMax float64 `json:"hourlyRateMax"`
	TotalMin      float64 `json:"totalMin"`
	TotalMax      float64 `json:"totalMax"`
}

// CostEstimate is the full projection for a plan.
type CostEstimate struct {
	Items           []CostItem       `json:"items"`
	TotalMonthly    float64          `json:"totalMonthly"`
	TotalAnnual     float64          `json:"totalAnnual"`
	Confidence      Confidence       `json:"confidence"`
	DevelopmentCost *DevelopmentCost `json:"developmentCost,omitempty"`
}
