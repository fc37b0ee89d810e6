package types

// RiskLevel grades a dependency risk finding.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// riskRank orders levels for highest-wins classification.
var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskMedium:   1,
	RiskHigh:     2,
	RiskCritical: 3,
}

// MoreSevere reports whether a outranks b.
func (a RiskLevel) MoreSevere(b RiskLevel) bool {
	return riskRank[a] > riskRank[b]
}

// DependencyRisk is one actionable finding about a recommended package.
// Low-risk entries with no factors are filtered out before output.
type DependencyRisk struct {
	PackageName  string    `json:"packageName"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	RiskFactors  []string  `json:"riskFactors"`
	Mitigation   string    `json:"mitigation"`
	Alternatives []string  `json:"alternatives,omitempty"`
	Category     string    `json:"category,omitempty"`
}
