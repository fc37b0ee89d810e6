// Package cost estimates monthly infrastructure and development costs
// from the research result, the agent team and the operator-supplied
// enrichment. All line items come from tier-indexed price tables so the
// estimate is deterministic for a given input.
package cost

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/PlanWing/types"
)

// Deployment tiers. The tier scales every infrastructure line item; it
// comes from enrichment.scalabilityTier and defaults to small.
const (
	TierSmall      = "small"
	TierMedium     = "medium"
	TierLarge      = "large"
	TierEnterprise = "enterprise"
)

// Developer rate band used for the one-time development cost.
const (
	HourlyRateMin = 50.0
	HourlyRateMax = 150.0
)

// tierPrices holds the monthly price per tier, small through enterprise.
type tierPrices struct {
	Small      float64
	Medium     float64
	Large      float64
	Enterprise float64
}

func (p tierPrices) at(tier string) float64 {
	switch tier {
	case TierMedium:
		return p.Medium
	case TierLarge:
		return p.Large
	case TierEnterprise:
		return p.Enterprise
	default:
		return p.Small
	}
}

var (
	frontendHostingPrices = tierPrices{Small: 0, Medium: 20, Large: 150, Enterprise: 500}
	backendHostingPrices  = tierPrices{Small: 5, Medium: 25, Large: 200, Enterprise: 1000}
	databasePrices        = tierPrices{Small: 0, Medium: 25, Large: 100, Enterprise: 600}
	cachePrices           = tierPrices{Small: 0, Medium: 10, Large: 50, Enterprise: 200}
	storagePrices         = tierPrices{Small: 5, Medium: 15, Large: 100, Enterprise: 400}
	emailPrices           = tierPrices{Small: 0, Medium: 15, Large: 80, Enterprise: 250}
	analyticsPrices       = tierPrices{Small: 0, Medium: 0, Large: 50, Enterprise: 150}
	errorTrackingPrices   = tierPrices{Small: 0, Medium: 26, Large: 80, Enterprise: 300}
	bandwidthPrice        = 500.0
)

// Estimate builds the full cost estimate. Line items are gated on
// detected features and the deployment tier; totals always equal the
// sum of the items.
func Estimate(summary types.ProjectSummary, research *types.ResearchResult, team *types.AgentTeam, enrichment *types.InputEnrichment) *types.CostEstimate {
	tier := resolveTier(enrichment)

	items := hostingItems(research, tier)
	items = append(items, databaseItem(research, tier))

	if hasFeatureKeyword(research, "real-time", "realtime", "websocket", "live") && tier != TierSmall {
		items = append(items, types.CostItem{
			Service:         "Managed cache (Redis)",
			Category:        types.CostDatabase,
			MonthlyEstimate: cachePrices.at(tier),
			Tier:            tier,
			Assumptions:     []string{"Pub/sub backbone for real-time features"},
			ScalingNotes:    "Scales with concurrent connection count",
		})
	}
	if hasFeatureKeyword(research, "upload", "file", "image", "media") {
		items = append(items, types.CostItem{
			Service:         "Object storage",
			Category:        types.CostStorage,
			MonthlyEstimate: storagePrices.at(tier),
			Tier:            tier,
			Assumptions:     []string{"User-uploaded files stored in S3-compatible storage"},
			ScalingNotes:    "Billed per GB stored and transferred",
		})
	}
	if tier == TierEnterprise {
		items = append(items, types.CostItem{
			Service:         "CDN and egress bandwidth",
			Category:        types.CostBandwidth,
			MonthlyEstimate: bandwidthPrice,
			Tier:            tier,
			Assumptions:     []string{"High-traffic egress beyond bundled allowances"},
			ScalingNotes:    "Grows linearly with monthly active users",
		})
	}

	items = append(items, thirdPartyItems(research, tier)...)

	for i := range items {
		if items[i].AnnualEstimate == 0 {
			items[i].AnnualEstimate = items[i].MonthlyEstimate * 12
		}
	}

	estimate := &types.CostEstimate{
		Items:      items,
		Confidence: confidence(enrichment),
	}
	for _, item := range items {
		estimate.TotalMonthly += item.MonthlyEstimate
	}
	estimate.TotalAnnual = estimate.TotalMonthly * 12

	if team != nil && team.EstimatedTotalHours > 0 {
		estimate.DevelopmentCost = &types.DevelopmentCost{
			TotalHours:    team.EstimatedTotalHours,
			HourlyRateMin: HourlyRateMin,
			HourlyRateMax: HourlyRateMax,
			TotalMin:      team.EstimatedTotalHours * HourlyRateMin,
			TotalMax:      team.EstimatedTotalHours * HourlyRateMax,
		}
	}
	return estimate
}

func hostingItems(research *types.ResearchResult, tier string) []types.CostItem {
	frontend := "Frontend hosting"
	if research.RecommendedTechStack.Frontend != nil {
		frontend = fmt.Sprintf("Frontend hosting (%s)", research.RecommendedTechStack.Frontend.Framework)
	}
	backend := "Backend hosting"
	if research.RecommendedTechStack.Backend != nil {
		backend = fmt.Sprintf("Backend hosting (%s)", research.RecommendedTechStack.Backend.Framework)
	}
	return []types.CostItem{
		{
			Service:         frontend,
			Category:        types.CostHosting,
			MonthlyEstimate: frontendHostingPrices.at(tier),
			Tier:            tier,
			Assumptions:     []string{"Static assets and SSR on a managed platform"},
			ScalingNotes:    "Free tier covers low traffic; costs rise with requests",
		},
		{
			Service:         backend,
			Category:        types.CostHosting,
			MonthlyEstimate: backendHostingPrices.at(tier),
			Tier:            tier,
			Assumptions:     []string{"Single service instance, vertical scaling first"},
			ScalingNotes:    "Horizontal scaling multiplies the instance price",
		},
	}
}

func databaseItem(research *types.ResearchResult, tier string) types.CostItem {
	name := "Managed database"
	if research.RecommendedTechStack.Database != nil {
		name = fmt.Sprintf("Managed database (%s)", research.RecommendedTechStack.Database.Framework)
	}
	return types.CostItem{
		Service:         name,
		Category:        types.CostDatabase,
		MonthlyEstimate: databasePrices.at(tier),
		Tier:            tier,
		Assumptions:     []string{"Managed instance with automated backups"},
		ScalingNotes:    "Connection pool and storage limits drive tier upgrades",
	}
}

func thirdPartyItems(research *types.ResearchResult, tier string) []types.CostItem {
	var items []types.CostItem
	if hasFeatureKeyword(research, "email", "notification") {
		items = append(items, types.CostItem{
			Service:         "Transactional email",
			Category:        types.CostThirdParty,
			MonthlyEstimate: emailPrices.at(tier),
			Tier:            tier,
			Assumptions:     []string{"Notification delivery via a transactional email API"},
			ScalingNotes:    "Priced per thousand emails sent",
		})
	}
	if hasFeatureKeyword(research, "payment", "checkout") {
		items = append(items, types.CostItem{
			Service:         "Payment processing",
			Category:        types.CostThirdParty,
			MonthlyEstimate: 0,
			Tier:            tier,
			Assumptions:     []string{"Usage-based pricing near 2.9% + $0.30 per transaction"},
			ScalingNotes:    "No fixed monthly fee; cost tracks transaction volume",
		})
	}
	items = append(items, types.CostItem{
		Service:         "Product analytics",
		Category:        types.CostThirdParty,
		MonthlyEstimate: analyticsPrices.at(tier),
		Tier:            tier,
		Assumptions:     []string{"Event-based analytics within the free tier at launch"},
		ScalingNotes:    "Paid plans start once event volume exceeds the free quota",
	})
	if research.EstimatedComplexity != types.ComplexityLow {
		items = append(items, types.CostItem{
			Service:         "Error tracking",
			Category:        types.CostThirdParty,
			MonthlyEstimate: errorTrackingPrices.at(tier),
			Tier:            tier,
			Assumptions:     []string{"Error and performance monitoring for the backend"},
			ScalingNotes:    "Priced per event volume",
		})
	}
	return items
}

func resolveTier(enrichment *types.InputEnrichment) string {
	if enrichment == nil {
		return TierSmall
	}
	switch strings.ToLower(strings.TrimSpace(enrichment.ScalabilityTier)) {
	case TierMedium:
		return TierMedium
	case TierLarge:
		return TierLarge
	case TierEnterprise:
		return TierEnterprise
	default:
		return TierSmall
	}
}

func confidence(enrichment *types.InputEnrichment) types.Confidence {
	if enrichment == nil || enrichment.IsZero() {
		return types.ConfidenceLow
	}
	if enrichment.ScalabilityTier != "" && enrichment.Budget != "" {
		return types.ConfidenceHigh
	}
	return types.ConfidenceMedium
}

func hasFeatureKeyword(research *types.ResearchResult, keywords ...string) bool {
	for _, f := range research.RequiredFeatures {
		lower := strings.ToLower(f.Name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
