package types

// ToolRecommendation is one recommended server, package, tool or service.
type ToolRecommendation struct {
	Name     string `json:"name"`
	Purpose  string `json:"purpose"`
	Category string `json:"category,omitempty"`
}

// ToolRecommendations groups recommendations by kind.
type ToolRecommendations struct {
	MCPServers           []ToolRecommendation `json:"mcpServers"`
	NPMPackages          []ToolRecommendation `json:"npmPackages"`
	DevTools             []ToolRecommendation `json:"devTools"`
	Services             []ToolRecommendation `json:"services"`
	TotalRecommendations int                  `json:"totalRecommendations"`
}

// AllPackages returns every recommended package and dev tool name, the
// input surface scanned by the dependency risk analyzer.
func (t *ToolRecommendations) AllPackages() []ToolRecommendation {
	out := make([]ToolRecommendation, 0, len(t.NPMPackages)+len(t.DevTools))
	out = append(out, t.NPMPackages...)
	out = append(out, t.DevTools...)
	return out
}
