package types

// ADRAlternative is a rejected option recorded alongside a decision.
type ADRAlternative struct {
	Name string   `json:"name"`
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// ADR is one Architecture Decision Record. IDs are assigned in generation
// order starting at 1 with no gaps.
type ADR struct {
	ID           int              `json:"id"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	Context      string           `json:"context"`
	Decision     string           `json:"decision"`
	Consequences []string         `json:"consequences"`
	Alternatives []ADRAlternative `json:"alternatives"`
	DateCreated  string           `json:"dateCreated"`
}

// ADRStatusAccepted is the only status the local generator emits.
const ADRStatusAccepted = "accepted"
