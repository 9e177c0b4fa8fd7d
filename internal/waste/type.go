// Package waste holds the waste-category vocabulary shared by the client and
// the dev classifier server: categories and their base points, the
// classification wire shape, the two-branch classification result and the
// local simulator used when the classifier cannot be reached.
package waste

import "strings"

// Type is a waste category. Values outside the known set are carried as
// opaque strings.
type Type string

const (
	TypeOrganic   Type = "organic"
	TypePlastic   Type = "plastic"
	TypeEWaste    Type = "e-waste"
	TypeHazardous Type = "hazardous"
	TypeOther     Type = "other"
)

// Types lists the categories a user can choose from, in display order.
var Types = []Type{TypeOrganic, TypePlastic, TypeEWaste, TypeHazardous}

var basePoints = map[Type]int{
	TypeOrganic:   10,
	TypePlastic:   15,
	TypeEWaste:    25,
	TypeHazardous: 30,
	TypeOther:     5,
}

var labels = map[Type]string{
	TypeOrganic:   "Organic/Biodegradable",
	TypePlastic:   "Plastic/Non-Biodegradable",
	TypeEWaste:    "E-Waste",
	TypeHazardous: "Hazardous",
	TypeOther:     "Other",
}

// Known reports whether t is one of the selectable categories.
func (t Type) Known() bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// BasePoints is the reward for a correctly segregated item before it is
// scaled by classifier confidence. Unknown categories earn the "other" rate.
func (t Type) BasePoints() int {
	if p, ok := basePoints[t]; ok {
		return p
	}
	return basePoints[TypeOther]
}

func (t Type) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// ParseType accepts a category name case-insensitively, plus the short
// aliases "ewaste" and "e". The boolean is false for anything else.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "organic", "o":
		return TypeOrganic, true
	case "plastic", "p":
		return TypePlastic, true
	case "e-waste", "ewaste", "e":
		return TypeEWaste, true
	case "hazardous", "h":
		return TypeHazardous, true
	}
	return "", false
}

// Guidance is the disposal advice shown with a classification.
type Guidance struct {
	Description string
	Tips        string
	Disposal    string
}

var guidance = map[Type]Guidance{
	TypeOrganic: {
		Description: "Biodegradable waste that can be composted",
		Tips:        "Can be used for composting or organic fertilizer",
		Disposal:    "Compost bin or organic waste collection",
	},
	TypePlastic: {
		Description: "Non-biodegradable plastic materials",
		Tips:        "Clean before recycling, check local recycling guidelines",
		Disposal:    "Recycling bin or plastic waste collection",
	},
	TypeEWaste: {
		Description: "Electronic waste containing hazardous materials",
		Tips:        "Never dispose in regular trash, contains valuable metals",
		Disposal:    "E-waste collection centers or electronics stores",
	},
	TypeHazardous: {
		Description: "Dangerous waste requiring special handling",
		Tips:        "Never mix with regular waste, follow safety guidelines",
		Disposal:    "Hazardous waste collection facilities",
	},
}

func (t Type) Guidance() Guidance {
	if g, ok := guidance[t]; ok {
		return g
	}
	return Guidance{
		Description: "Unknown waste type",
		Tips:        "Contact local waste management",
		Disposal:    "Check local guidelines",
	}
}
