// Package catalog - read-only reference catalogs the engine consumes.
// Bundle deals, discount events and service presets are configuration
// data supplied by the operator, never computed by the engine.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// BundleDeal is a third-party offer replacing several individual
// subscriptions with one combined price
type BundleDeal struct {
	// Name of the bundle product
	Name string `json:"name"`

	// Provider selling the bundle
	Provider string `json:"provider"`

	// IncludedServices lists the service names the bundle replaces
	IncludedServices []string `json:"included_services"`

	// Price is the bundle's monthly price
	Price decimal.Decimal `json:"price"`

	// Conditional marks provider-gated perks (e.g. telecom add-ons)
	// that are surfaced as information, never counted as savings
	Conditional bool `json:"conditional,omitempty"`
}

// DiscountKind classifies where a discount event comes from
type DiscountKind string

const (
	DiscountCard      DiscountKind = "card"
	DiscountTelecom   DiscountKind = "telecom"
	DiscountPromotion DiscountKind = "promotion"
)

// Label returns the presentation label for the kind
func (k DiscountKind) Label() string {
	switch k {
	case DiscountCard:
		return "card discount"
	case DiscountTelecom:
		return "carrier perk"
	case DiscountPromotion:
		return "promotion"
	default:
		return "discount"
	}
}

// DiscountEvent is an active promotion matching one or more services
type DiscountEvent struct {
	// Title of the event
	Title string `json:"title"`

	// Kind classifies the event source
	Kind DiscountKind `json:"kind"`

	// Provider running the event
	Provider string `json:"provider"`

	// TargetServices lists service names the event applies to
	TargetServices []string `json:"target_services"`

	// Amount is a fixed monthly discount. Zero when Percent is set.
	Amount decimal.Decimal `json:"amount"`

	// Percent is a percentage discount off the monthly price.
	// Zero when Amount is set.
	Percent decimal.Decimal `json:"percent"`

	// Description explains the event conditions
	Description string `json:"description,omitempty"`
}

// Plan is one tier of a service's pricing ladder
type Plan struct {
	// Name of the plan tier
	Name string `json:"name"`

	// Price per billing cycle
	Price decimal.Decimal `json:"price"`

	// Cycle is the plan's billing cycle
	Cycle types.BillingCycle `json:"cycle"`
}

// Monthly returns the plan's monthly-equivalent price
func (p Plan) Monthly() decimal.Decimal {
	if p.Cycle == types.CycleYearly {
		return p.Price.Div(decimal.NewFromInt(12)).Round(2)
	}
	return p.Price
}

// FamilyPlan describes a service's shareable plan
type FamilyPlan struct {
	// Name of the family plan
	Name string `json:"name"`

	// Price is the family plan's monthly price
	Price decimal.Decimal `json:"price"`

	// MaxMembers is how many people the plan covers
	MaxMembers int `json:"max_members"`
}

// PerPersonPrice is the family plan price split across members,
// rounded up to the next whole unit
func (f FamilyPlan) PerPersonPrice() decimal.Decimal {
	if f.MaxMembers <= 0 {
		return f.Price
	}
	return f.Price.Div(decimal.NewFromInt(int64(f.MaxMembers))).Ceil()
}

// ServicePreset is the known pricing structure of a service
type ServicePreset struct {
	// Service is the service name the preset belongs to
	Service string `json:"service"`

	// FamilyPlan is set when the service offers a shareable plan
	FamilyPlan *FamilyPlan `json:"family_plan,omitempty"`

	// Plans is the service's pricing ladder
	Plans []Plan `json:"plans,omitempty"`
}

// Catalog bundles the three reference catalogs the engine reads
type Catalog struct {
	// Bundles lists known bundle deals, in catalog order
	Bundles []BundleDeal `json:"bundles"`

	// Discounts lists active discount events, in catalog order
	Discounts []DiscountEvent `json:"discounts"`

	// Presets maps service name to its pricing preset
	Presets map[string]ServicePreset `json:"presets"`
}

// New returns an empty catalog
func New() *Catalog {
	return &Catalog{Presets: make(map[string]ServicePreset)}
}

// Preset looks up the preset for a service by exact name
func (c *Catalog) Preset(service string) (ServicePreset, bool) {
	p, ok := c.Presets[service]
	return p, ok
}

// SharingAvailable reports whether a family plan exists for the
// subscription and it is not already shared
func (c *Catalog) SharingAvailable(sub types.Subscription) bool {
	if sub.IsShared {
		return false
	}
	p, ok := c.Presets[sub.Name]
	return ok && p.FamilyPlan != nil
}

// Merge folds another catalog into this one. Later presets win on
// name collision; bundles and discounts are appended.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	c.Bundles = append(c.Bundles, other.Bundles...)
	c.Discounts = append(c.Discounts, other.Discounts...)
	for name, p := range other.Presets {
		c.Presets[name] = p
	}
}

// NormalizeServiceName lowercases a service name and strips
// whitespace, for fuzzy bundle matching. The substring heuristic on
// top of this is deliberately loose; tightening it would silently
// stop surfacing valid bundle savings.
func NormalizeServiceName(name string) string {
	name = strings.ToLower(name)
	return strings.Join(strings.Fields(name), "")
}

// FuzzyMatch reports whether a subscription name matches a catalog
// service name: substring in either direction, or normalized-equal
func FuzzyMatch(subscriptionName, serviceName string) bool {
	if strings.Contains(subscriptionName, serviceName) ||
		strings.Contains(serviceName, subscriptionName) {
		return true
	}
	return NormalizeServiceName(subscriptionName) == NormalizeServiceName(serviceName)
}
