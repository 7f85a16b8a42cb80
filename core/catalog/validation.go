// Package catalog - catalog validation
// Ensures loaded catalogs are structurally sound before the engine
// ever sees them.
package catalog

import (
	"fmt"
)

// Validate checks catalog integrity and returns every violation found
func (c *Catalog) Validate() []error {
	var errs []error

	for _, b := range c.Bundles {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("bundle with empty name"))
			continue
		}
		if len(b.IncludedServices) == 0 {
			errs = append(errs, fmt.Errorf("bundle %q: no included services", b.Name))
		}
		if b.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("bundle %q: negative price", b.Name))
		}
	}

	for _, d := range c.Discounts {
		if d.Title == "" {
			errs = append(errs, fmt.Errorf("discount with empty title"))
			continue
		}
		if len(d.TargetServices) == 0 {
			errs = append(errs, fmt.Errorf("discount %q: no target services", d.Title))
		}
		if d.Amount.IsNegative() || d.Percent.IsNegative() {
			errs = append(errs, fmt.Errorf("discount %q: negative discount", d.Title))
		}
		if d.Amount.IsPositive() && d.Percent.IsPositive() {
			errs = append(errs, fmt.Errorf("discount %q: amount and percent are mutually exclusive", d.Title))
		}
	}

	for name, p := range c.Presets {
		if fp := p.FamilyPlan; fp != nil {
			if fp.MaxMembers < 2 {
				errs = append(errs, fmt.Errorf("preset %q: family plan needs at least 2 members", name))
			}
			if fp.Price.IsNegative() {
				errs = append(errs, fmt.Errorf("preset %q: negative family plan price", name))
			}
		}
		for _, plan := range p.Plans {
			if plan.Price.IsNegative() {
				errs = append(errs, fmt.Errorf("preset %q: plan %q has negative price", name, plan.Name))
			}
		}
	}

	return errs
}
