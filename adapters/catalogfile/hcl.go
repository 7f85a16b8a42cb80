// Package catalogfile loads the reference catalogs (bundle deals,
// discount events, service presets) from HCL files.
package catalogfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"subwise/core/catalog"
	"subwise/core/types"
	"subwise/internal/errors"
	"subwise/internal/logging"
)

// HCL block shapes. Prices arrive as float64 from cty and are
// converted to decimal immediately.
type catalogFile struct {
	Bundles   []bundleBlock   `hcl:"bundle,block"`
	Discounts []discountBlock `hcl:"discount,block"`
	Presets   []presetBlock   `hcl:"preset,block"`
}

type bundleBlock struct {
	Name        string   `hcl:"name,label"`
	Provider    string   `hcl:"provider"`
	Price       float64  `hcl:"price"`
	Services    []string `hcl:"services"`
	Conditional *bool    `hcl:"conditional"`
}

type discountBlock struct {
	Title       string   `hcl:"title,label"`
	Kind        string   `hcl:"kind"`
	Provider    string   `hcl:"provider"`
	Services    []string `hcl:"services"`
	Amount      *float64 `hcl:"amount"`
	Percent     *float64 `hcl:"percent"`
	Description *string  `hcl:"description"`
}

type presetBlock struct {
	Service    string       `hcl:"service,label"`
	FamilyPlan *familyBlock `hcl:"family_plan,block"`
	Plans      []planBlock  `hcl:"plan,block"`
}

type familyBlock struct {
	Name       string  `hcl:"name"`
	Price      float64 `hcl:"price"`
	MaxMembers int     `hcl:"max_members"`
}

type planBlock struct {
	Name  string  `hcl:"name,label"`
	Price float64 `hcl:"price"`
	Cycle *string `hcl:"cycle"`
}

// Load parses a single HCL catalog file
func Load(path string) (*catalog.Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Catalog("parsing catalog file "+path, diags)
	}

	var raw catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Catalog("decoding catalog file "+path, diags)
	}

	return convert(raw), nil
}

// LoadDir loads and merges every *.hcl file in a directory, in
// lexical order so results are reproducible
func LoadDir(dir string) (*catalog.Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Catalog("reading catalog directory "+dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".hcl") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	merged := catalog.New()
	for _, name := range names {
		cat, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		merged.Merge(cat)
	}

	if errs := merged.Validate(); len(errs) > 0 {
		for _, e := range errs {
			logging.Warn("catalog validation", zap.Error(e))
		}
		return nil, errors.Newf(errors.TypeCatalog, "catalog has %d validation error(s)", len(errs))
	}

	logging.Debug("catalog loaded",
		zap.Int("bundles", len(merged.Bundles)),
		zap.Int("discounts", len(merged.Discounts)),
		zap.Int("presets", len(merged.Presets)))
	return merged, nil
}

func convert(raw catalogFile) *catalog.Catalog {
	cat := catalog.New()

	for _, b := range raw.Bundles {
		deal := catalog.BundleDeal{
			Name:             b.Name,
			Provider:         b.Provider,
			IncludedServices: b.Services,
			Price:            decimal.NewFromFloat(b.Price),
		}
		if b.Conditional != nil {
			deal.Conditional = *b.Conditional
		}
		cat.Bundles = append(cat.Bundles, deal)
	}

	for _, d := range raw.Discounts {
		event := catalog.DiscountEvent{
			Title:          d.Title,
			Kind:           catalog.DiscountKind(d.Kind),
			Provider:       d.Provider,
			TargetServices: d.Services,
		}
		if d.Amount != nil {
			event.Amount = decimal.NewFromFloat(*d.Amount)
		}
		if d.Percent != nil {
			event.Percent = decimal.NewFromFloat(*d.Percent)
		}
		if d.Description != nil {
			event.Description = *d.Description
		}
		cat.Discounts = append(cat.Discounts, event)
	}

	for _, p := range raw.Presets {
		preset := catalog.ServicePreset{Service: p.Service}
		if p.FamilyPlan != nil {
			preset.FamilyPlan = &catalog.FamilyPlan{
				Name:       p.FamilyPlan.Name,
				Price:      decimal.NewFromFloat(p.FamilyPlan.Price),
				MaxMembers: p.FamilyPlan.MaxMembers,
			}
		}
		for _, plan := range p.Plans {
			cycle := types.CycleMonthly
			if plan.Cycle != nil && types.BillingCycle(*plan.Cycle) == types.CycleYearly {
				cycle = types.CycleYearly
			}
			preset.Plans = append(preset.Plans, catalog.Plan{
				Name:  plan.Name,
				Price: decimal.NewFromFloat(plan.Price),
				Cycle: cycle,
			})
		}
		cat.Presets[p.Service] = preset
	}

	return cat
}
