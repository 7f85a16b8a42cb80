// Package analyzers provides the savings strategy analyzers.
// Each analyzer is an independent pure function over the same
// immutable input snapshot; strategies can be added without modifying
// core. Only the later dedup stage is order-sensitive.
package analyzers

import (
	"fmt"
	"sync"

	"subwise/core/catalog"
	"subwise/core/types"
)

// Input is the immutable snapshot every analyzer reads.
// Subscriptions contains billable subscriptions only.
type Input struct {
	// Subscriptions is the billable subscription set
	Subscriptions []types.Subscription

	// Analyses holds the ROI results; empty when no usage data exists
	Analyses []types.ROIAnalysis

	// Catalog supplies the read-only reference catalogs
	Catalog *catalog.Catalog
}

// subscriptionByID finds a subscription in the snapshot
func (in Input) subscriptionByID(id string) (types.Subscription, bool) {
	for _, s := range in.Subscriptions {
		if s.ID == id {
			return s, true
		}
	}
	return types.Subscription{}, false
}

// Analyzer is one savings strategy. Analyze must not mutate the
// input and must be deterministic for identical inputs.
type Analyzer interface {
	// Name identifies the strategy
	Name() string

	// Analyze emits candidate savings items for the snapshot
	Analyze(in Input) []types.SavingsItem
}

// Registry manages strategy registration. Registration order is
// preserved so runs are reproducible, although individual analyzer
// outputs never depend on each other.
type Registry struct {
	mu        sync.RWMutex
	analyzers []Analyzer
	names     map[string]struct{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds an analyzer to the registry
func (r *Registry) Register(a Analyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[a.Name()]; exists {
		return fmt.Errorf("analyzer already registered: %s", a.Name())
	}
	r.names[a.Name()] = struct{}{}
	r.analyzers = append(r.analyzers, a)
	return nil
}

// All returns the registered analyzers in registration order
func (r *Registry) All() []Analyzer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Analyzer, len(r.analyzers))
	copy(out, r.analyzers)
	return out
}

// Run executes every registered analyzer against the snapshot and
// concatenates their candidate items
func (r *Registry) Run(in Input) []types.SavingsItem {
	var items []types.SavingsItem
	for _, a := range r.All() {
		items = append(items, a.Analyze(in)...)
	}
	return items
}

// DefaultRegistry returns a registry with the five standard
// strategies registered
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, a := range []Analyzer{
		BundleAnalyzer{},
		DiscountAnalyzer{},
		SharingAnalyzer{},
		CancellationAnalyzer{},
		DowngradeAnalyzer{},
	} {
		// names are distinct constants, registration cannot fail
		_ = r.Register(a)
	}
	return r
}
