// Package snapshot decodes a subscription/usage snapshot from JSON.
// The snapshot is the engine's complete input: the engine itself
// performs no I/O, so reading and normalizing the records happens
// here at the edge.
package snapshot

import (
	"encoding/json"
	"io"
	"os"

	"subwise/core/types"
	"subwise/internal/errors"
)

// Snapshot is the decoded engine input
type Snapshot struct {
	// Subscriptions is the full subscription set
	Subscriptions []types.Subscription `json:"subscriptions"`

	// Usage holds the optional usage observations
	Usage []types.UsageObservation `json:"usage,omitempty"`
}

// Read decodes a snapshot from a reader and normalizes every record:
// derived monthly prices are recomputed, blank statuses default to
// active and observations without a metric tag fall back to the
// subscription's category metric.
func Read(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "decoding snapshot", err)
	}

	categories := make(map[string]types.Category, len(snap.Subscriptions))
	for i := range snap.Subscriptions {
		sub := &snap.Subscriptions[i]
		if sub.ID == "" {
			return nil, errors.Input("subscription without id")
		}
		if sub.Status == "" {
			sub.Status = types.StatusActive
		}
		if !sub.Category.IsValid() {
			sub.Category = types.CategoryOther
		}
		if sub.Cycle == "" {
			sub.Cycle = types.CycleMonthly
		}
		sub.Normalize()
		categories[sub.ID] = sub.Category
	}

	for i := range snap.Usage {
		obs := &snap.Usage[i]
		if !obs.Metric.IsValid() {
			if cat, ok := categories[obs.SubscriptionID]; ok {
				obs.Metric = cat.Metric()
			}
		}
	}

	return &snap, nil
}

// ReadFile decodes a snapshot from a JSON file
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "opening snapshot file", err)
	}
	defer f.Close()
	return Read(f)
}
