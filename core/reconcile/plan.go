package reconcile

import (
	"errors"
	"io"
)

// PlanSubnet groups the addresses parsed under one subnet header.
type PlanSubnet struct {
	// Subnet is the header that opened this group.
	Subnet SubnetIntent `json:"subnet"`

	// Addresses lists the address rows seen before the next header,
	// in row order.
	Addresses []AddressIntent `json:"addresses"`
}

// Plan is an offline preview of a run: everything the parser produced,
// grouped by subnet, with aggregate counts. Building a plan makes no
// inventory calls.
type Plan struct {
	// Subnets lists subnet headers in row order with their addresses.
	Subnets []PlanSubnet `json:"subnets"`

	// Orphans lists addresses that appeared before any subnet header.
	// They are still imported; the grouping is informational only.
	Orphans []AddressIntent `json:"orphans"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Subnets is the number of subnet headers parsed.
	Subnets int `json:"subnets"`

	// Addresses is the total number of address rows parsed, orphans included.
	Addresses int `json:"addresses"`

	// Orphans counts addresses with no preceding subnet header.
	Orphans int `json:"orphans"`
}

// BuildPlan drains the source and groups its intents for reporting.
// The source is consumed; it cannot be reused for a subsequent run.
func BuildPlan(src IntentSource) (*Plan, error) {
	plan := &Plan{}

	for {
		intent, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch intent.Kind {
		case IntentCreateSubnet:
			plan.Subnets = append(plan.Subnets, PlanSubnet{Subnet: intent.Subnet})
			plan.Summary.Subnets++
		case IntentCreateAddress:
			if len(plan.Subnets) == 0 || intent.Address.Subnet == "" {
				plan.Orphans = append(plan.Orphans, intent.Address)
				plan.Summary.Orphans++
			} else {
				group := &plan.Subnets[len(plan.Subnets)-1]
				group.Addresses = append(group.Addresses, intent.Address)
			}
			plan.Summary.Addresses++
		}
	}

	return plan, nil
}
