package reconcile

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"strings"

	"ipam-importer/core/netbox"

	"go.uber.org/zap"
)

// maxDescriptionLen is the inventory's description column limit.
// Longer values are truncated before create calls.
const maxDescriptionLen = 200

// Reconciler maps parsed intents onto the inventory's existing state.
// Every create is preceded by a lookup, so a run can be repeated against
// the same inventory without duplicating records.
type Reconciler struct {
	client netbox.Client
	log    *zap.Logger
	opts   Options
}

// New creates a Reconciler that applies intents through the given client.
func New(client netbox.Client, log *zap.Logger, opts Options) *Reconciler {
	return &Reconciler{client: client, log: log, opts: opts}
}

// outcome classifies the result of applying a single intent.
type outcome int

const (
	outcomeCreated outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Run consumes intents until the source is exhausted and returns the
// aggregate summary. Inventory failures are counted and logged per intent;
// they never abort the run. A source error other than io.EOF does abort,
// returning the counts accumulated so far alongside the error.
func (r *Reconciler) Run(ctx context.Context, src IntentSource) (Summary, error) {
	var summary Summary

	for {
		intent, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, err
		}

		switch intent.Kind {
		case IntentCreateSubnet:
			switch r.applySubnet(ctx, intent.Subnet) {
			case outcomeCreated:
				summary.SubnetsCreated++
			case outcomeSkipped:
				summary.SubnetsSkipped++
			case outcomeFailed:
				summary.Errors++
			}
		case IntentCreateAddress:
			switch r.applyAddress(ctx, intent.Address) {
			case outcomeCreated:
				summary.AddressesCreated++
			case outcomeSkipped:
				summary.AddressesSkipped++
			case outcomeFailed:
				summary.Errors++
			}
		}
	}

	return summary, nil
}

func (r *Reconciler) applySubnet(ctx context.Context, intent SubnetIntent) outcome {
	cidr := intent.CIDR.String()

	if r.opts.DryRun {
		r.log.Info("would create subnet", zap.String("cidr", cidr))
		return outcomeCreated
	}

	existing, err := r.client.FindPrefix(ctx, cidr)
	if err != nil {
		r.log.Error("subnet lookup failed", zap.String("cidr", cidr), zap.Error(err))
		return outcomeFailed
	}
	if existing != nil {
		if r.opts.Verbose {
			r.log.Info("subnet already exists", zap.String("cidr", cidr))
		}
		return outcomeSkipped
	}

	if _, err := r.client.CreatePrefix(ctx, netbox.PrefixCreate{
		Prefix:      cidr,
		Description: truncate(intent.Description, maxDescriptionLen),
		Status:      netbox.StatusActive,
	}); err != nil {
		r.log.Error("subnet create failed", zap.String("cidr", cidr), zap.Error(err))
		return outcomeFailed
	}

	r.log.Info("created subnet", zap.String("cidr", cidr))
	return outcomeCreated
}

func (r *Reconciler) applyAddress(ctx context.Context, intent AddressIntent) outcome {
	key := MaskedAddress(intent.Address)

	if r.opts.DryRun {
		if r.opts.Verbose {
			r.log.Info("would create address", zap.String("address", key))
		}
		return outcomeCreated
	}

	existing, err := r.client.FindAddress(ctx, key)
	if err != nil {
		r.log.Error("address lookup failed", zap.String("address", key), zap.Error(err))
		return outcomeFailed
	}
	if existing != nil {
		if r.opts.Verbose {
			r.log.Info("address already exists", zap.String("address", key))
		}
		return outcomeSkipped
	}

	if _, err := r.client.CreateAddress(ctx, netbox.AddressCreate{
		Address:     key,
		DNSName:     intent.Hostname,
		Description: truncate(addressDescription(intent), maxDescriptionLen),
		Status:      netbox.StatusActive,
	}); err != nil {
		r.log.Error("address create failed", zap.String("address", key), zap.Error(err))
		return outcomeFailed
	}

	if r.opts.Verbose {
		r.log.Info("created address",
			zap.String("address", key),
			zap.String("subnet", intent.Subnet))
	}
	return outcomeCreated
}

// MaskedAddress returns the canonical lookup key for a host address: the
// address with an explicit full-length prefix, /32 for IPv4 and /128 for
// IPv6. The inventory stores addresses in this form, so it doubles as the
// duplicate-detection identity.
func MaskedAddress(addr netip.Addr) string {
	return netip.PrefixFrom(addr, addr.BitLen()).String()
}

// addressDescription merges the description and note columns into one field,
// prefixing the note so its origin survives the merge.
func addressDescription(intent AddressIntent) string {
	parts := make([]string, 0, 2)
	if intent.Description != "" {
		parts = append(parts, intent.Description)
	}
	if intent.Note != "" {
		parts = append(parts, "Note: "+intent.Note)
	}
	return strings.Join(parts, " | ")
}

// truncate shortens s to at most max characters, counting runes rather than
// bytes so multi-byte text is never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
