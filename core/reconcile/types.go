package reconcile

import "net/netip"

// IntentKind identifies the kind of a reconciliation intent.
type IntentKind string

const (
	// IntentCreateSubnet requests creation of a subnet record.
	IntentCreateSubnet IntentKind = "create_subnet"
	// IntentCreateAddress requests creation of an address record.
	IntentCreateAddress IntentKind = "create_address"
)

// SubnetIntent carries the fields needed to create a subnet record.
type SubnetIntent struct {
	// CIDR is the validated network address plus prefix length.
	CIDR netip.Prefix

	// Description is free text from the export header. May be empty.
	Description string
}

// AddressIntent carries the fields needed to create an address record.
// All fields except Address are optional free text read positionally
// from the export.
type AddressIntent struct {
	// Address is the validated host IP, v4 or v6.
	Address netip.Addr

	// Subnet is the CIDR of the most recently seen subnet header, or empty
	// when the address appeared before any header. Informational only; it
	// is never enforced against the address value.
	Subnet string

	// State is the allocation state label from the export (e.g. "Used").
	State string

	// Description is free text describing the address.
	Description string

	// Hostname is the DNS name recorded for the address.
	Hostname string

	// MAC is the hardware address column.
	MAC string

	// Owner is the responsible party column.
	Owner string

	// Device is the device name column.
	Device string

	// Port is the switch port column.
	Port string

	// Note is the free-form note column.
	Note string
}

// Intent is a parsed, not-yet-applied instruction to create an inventory
// record. Exactly one payload field is meaningful, selected by Kind.
type Intent struct {
	// Kind selects which payload field is populated.
	Kind IntentKind

	// Subnet is populated when Kind is IntentCreateSubnet.
	Subnet SubnetIntent

	// Address is populated when Kind is IntentCreateAddress.
	Address AddressIntent
}

// IntentSource yields intents one at a time in row order.
// Next returns io.EOF after the final intent.
type IntentSource interface {
	Next() (Intent, error)
}

// Options controls reconcile behavior for a run.
type Options struct {
	// DryRun suppresses all inventory calls and only tallies the actions a
	// real run would take.
	DryRun bool

	// Verbose enables per-intent progress logging. It has no effect on the
	// reconciliation outcome.
	Verbose bool
}

// Summary provides aggregate counts for a completed run.
type Summary struct {
	// SubnetsCreated counts subnet records created (or, in dry-run mode,
	// that would be created).
	SubnetsCreated int `json:"subnets_created"`

	// SubnetsSkipped counts subnets that already existed in the inventory.
	SubnetsSkipped int `json:"subnets_skipped"`

	// AddressesCreated counts address records created (or, in dry-run mode,
	// that would be created).
	AddressesCreated int `json:"addresses_created"`

	// AddressesSkipped counts addresses that already existed in the inventory.
	AddressesSkipped int `json:"addresses_skipped"`

	// Errors counts intents that failed during lookup or create. Failed
	// intents are never retried.
	Errors int `json:"errors"`
}
