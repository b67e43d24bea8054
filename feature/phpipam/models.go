package phpipam

import "net/netip"

// RowKind identifies what a single export row represents.
type RowKind int

const (
	// KindNoise marks rows that carry no importable data.
	KindNoise RowKind = iota
	// KindSubnetHeader marks rows that open a new subnet section.
	KindSubnetHeader
	// KindColumnTitle marks the decorative column-title row phpIPAM puts
	// above each address table.
	KindColumnTitle
	// KindAddress marks rows with a host address in the first cell.
	KindAddress
)

// String returns a short label for debug output.
func (k RowKind) String() string {
	switch k {
	case KindSubnetHeader:
		return "subnet_header"
	case KindColumnTitle:
		return "column_title"
	case KindAddress:
		return "address"
	default:
		return "noise"
	}
}

// SubnetHeader is a parsed subnet section header.
type SubnetHeader struct {
	// CIDR is the network the following address rows belong to.
	CIDR netip.Prefix

	// Description is the free text after the first " - " separator,
	// kept exactly as exported.
	Description string
}

// AddressRecord is a parsed per-address row. All fields except Address are
// optional free text read positionally from the export columns; the empty
// string means the column was absent or blank.
type AddressRecord struct {
	Address     netip.Addr
	State       string
	Description string
	Hostname    string
	MAC         string
	Owner       string
	Device      string
	Port        string
	Note        string
}

// Classified is the typed result of classifying one export row.
type Classified struct {
	// Kind selects which payload field is populated.
	Kind RowKind

	// Subnet is set when Kind is KindSubnetHeader.
	Subnet SubnetHeader

	// Address is set when Kind is KindAddress.
	Address AddressRecord
}
