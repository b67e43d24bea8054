package phpipam

import (
	"net/netip"
	"strings"
)

// Positions of the descriptive columns following the address column.
const (
	colState = iota + 1
	colDescription
	colHostname
	colMAC
	colOwner
	colDevice
	colPort
	colNote
)

// columnTitle is the first cell of the title row above each address table.
const columnTitle = "ip address"

// headerSeparator splits a subnet header into CIDR and description.
const headerSeparator = " - "

// Classify decides what a single export row represents. It never fails:
// rows that match no known shape are classified as noise and dropped by
// the parser without affecting the rest of the run.
func Classify(row []string) Classified {
	if len(row) == 0 {
		return Classified{Kind: KindNoise}
	}

	if subnet, ok := parseSubnetHeader(row[0]); ok {
		return Classified{Kind: KindSubnetHeader, Subnet: subnet}
	}

	if strings.EqualFold(strings.TrimSpace(row[0]), columnTitle) {
		return Classified{Kind: KindColumnTitle}
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(row[0])); err == nil {
		return Classified{Kind: KindAddress, Address: AddressRecord{
			Address:     addr,
			State:       cell(row, colState),
			Description: cell(row, colDescription),
			Hostname:    cell(row, colHostname),
			MAC:         cell(row, colMAC),
			Owner:       cell(row, colOwner),
			Device:      cell(row, colDevice),
			Port:        cell(row, colPort),
			Note:        cell(row, colNote),
		}}
	}

	return Classified{Kind: KindNoise}
}

// parseSubnetHeader recognizes headers of the form
// "10.1.8.0/24 - CTRL-W27-04-LANtime (vlan: 108)". The text before the
// first separator must be a network in canonical form (no host bits set);
// everything after it, rejoined on the separator, is the description.
// Cells without both a "/" and a separator are not headers.
func parseSubnetHeader(value string) (SubnetHeader, bool) {
	if !strings.Contains(value, "/") {
		return SubnetHeader{}, false
	}

	parts := strings.Split(value, headerSeparator)
	if len(parts) < 2 {
		return SubnetHeader{}, false
	}

	prefix, err := netip.ParsePrefix(strings.TrimSpace(parts[0]))
	if err != nil || prefix != prefix.Masked() {
		return SubnetHeader{}, false
	}

	return SubnetHeader{
		CIDR:        prefix,
		Description: strings.Join(parts[1:], headerSeparator),
	}, true
}

// cell returns the value at index i, or the empty string when the row is
// too short. The empty string doubles as the stream's null marker.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
