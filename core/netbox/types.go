package netbox

// StatusActive is the lifecycle status assigned to every record this tool
// creates. The importer never writes any other status.
const StatusActive = "active"

// StatusInfo is the subset of the NetBox status endpoint the importer cares
// about. It doubles as the connectivity probe response.
type StatusInfo struct {
	// NetBoxVersion is the running NetBox release, e.g. "4.1.3".
	NetBoxVersion string `json:"netbox-version"`
}

// Prefix is an existing prefix record in NetBox.
type Prefix struct {
	// ID is the NetBox primary key.
	ID int64 `json:"id"`
	// Prefix is the network in CIDR notation, e.g. "10.1.8.0/24".
	Prefix string `json:"prefix"`
	// Description is the free-text description stored on the record.
	Description string `json:"description"`
}

// IPAddress is an existing IP address record in NetBox.
type IPAddress struct {
	// ID is the NetBox primary key.
	ID int64 `json:"id"`
	// Address is the host address with its full-length mask, e.g. "10.1.8.5/32".
	Address string `json:"address"`
	// DNSName is the DNS name stored on the record.
	DNSName string `json:"dns_name"`
	// Description is the free-text description stored on the record.
	Description string `json:"description"`
}

// PrefixCreate is the payload for creating a prefix record.
type PrefixCreate struct {
	Prefix      string `json:"prefix"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// AddressCreate is the payload for creating an IP address record.
// Address carries the full-length mask (/32 or /128).
type AddressCreate struct {
	Address     string `json:"address"`
	DNSName     string `json:"dns_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// prefixList and addressList are the NetBox list envelopes for filtered
// queries. Only count and results matter here; pagination links are ignored
// because lookups filter on a unique key.
type prefixList struct {
	Count   int      `json:"count"`
	Results []Prefix `json:"results"`
}

type addressList struct {
	Count   int         `json:"count"`
	Results []IPAddress `json:"results"`
}
