// Package netbox provides the client for the target NetBox inventory.
//
// It wraps the NetBox REST API behind a small capability interface covering
// exactly what the importer needs: a status probe, and find/create pairs for
// prefixes and IP addresses. The HTTP implementation uses token
// authentication and a transport with strict connection timeouts.
//
// # Idempotency Contract
//
// NetBox happily stores duplicate prefixes and addresses; the API does not
// dedup on write. The importer therefore owns the lookup-before-write
// contract: every create is preceded by a Find on the canonical key (the
// prefix CIDR, or the host address with its full-length /32 or /128 mask).
// Find methods return (nil, nil) on a miss so absence never looks like a
// failure.
//
// # Client Interface
//
// The Client interface abstracts the HTTP implementation, making it easy to
// mock inventory interactions for unit testing (see core/netbox/mocks).
//
// # Usage
//
//	client, err := netbox.NewClient(cfg)
//	info, err := client.Status(ctx)
//	existing, err := client.FindPrefix(ctx, "10.1.8.0/24")
package netbox
