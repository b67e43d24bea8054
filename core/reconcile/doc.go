// Package reconcile maps parsed import intents onto an IP address
// inventory using lookup-before-write semantics.
//
// The engine consumes an ordered stream of intents (create subnet, create
// address) and, for each one, queries the inventory before writing: records
// that already exist are skipped, missing ones are created, and per-intent
// failures are counted without aborting the run. Because every create is
// guarded by a lookup, a run is idempotent and can be repeated safely
// against the same inventory.
//
// # Architecture
//
// The package consists of three parts:
//
//  1. Intents: the tagged values a parser emits, one per meaningful input
//     row, independent of whether the target record already exists.
//
//  2. Reconciler: the sequential engine that applies intents through a
//     netbox.Client, tallying created/skipped/error counts into a Summary.
//     Dry-run mode tallies the creates a real run would perform without
//     contacting the inventory at all.
//
//  3. Plan: an offline grouping of a parsed intent stream (subnets with
//     their addresses) used for previewing an import before applying it.
//
// # Error Model
//
// Inventory failures on a single intent are recovered locally: they are
// counted in Summary.Errors and the run proceeds to the next intent. Only
// source failures (a broken input stream) abort a run early. There is no
// retry; a failed create is picked up naturally by the next run's lookups.
//
// # Usage Example
//
//	engine := reconcile.New(client, log, reconcile.Options{DryRun: true})
//	summary, err := engine.Run(ctx, parser)
//
//	// Offline preview without touching the inventory:
//	plan, err := reconcile.BuildPlan(parser)
package reconcile
