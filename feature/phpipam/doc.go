// Package phpipam parses phpIPAM spreadsheet exports into reconciliation
// intents.
//
// A phpIPAM export is a flat row stream with no explicit structure: subnet
// header rows ("10.1.8.0/24 - description") interleave with column-title
// rows, per-address data rows and decorative noise. This package recovers
// the subnet-to-address hierarchy from that stream:
//  1. Classify inspects one row and decides what it is, extracting typed
//     fields. Classification never fails; unrecognized rows are noise.
//  2. Parser walks the stream keeping the current subnet context and emits
//     one intent per meaningful row, in row order.
//
// # Row Sources
//
// Rows come from a RowSource. Two decoders are provided: CSVSource
// (encoding/csv with BOM skipping and relaxed quoting) and ExcelSource
// (streaming .xlsx via excelize). OpenFile and OpenObject choose by file
// extension, the latter for exports fetched from a bucket.
//
// # Usage
//
//	src, err := phpipam.OpenFile("export.xlsx", "")
//	parser := phpipam.NewParser(src)
//	summary, err := engine.Run(ctx, parser)
package phpipam
