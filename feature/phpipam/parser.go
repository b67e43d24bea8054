package phpipam

import (
	"errors"
	"io"

	"ipam-importer/core/reconcile"
)

// RowSource yields raw export rows, one ordered slice of cells per call.
// Next returns io.EOF when the input is exhausted. Cells may be empty; the
// empty string is the null marker.
type RowSource interface {
	Next() ([]string, error)
	Close() error
}

// Parser folds a raw row stream into reconciliation intents. It carries the
// current subnet context between rows, so every address row is tagged with
// the most recently seen subnet header. The stream is single-pass: a Parser
// cannot be rewound or reused once drained.
type Parser struct {
	src RowSource

	// current is the CIDR of the last subnet header, empty before the
	// first one. Addresses seen while it is empty are imported without
	// subnet linkage.
	current string
}

// NewParser creates a Parser reading rows from src.
func NewParser(src RowSource) *Parser {
	return &Parser{src: src}
}

// Next returns the next intent in row order, skipping title rows and noise.
// It returns io.EOF once the underlying source is exhausted; any other
// source error is passed through unchanged.
func (p *Parser) Next() (reconcile.Intent, error) {
	for {
		row, err := p.src.Next()
		if err != nil {
			return reconcile.Intent{}, err
		}

		switch classified := Classify(row); classified.Kind {
		case KindSubnetHeader:
			p.current = classified.Subnet.CIDR.String()
			return reconcile.Intent{
				Kind: reconcile.IntentCreateSubnet,
				Subnet: reconcile.SubnetIntent{
					CIDR:        classified.Subnet.CIDR,
					Description: classified.Subnet.Description,
				},
			}, nil
		case KindAddress:
			record := classified.Address
			return reconcile.Intent{
				Kind: reconcile.IntentCreateAddress,
				Address: reconcile.AddressIntent{
					Address:     record.Address,
					Subnet:      p.current,
					State:       record.State,
					Description: record.Description,
					Hostname:    record.Hostname,
					MAC:         record.MAC,
					Owner:       record.Owner,
					Device:      record.Device,
					Port:        record.Port,
					Note:        record.Note,
				},
			}, nil
		}
	}
}

// Close releases the underlying row source.
func (p *Parser) Close() error {
	return p.src.Close()
}

// Collect drains the parser, returning every remaining intent in row order.
func Collect(p *Parser) ([]reconcile.Intent, error) {
	var intents []reconcile.Intent
	for {
		intent, err := p.Next()
		if errors.Is(err, io.EOF) {
			return intents, nil
		}
		if err != nil {
			return nil, err
		}
		intents = append(intents, intent)
	}
}
