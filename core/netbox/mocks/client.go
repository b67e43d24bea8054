package mocks

import (
	"context"

	"ipam-importer/core/netbox"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of netbox.Client
type Client struct {
	mock.Mock
}

func (m *Client) Status(ctx context.Context) (*netbox.StatusInfo, error) {
	args := m.Called(ctx)
	if info, ok := args.Get(0).(*netbox.StatusInfo); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FindPrefix(ctx context.Context, cidr string) (*netbox.Prefix, error) {
	args := m.Called(ctx, cidr)
	if p, ok := args.Get(0).(*netbox.Prefix); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreatePrefix(ctx context.Context, in netbox.PrefixCreate) (*netbox.Prefix, error) {
	args := m.Called(ctx, in)
	if p, ok := args.Get(0).(*netbox.Prefix); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FindAddress(ctx context.Context, address string) (*netbox.IPAddress, error) {
	args := m.Called(ctx, address)
	if ip, ok := args.Get(0).(*netbox.IPAddress); ok {
		return ip, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateAddress(ctx context.Context, in netbox.AddressCreate) (*netbox.IPAddress, error) {
	args := m.Called(ctx, in)
	if ip, ok := args.Get(0).(*netbox.IPAddress); ok {
		return ip, args.Error(1)
	}
	return nil, args.Error(1)
}
