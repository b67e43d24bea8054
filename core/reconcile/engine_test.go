package reconcile

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"strings"
	"testing"

	"ipam-importer/core/netbox"
	"ipam-importer/core/netbox/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// sliceSource yields a fixed set of intents in order, then io.EOF.
type sliceSource struct {
	intents []Intent
	pos     int
}

func (s *sliceSource) Next() (Intent, error) {
	if s.pos >= len(s.intents) {
		return Intent{}, io.EOF
	}
	intent := s.intents[s.pos]
	s.pos++
	return intent, nil
}

// failingSource yields its intents, then a non-EOF error.
type failingSource struct {
	sliceSource
	err error
}

func (s *failingSource) Next() (Intent, error) {
	intent, err := s.sliceSource.Next()
	if errors.Is(err, io.EOF) {
		return Intent{}, s.err
	}
	return intent, err
}

// fakeInventory is an in-memory netbox.Client that remembers what it created.
type fakeInventory struct {
	prefixes  map[string]*netbox.Prefix
	addresses map[string]*netbox.IPAddress
	nextID    int64
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		prefixes:  make(map[string]*netbox.Prefix),
		addresses: make(map[string]*netbox.IPAddress),
	}
}

func (f *fakeInventory) Status(ctx context.Context) (*netbox.StatusInfo, error) {
	return &netbox.StatusInfo{NetBoxVersion: "test"}, nil
}

func (f *fakeInventory) FindPrefix(ctx context.Context, cidr string) (*netbox.Prefix, error) {
	return f.prefixes[cidr], nil
}

func (f *fakeInventory) CreatePrefix(ctx context.Context, in netbox.PrefixCreate) (*netbox.Prefix, error) {
	f.nextID++
	p := &netbox.Prefix{ID: f.nextID, Prefix: in.Prefix, Description: in.Description}
	f.prefixes[in.Prefix] = p
	return p, nil
}

func (f *fakeInventory) FindAddress(ctx context.Context, address string) (*netbox.IPAddress, error) {
	return f.addresses[address], nil
}

func (f *fakeInventory) CreateAddress(ctx context.Context, in netbox.AddressCreate) (*netbox.IPAddress, error) {
	f.nextID++
	ip := &netbox.IPAddress{ID: f.nextID, Address: in.Address, DNSName: in.DNSName, Description: in.Description}
	f.addresses[in.Address] = ip
	return ip, nil
}

func subnetIntent(cidr, description string) Intent {
	return Intent{
		Kind: IntentCreateSubnet,
		Subnet: SubnetIntent{
			CIDR:        netip.MustParsePrefix(cidr),
			Description: description,
		},
	}
}

func addressIntent(addr string, fields AddressIntent) Intent {
	fields.Address = netip.MustParseAddr(addr)
	return Intent{Kind: IntentCreateAddress, Address: fields}
}

// TestRun_CreatesMissingRecords tests that unknown subnets and addresses are created.
func TestRun_CreatesMissingRecords(t *testing.T) {
	client := new(mocks.Client)
	client.On("FindPrefix", mock.Anything, "10.1.8.0/24").Return(nil, nil)
	client.On("CreatePrefix", mock.Anything, netbox.PrefixCreate{
		Prefix:      "10.1.8.0/24",
		Description: "CTRL-W27-04-LANtime (vlan: 108)",
		Status:      netbox.StatusActive,
	}).Return(&netbox.Prefix{ID: 1, Prefix: "10.1.8.0/24"}, nil)
	client.On("FindAddress", mock.Anything, "10.1.8.5/32").Return(nil, nil)
	client.On("CreateAddress", mock.Anything, netbox.AddressCreate{
		Address:     "10.1.8.5/32",
		DNSName:     "host-a",
		Description: "Server A",
		Status:      netbox.StatusActive,
	}).Return(&netbox.IPAddress{ID: 2, Address: "10.1.8.5/32"}, nil)

	engine := New(client, zap.NewNop(), Options{})
	summary, err := engine.Run(context.Background(), &sliceSource{intents: []Intent{
		subnetIntent("10.1.8.0/24", "CTRL-W27-04-LANtime (vlan: 108)"),
		addressIntent("10.1.8.5", AddressIntent{Subnet: "10.1.8.0/24", Description: "Server A", Hostname: "host-a"}),
	}})

	assert.NoError(t, err)
	assert.Equal(t, Summary{SubnetsCreated: 1, AddressesCreated: 1}, summary)
	client.AssertExpectations(t)
}

// TestRun_SkipsExistingRecords tests that found records are never recreated.
func TestRun_SkipsExistingRecords(t *testing.T) {
	client := new(mocks.Client)
	client.On("FindPrefix", mock.Anything, "10.1.8.0/24").
		Return(&netbox.Prefix{ID: 1, Prefix: "10.1.8.0/24"}, nil)
	client.On("FindAddress", mock.Anything, "10.1.8.5/32").
		Return(&netbox.IPAddress{ID: 2, Address: "10.1.8.5/32"}, nil)

	engine := New(client, zap.NewNop(), Options{})
	summary, err := engine.Run(context.Background(), &sliceSource{intents: []Intent{
		subnetIntent("10.1.8.0/24", ""),
		addressIntent("10.1.8.5", AddressIntent{}),
	}})

	assert.NoError(t, err)
	assert.Equal(t, Summary{SubnetsSkipped: 1, AddressesSkipped: 1}, summary)
	client.AssertNotCalled(t, "CreatePrefix", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "CreateAddress", mock.Anything, mock.Anything)
}

// TestRun_DryRun tests that dry-run mode tallies creates without any client calls.
func TestRun_DryRun(t *testing.T) {
	client := new(mocks.Client)

	engine := New(client, zap.NewNop(), Options{DryRun: true})
	summary, err := engine.Run(context.Background(), &sliceSource{intents: []Intent{
		subnetIntent("10.1.8.0/24", "lab"),
		addressIntent("10.1.8.5", AddressIntent{Subnet: "10.1.8.0/24"}),
		addressIntent("10.1.8.6", AddressIntent{Subnet: "10.1.8.0/24"}),
	}})

	assert.NoError(t, err)
	assert.Equal(t, Summary{SubnetsCreated: 1, AddressesCreated: 2}, summary)
	client.AssertNotCalled(t, "FindPrefix", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "FindAddress", mock.Anything, mock.Anything)
}

// TestRun_ContinuesAfterFailures tests that per-intent failures are counted
// without aborting the run.
func TestRun_ContinuesAfterFailures(t *testing.T) {
	client := new(mocks.Client)
	client.On("FindPrefix", mock.Anything, "10.1.8.0/24").
		Return(nil, errors.New("connection reset"))
	client.On("FindPrefix", mock.Anything, "10.1.9.0/24").Return(nil, nil)
	client.On("CreatePrefix", mock.Anything, mock.MatchedBy(func(in netbox.PrefixCreate) bool {
		return in.Prefix == "10.1.9.0/24"
	})).Return(nil, errors.New("500 internal server error"))
	client.On("FindAddress", mock.Anything, "10.1.9.5/32").Return(nil, nil)
	client.On("CreateAddress", mock.Anything, mock.Anything).
		Return(&netbox.IPAddress{ID: 1}, nil)

	engine := New(client, zap.NewNop(), Options{})
	summary, err := engine.Run(context.Background(), &sliceSource{intents: []Intent{
		subnetIntent("10.1.8.0/24", ""), // lookup fails
		subnetIntent("10.1.9.0/24", ""), // create fails
		addressIntent("10.1.9.5", AddressIntent{Subnet: "10.1.9.0/24"}),
	}})

	assert.NoError(t, err)
	assert.Equal(t, Summary{AddressesCreated: 1, Errors: 2}, summary)
}

// TestRun_SourceErrorAborts tests that a broken intent source stops the run
// and surfaces the error with the counts so far.
func TestRun_SourceErrorAborts(t *testing.T) {
	client := new(mocks.Client)
	client.On("FindPrefix", mock.Anything, "10.1.8.0/24").Return(nil, nil)
	client.On("CreatePrefix", mock.Anything, mock.Anything).
		Return(&netbox.Prefix{ID: 1}, nil)

	src := &failingSource{
		sliceSource: sliceSource{intents: []Intent{subnetIntent("10.1.8.0/24", "")}},
		err:         errors.New("unexpected EOF"),
	}

	engine := New(client, zap.NewNop(), Options{})
	summary, err := engine.Run(context.Background(), src)

	assert.Error(t, err)
	assert.Equal(t, Summary{SubnetsCreated: 1}, summary)
}

// TestRun_TruncatesDescriptions tests that descriptions longer than the
// inventory's column limit are cut to exactly 200 characters.
func TestRun_TruncatesDescriptions(t *testing.T) {
	long := strings.Repeat("x", 250)

	client := new(mocks.Client)
	client.On("FindPrefix", mock.Anything, mock.Anything).Return(nil, nil)
	client.On("CreatePrefix", mock.Anything, mock.MatchedBy(func(in netbox.PrefixCreate) bool {
		return len([]rune(in.Description)) == 200
	})).Return(&netbox.Prefix{ID: 1}, nil)

	engine := New(client, zap.NewNop(), Options{})
	summary, err := engine.Run(context.Background(), &sliceSource{intents: []Intent{
		subnetIntent("10.1.8.0/24", long),
	}})

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.SubnetsCreated)
	client.AssertExpectations(t)
}

// TestRun_JoinsDescriptionAndNote tests the description assembly for
// address records.
func TestRun_JoinsDescriptionAndNote(t *testing.T) {
	tests := []struct {
		name        string
		description string
		note        string
		want        string
	}{
		{name: "Both", description: "Server A", note: "rack 12", want: "Server A | Note: rack 12"},
		{name: "DescriptionOnly", description: "Server A", want: "Server A"},
		{name: "NoteOnly", note: "rack 12", want: "Note: rack 12"},
		{name: "Neither", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("FindAddress", mock.Anything, mock.Anything).Return(nil, nil)
			client.On("CreateAddress", mock.Anything, mock.MatchedBy(func(in netbox.AddressCreate) bool {
				return in.Description == tt.want
			})).Return(&netbox.IPAddress{ID: 1}, nil)

			engine := New(client, zap.NewNop(), Options{})
			_, err := engine.Run(context.Background(), &sliceSource{intents: []Intent{
				addressIntent("10.1.8.5", AddressIntent{Description: tt.description, Note: tt.note}),
			}})

			assert.NoError(t, err)
			client.AssertExpectations(t)
		})
	}
}

// TestRun_Idempotence tests that a second run against the same inventory
// creates nothing and skips everything.
func TestRun_Idempotence(t *testing.T) {
	inventory := newFakeInventory()
	intents := []Intent{
		subnetIntent("10.1.8.0/24", "lab"),
		addressIntent("10.1.8.5", AddressIntent{Subnet: "10.1.8.0/24", Hostname: "host-a"}),
		addressIntent("2001:db8::5", AddressIntent{Subnet: "10.1.8.0/24"}),
	}

	engine := New(inventory, zap.NewNop(), Options{})

	first, err := engine.Run(context.Background(), &sliceSource{intents: intents})
	assert.NoError(t, err)
	assert.Equal(t, Summary{SubnetsCreated: 1, AddressesCreated: 2}, first)

	second, err := engine.Run(context.Background(), &sliceSource{intents: intents})
	assert.NoError(t, err)
	assert.Equal(t, Summary{SubnetsSkipped: 1, AddressesSkipped: 2}, second)
}

// TestMaskedAddress tests lookup key derivation for v4 and v6 hosts.
func TestMaskedAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{name: "IPv4", addr: "10.1.8.5", want: "10.1.8.5/32"},
		{name: "IPv6", addr: "2001:db8::5", want: "2001:db8::5/128"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskedAddress(netip.MustParseAddr(tt.addr)))
		})
	}
}

// TestTruncate tests rune-aware truncation.
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 200))
	assert.Equal(t, strings.Repeat("x", 200), truncate(strings.Repeat("x", 250), 200))
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.Equal(t, "hé", truncate("héllo", 2))
}
