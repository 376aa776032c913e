package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubSubnetRepository struct {
	listFn   func(context.Context, SubnetFilter) ([]Subnet, error)
	findFn   func(context.Context, int64) (Subnet, error)
	existsFn func(context.Context, string) (bool, error)
	createFn func(context.Context, NewSubnetRecord) (Subnet, error)
	updateFn func(context.Context, int64, UpdateSubnetInput) (Subnet, error)
	deleteFn func(context.Context, int64) (bool, error)
}

func (s stubSubnetRepository) List(ctx context.Context, filter SubnetFilter) ([]Subnet, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, filter)
}

func (s stubSubnetRepository) FindByID(ctx context.Context, id int64) (Subnet, error) {
	if s.findFn == nil {
		return Subnet{}, nil
	}
	return s.findFn(ctx, id)
}

func (s stubSubnetRepository) ExistsByNetwork(ctx context.Context, network string) (bool, error) {
	if s.existsFn == nil {
		return false, nil
	}
	return s.existsFn(ctx, network)
}

func (s stubSubnetRepository) Create(ctx context.Context, record NewSubnetRecord) (Subnet, error) {
	if s.createFn == nil {
		return Subnet{}, nil
	}
	return s.createFn(ctx, record)
}

func (s stubSubnetRepository) Update(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error) {
	if s.updateFn == nil {
		return Subnet{}, nil
	}
	return s.updateFn(ctx, id, input)
}

func (s stubSubnetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

type stubIPRepository struct {
	listFn   func(context.Context, int64) ([]IPAddress, error)
	findFn   func(context.Context, int64, int64) (IPAddress, error)
	createFn func(context.Context, NewIPRecord) (IPAddress, error)
	updateFn func(context.Context, int64, UpdateIPInput) (IPAddress, error)
	deleteFn func(context.Context, int64, int64) (bool, error)
	usageFn  func(context.Context, int64) (IPUsage, error)
}

func (s stubIPRepository) ListBySubnetID(ctx context.Context, subnetID int64) ([]IPAddress, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, subnetID)
}

func (s stubIPRepository) FindByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (IPAddress, error) {
	if s.findFn == nil {
		return IPAddress{}, nil
	}
	return s.findFn(ctx, id, subnetID)
}

func (s stubIPRepository) Create(ctx context.Context, record NewIPRecord) (IPAddress, error) {
	if s.createFn == nil {
		return IPAddress{}, nil
	}
	return s.createFn(ctx, record)
}

func (s stubIPRepository) Update(ctx context.Context, id int64, input UpdateIPInput) (IPAddress, error) {
	if s.updateFn == nil {
		return IPAddress{}, nil
	}
	return s.updateFn(ctx, id, input)
}

func (s stubIPRepository) DeleteByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id, subnetID)
}

func (s stubIPRepository) UsageBySubnetID(ctx context.Context, subnetID int64) (IPUsage, error) {
	if s.usageFn == nil {
		return IPUsage{}, nil
	}
	return s.usageFn(ctx, subnetID)
}

func subnetFinder(network string) func(context.Context, int64) (Subnet, error) {
	return func(_ context.Context, id int64) (Subnet, error) {
		return Subnet{ID: id, Name: "lan", Network: network, IsActive: true}, nil
	}
}

func TestCreateSubnetRejectsInvalidCIDR(t *testing.T) {
	created := false
	svc := NewNetworkService(stubSubnetRepository{
		createFn: func(context.Context, NewSubnetRecord) (Subnet, error) {
			created = true
			return Subnet{}, nil
		},
	}, stubIPRepository{})

	_, err := svc.CreateSubnet(context.Background(), CreateSubnetInput{Name: "lan", Network: "not-a-cidr"})
	if !errors.Is(err, ErrInvalidNetwork) {
		t.Fatalf("expected ErrInvalidNetwork, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid network to be an ErrInvalidInput, got %v", err)
	}
	if created {
		t.Fatal("expected no row to be persisted")
	}
}

func TestCreateSubnetRejectsOverlongNetwork(t *testing.T) {
	network := "10.0.0.0/" + strings.Repeat("0", MaxNetworkLength) + "24"
	if _, err := ParseNetwork(network); err != nil {
		t.Fatalf("expected padded prefix length to parse, got %v", err)
	}

	created := false
	svc := NewNetworkService(stubSubnetRepository{
		createFn: func(context.Context, NewSubnetRecord) (Subnet, error) {
			created = true
			return Subnet{}, nil
		},
	}, stubIPRepository{})

	_, err := svc.CreateSubnet(context.Background(), CreateSubnetInput{Name: "lan", Network: network})
	if !errors.Is(err, ErrInvalidNetwork) {
		t.Fatalf("expected ErrInvalidNetwork, got %v", err)
	}
	if created {
		t.Fatal("expected no row to be persisted")
	}
}

func TestCreateSubnetRequiresName(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{}, stubIPRepository{})

	_, err := svc.CreateSubnet(context.Background(), CreateSubnetInput{Name: "  ", Network: "10.0.0.0/24"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateSubnetRejectsDuplicateNetwork(t *testing.T) {
	var checked string
	svc := NewNetworkService(stubSubnetRepository{
		existsFn: func(_ context.Context, network string) (bool, error) {
			checked = network
			return true, nil
		},
	}, stubIPRepository{})

	_, err := svc.CreateSubnet(context.Background(), CreateSubnetInput{Name: "lan", Network: "10.0.0.0/24"})
	if !errors.Is(err, ErrDuplicateNetwork) {
		t.Fatalf("expected ErrDuplicateNetwork, got %v", err)
	}
	if checked != "10.0.0.0/24" {
		t.Fatalf("expected exact network string to be checked, got %q", checked)
	}
}

func TestCreateSubnetDefaultsActiveAndEnriches(t *testing.T) {
	var record NewSubnetRecord
	svc := NewNetworkService(stubSubnetRepository{
		createFn: func(_ context.Context, r NewSubnetRecord) (Subnet, error) {
			record = r
			return Subnet{ID: 1, Name: r.Name, Network: r.Network, IsActive: r.IsActive}, nil
		},
	}, stubIPRepository{})

	subnet, err := svc.CreateSubnet(context.Background(), CreateSubnetInput{Name: "lan", Network: "10.0.0.1/24"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !record.IsActive {
		t.Fatal("expected new subnet to default to active")
	}
	if record.Network != "10.0.0.1/24" {
		t.Fatalf("expected network stored as supplied, got %q", record.Network)
	}
	if subnet.Info == nil || subnet.Info.Network != "10.0.0.0" {
		t.Fatalf("expected enriched network info, got %+v", subnet.Info)
	}
}

func TestListSubnetsValidatesPagination(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{}, stubIPRepository{})

	for _, input := range []ListSubnetsInput{
		{Skip: -1, Limit: 10},
		{Skip: 0, Limit: -5},
		{Skip: 0, Limit: MaxListLimit + 1},
	} {
		if _, err := svc.ListSubnets(context.Background(), input); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation for %+v, got %v", input, err)
		}
	}
}

func TestListSubnetsAppliesDefaultsAndEnriches(t *testing.T) {
	var filter SubnetFilter
	svc := NewNetworkService(stubSubnetRepository{
		listFn: func(_ context.Context, f SubnetFilter) ([]Subnet, error) {
			filter = f
			return []Subnet{{ID: 1, Network: "10.0.0.0/24"}, {ID: 2, Network: "garbage"}}, nil
		},
	}, stubIPRepository{})

	subnets, err := svc.ListSubnets(context.Background(), ListSubnetsInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if filter.Limit != DefaultListLimit || filter.Offset != 0 {
		t.Fatalf("unexpected filter: %+v", filter)
	}
	if subnets[0].Info == nil {
		t.Fatal("expected network info for a valid network")
	}
	if subnets[1].Info != nil {
		t.Fatal("expected absent network info for an unparseable network")
	}
}

func TestUpdateSubnetRejectsNullName(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{}, stubIPRepository{})

	_, err := svc.UpdateSubnet(context.Background(), 1, UpdateSubnetInput{Name: Null[string]()})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateSubnetPassesOnlySuppliedFields(t *testing.T) {
	var got UpdateSubnetInput
	svc := NewNetworkService(stubSubnetRepository{
		updateFn: func(_ context.Context, id int64, input UpdateSubnetInput) (Subnet, error) {
			got = input
			return Subnet{ID: id, Network: "10.0.0.0/24"}, nil
		},
	}, stubIPRepository{})

	_, err := svc.UpdateSubnet(context.Background(), 3, UpdateSubnetInput{Location: Some("dc-2")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name.Set || got.VLANID.Set || got.Description.Set || got.IsActive.Set {
		t.Fatalf("expected only location to be set, got %+v", got)
	}
	if !got.Location.Set || *got.Location.Value != "dc-2" {
		t.Fatalf("expected location dc-2, got %+v", got.Location)
	}
}

func TestDeleteSubnetReturnsNotFoundWhenRepositoryReportsNoDelete(t *testing.T) {
	svc := NewNetworkService(
		stubSubnetRepository{
			deleteFn: func(context.Context, int64) (bool, error) {
				return false, nil
			},
		},
		stubIPRepository{},
	)

	err := svc.DeleteSubnet(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubnetStats(t *testing.T) {
	tests := []struct {
		name        string
		allocated   int64
		available   int64
		utilization float64
	}{
		{"empty", 0, 254, 0},
		{"half", 127, 127, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNetworkService(
				stubSubnetRepository{findFn: subnetFinder("192.168.1.0/24")},
				stubIPRepository{
					usageFn: func(context.Context, int64) (IPUsage, error) {
						return IPUsage{Total: tt.allocated + 3, Allocated: tt.allocated}, nil
					},
				},
			)

			stats, err := svc.SubnetStats(context.Background(), 5)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if stats.SubnetID != 5 || stats.Network != "192.168.1.0/24" {
				t.Fatalf("unexpected identity: %+v", stats)
			}
			if stats.TotalIPs != tt.allocated+3 {
				t.Fatalf("expected %d total ips, got %d", tt.allocated+3, stats.TotalIPs)
			}
			if stats.AvailableIPs.Int64() != tt.available {
				t.Fatalf("expected %d available, got %s", tt.available, stats.AvailableIPs)
			}
			if stats.UtilizationPercent != tt.utilization {
				t.Fatalf("expected %v%% utilization, got %v", tt.utilization, stats.UtilizationPercent)
			}
		})
	}
}

func TestSubnetStatsNetworkInfoUnavailable(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{findFn: subnetFinder("bogus")}, stubIPRepository{})

	_, err := svc.SubnetStats(context.Background(), 1)
	if !errors.Is(err, ErrNetworkInfoUnavailable) {
		t.Fatalf("expected ErrNetworkInfoUnavailable, got %v", err)
	}
}

func TestSubnetStatsSingleHostReportsZeroUtilization(t *testing.T) {
	svc := NewNetworkService(
		stubSubnetRepository{findFn: subnetFinder("10.0.0.1/32")},
		stubIPRepository{
			usageFn: func(context.Context, int64) (IPUsage, error) {
				return IPUsage{Total: 1, Allocated: 1}, nil
			},
		},
	)

	stats, err := svc.SubnetStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.UtilizationPercent != 0 {
		t.Fatalf("expected 0 utilization, got %v", stats.UtilizationPercent)
	}
	if stats.AvailableIPs.Int64() != -2 {
		t.Fatalf("expected -2 available, got %s", stats.AvailableIPs)
	}
}

func TestSubnetStatsPropagatesNotFound(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{
		findFn: func(context.Context, int64) (Subnet, error) {
			return Subnet{}, ErrNotFound
		},
	}, stubIPRepository{})

	_, err := svc.SubnetStats(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateIPRejectsIPOutsideSubnet(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{findFn: subnetFinder("10.0.0.0/24")}, stubIPRepository{})

	_, err := svc.CreateIP(context.Background(), 1, CreateIPInput{IP: "10.0.1.10"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateIPRejectsBroadcast(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{findFn: subnetFinder("10.0.0.0/24")}, stubIPRepository{})

	_, err := svc.CreateIP(context.Background(), 1, CreateIPInput{IP: "10.0.0.255"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateIPAllowsUsableAddress(t *testing.T) {
	var record NewIPRecord
	owner := "ops"
	svc := NewNetworkService(
		stubSubnetRepository{findFn: subnetFinder("10.0.0.0/24")},
		stubIPRepository{
			createFn: func(_ context.Context, r NewIPRecord) (IPAddress, error) {
				record = r
				return IPAddress{ID: 11, SubnetID: r.SubnetID, IP: r.IP}, nil
			},
		},
	)

	ip, err := svc.CreateIP(context.Background(), 1, CreateIPInput{IP: "10.0.0.10", AllocatedTo: &owner})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ip.ID != 11 {
		t.Fatalf("unexpected ip id: %v", ip.ID)
	}
	if record.AllocatedTo != nil {
		t.Fatal("expected allocated_to to be dropped for an unallocated address")
	}
}

func TestCreateIPReportsMissingSubnet(t *testing.T) {
	svc := NewNetworkService(stubSubnetRepository{
		findFn: func(context.Context, int64) (Subnet, error) {
			return Subnet{}, ErrNotFound
		},
	}, stubIPRepository{})

	_, err := svc.CreateIP(context.Background(), 1, CreateIPInput{IP: "10.0.0.10"})
	if !errors.Is(err, ErrSubnetNotFound) {
		t.Fatalf("expected ErrSubnetNotFound, got %v", err)
	}
}

func TestUpdateIPReleasingClearsOwner(t *testing.T) {
	var got UpdateIPInput
	svc := NewNetworkService(
		stubSubnetRepository{findFn: subnetFinder("10.0.0.0/24")},
		stubIPRepository{
			updateFn: func(_ context.Context, id int64, input UpdateIPInput) (IPAddress, error) {
				got = input
				return IPAddress{ID: id}, nil
			},
		},
	)

	_, err := svc.UpdateIP(context.Background(), 1, 2, UpdateIPInput{IsAllocated: Some(false)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.AllocatedTo.Set || got.AllocatedTo.Value != nil {
		t.Fatalf("expected allocated_to to be cleared, got %+v", got.AllocatedTo)
	}
}

func TestUpdateIPReturnsNotFoundForUnknownIP(t *testing.T) {
	svc := NewNetworkService(
		stubSubnetRepository{findFn: subnetFinder("10.0.0.0/24")},
		stubIPRepository{
			findFn: func(context.Context, int64, int64) (IPAddress, error) {
				return IPAddress{}, ErrNotFound
			},
		},
	)

	_, err := svc.UpdateIP(context.Background(), 1, 2, UpdateIPInput{Hostname: Some("h")})
	if !errors.Is(err, ErrNotFound) || errors.Is(err, ErrSubnetNotFound) {
		t.Fatalf("expected plain ErrNotFound, got %v", err)
	}
}
