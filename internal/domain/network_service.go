package domain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

type networkService struct {
	subnets SubnetRepository
	ips     IPRepository
}

func NewNetworkService(subnets SubnetRepository, ips IPRepository) NetworkService {
	return &networkService{
		subnets: subnets,
		ips:     ips,
	}
}

func (s *networkService) ListSubnets(ctx context.Context, input ListSubnetsInput) ([]Subnet, error) {
	if input.Limit == 0 {
		input.Limit = DefaultListLimit
	}
	if input.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must be >= 0", ErrValidation)
	}
	if input.Limit < 1 || input.Limit > MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, MaxListLimit)
	}

	subnets, err := s.subnets.List(ctx, SubnetFilter{
		IsActive: input.IsActive,
		Offset:   input.Skip,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, err
	}
	for i := range subnets {
		enrich(&subnets[i])
	}
	return subnets, nil
}

func (s *networkService) CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Subnet{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(input.Network) > MaxNetworkLength {
		return Subnet{}, ErrInvalidNetwork
	}
	if _, err := ParseNetwork(input.Network); err != nil {
		return Subnet{}, ErrInvalidNetwork
	}

	exists, err := s.subnets.ExistsByNetwork(ctx, input.Network)
	if err != nil {
		return Subnet{}, err
	}
	if exists {
		return Subnet{}, ErrDuplicateNetwork
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	subnet, err := s.subnets.Create(ctx, NewSubnetRecord{
		Name:        input.Name,
		Network:     input.Network,
		Description: input.Description,
		VLANID:      input.VLANID,
		Location:    input.Location,
		IsActive:    active,
	})
	if err != nil {
		return Subnet{}, err
	}
	enrich(&subnet)
	return subnet, nil
}

func (s *networkService) GetSubnet(ctx context.Context, id int64) (Subnet, error) {
	subnet, err := s.subnets.FindByID(ctx, id)
	if err != nil {
		return Subnet{}, err
	}
	enrich(&subnet)
	return subnet, nil
}

func (s *networkService) UpdateSubnet(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error) {
	if input.Name.Set && (input.Name.Value == nil || strings.TrimSpace(*input.Name.Value) == "") {
		return Subnet{}, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if input.IsActive.Set && input.IsActive.Value == nil {
		return Subnet{}, fmt.Errorf("%w: is_active cannot be null", ErrValidation)
	}

	subnet, err := s.subnets.Update(ctx, id, input)
	if err != nil {
		return Subnet{}, err
	}
	enrich(&subnet)
	return subnet, nil
}

func (s *networkService) DeleteSubnet(ctx context.Context, id int64) error {
	deleted, err := s.subnets.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *networkService) SubnetStats(ctx context.Context, id int64) (SubnetStats, error) {
	subnet, err := s.subnets.FindByID(ctx, id)
	if err != nil {
		return SubnetStats{}, err
	}

	// Stored networks are not re-validated on read.
	info, ok := CalculateNetworkInfo(subnet.Network)
	if !ok {
		return SubnetStats{}, ErrNetworkInfoUnavailable
	}

	usage, err := s.ips.UsageBySubnetID(ctx, id)
	if err != nil {
		return SubnetStats{}, err
	}

	return SubnetStats{
		SubnetID:           subnet.ID,
		Network:            subnet.Network,
		Info:               info,
		TotalIPs:           usage.Total,
		AllocatedIPs:       usage.Allocated,
		AvailableIPs:       new(big.Int).Sub(info.UsableHosts, big.NewInt(usage.Allocated)),
		UtilizationPercent: Utilization(usage.Allocated, info.UsableHosts),
	}, nil
}

func (s *networkService) ListIPs(ctx context.Context, subnetID int64) ([]IPAddress, error) {
	if _, err := s.findSubnet(ctx, subnetID); err != nil {
		return nil, err
	}
	return s.ips.ListBySubnetID(ctx, subnetID)
}

func (s *networkService) CreateIP(ctx context.Context, subnetID int64, input CreateIPInput) (IPAddress, error) {
	subnet, err := s.findSubnet(ctx, subnetID)
	if err != nil {
		return IPAddress{}, err
	}

	prefix, err := ParseNetwork(subnet.Network)
	if err != nil {
		return IPAddress{}, ErrNetworkInfoUnavailable
	}

	ip, err := netip.ParseAddr(input.IP)
	if err != nil || ip.Zone() != "" {
		return IPAddress{}, fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}

	if err = validateIPInSubnet(prefix, ip); err != nil {
		return IPAddress{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	allocatedTo := input.AllocatedTo
	if !input.IsAllocated {
		allocatedTo = nil
	}

	return s.ips.Create(ctx, NewIPRecord{
		SubnetID:    subnetID,
		IP:          ip.String(),
		Hostname:    input.Hostname,
		Description: input.Description,
		IsAllocated: input.IsAllocated,
		AllocatedTo: allocatedTo,
	})
}

func (s *networkService) UpdateIP(ctx context.Context, subnetID int64, id int64, input UpdateIPInput) (IPAddress, error) {
	if input.IsAllocated.Set && input.IsAllocated.Value == nil {
		return IPAddress{}, fmt.Errorf("%w: is_allocated cannot be null", ErrValidation)
	}
	if _, err := s.findSubnet(ctx, subnetID); err != nil {
		return IPAddress{}, err
	}
	if _, err := s.ips.FindByIDAndSubnet(ctx, id, subnetID); err != nil {
		return IPAddress{}, err
	}

	// Releasing an address drops its owner unless the caller names one.
	if input.IsAllocated.Set && !*input.IsAllocated.Value && !input.AllocatedTo.Set {
		input.AllocatedTo = Null[string]()
	}

	return s.ips.Update(ctx, id, input)
}

func (s *networkService) DeleteIP(ctx context.Context, subnetID int64, id int64) error {
	deleted, err := s.ips.DeleteByIDAndSubnet(ctx, id, subnetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *networkService) findSubnet(ctx context.Context, id int64) (Subnet, error) {
	subnet, err := s.subnets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Subnet{}, ErrSubnetNotFound
		}
		return Subnet{}, err
	}
	return subnet, nil
}

func enrich(subnet *Subnet) {
	if info, ok := CalculateNetworkInfo(subnet.Network); ok {
		subnet.Info = &info
	}
}

func validateIPInSubnet(prefix netip.Prefix, ip netip.Addr) error {
	if !prefix.Contains(ip) {
		return fmt.Errorf("ip not in subnet")
	}

	// /31 IPv4 point-to-point links treat both addresses as usable.
	if ip.Is4() && prefix.Bits() < 31 {
		r := netipx.RangeOfPrefix(prefix)
		if r.From() == ip || r.To() == ip {
			return fmt.Errorf("network or broadcast ip")
		}
	}

	return nil
}
