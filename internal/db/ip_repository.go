package db

import (
	"context"

	"github.com/Flarenzy/simple-ipam/internal/db/sqlc"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

type IPRepository struct {
	queries *sqlc.Queries
}

func NewIPRepository(queries *sqlc.Queries) *IPRepository {
	return &IPRepository{queries: queries}
}

func (r *IPRepository) ListBySubnetID(ctx context.Context, subnetID int64) ([]domain.IPAddress, error) {
	ips, err := r.queries.ListIPsBySubnetID(ctx, subnetID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.IPAddress, 0, len(ips))
	for _, ip := range ips {
		out = append(out, toDomainIP(ip))
	}

	return out, nil
}

func (r *IPRepository) FindByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (domain.IPAddress, error) {
	ip, err := r.queries.GetIPByIDAndSubnetID(ctx, sqlc.GetIPByIDAndSubnetIDParams{
		ID:       id,
		SubnetID: subnetID,
	})
	if err != nil {
		if isNoRows(err) {
			return domain.IPAddress{}, domain.ErrNotFound
		}
		return domain.IPAddress{}, err
	}

	return toDomainIP(ip), nil
}

func (r *IPRepository) Create(ctx context.Context, record domain.NewIPRecord) (domain.IPAddress, error) {
	ip, err := r.queries.CreateIPAddress(ctx, sqlc.CreateIPAddressParams{
		SubnetID:    record.SubnetID,
		IpAddress:   record.IP,
		Hostname:    textFromPtr(record.Hostname),
		Description: textFromPtr(record.Description),
		IsAllocated: record.IsAllocated,
		AllocatedTo: textFromPtr(record.AllocatedTo),
	})
	if err != nil {
		if isConstraintViolation(err, "unique_ip") {
			return domain.IPAddress{}, domain.ErrConflict
		}
		return domain.IPAddress{}, err
	}

	return toDomainIP(ip), nil
}

func (r *IPRepository) Update(ctx context.Context, id int64, input domain.UpdateIPInput) (domain.IPAddress, error) {
	params := sqlc.UpdateIPByIDParams{ID: id}
	params.SetHostname, params.Hostname = optionalText(input.Hostname)
	params.SetDescription, params.Description = optionalText(input.Description)
	params.SetIsAllocated, params.IsAllocated = optionalBool(input.IsAllocated)
	params.SetAllocatedTo, params.AllocatedTo = optionalText(input.AllocatedTo)

	ip, err := r.queries.UpdateIPByID(ctx, params)
	if err != nil {
		if isNoRows(err) {
			return domain.IPAddress{}, domain.ErrNotFound
		}
		return domain.IPAddress{}, err
	}

	return toDomainIP(ip), nil
}

func (r *IPRepository) DeleteByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (bool, error) {
	deleted, err := r.queries.DeleteIPByIDAndSubnetID(ctx, sqlc.DeleteIPByIDAndSubnetIDParams{
		ID:       id,
		SubnetID: subnetID,
	})
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (r *IPRepository) UsageBySubnetID(ctx context.Context, subnetID int64) (domain.IPUsage, error) {
	row, err := r.queries.CountIPsBySubnetID(ctx, subnetID)
	if err != nil {
		return domain.IPUsage{}, err
	}
	return domain.IPUsage{Total: row.Total, Allocated: row.Allocated}, nil
}

func toDomainIP(ip sqlc.IpAddress) domain.IPAddress {
	return domain.IPAddress{
		ID:          ip.ID,
		SubnetID:    ip.SubnetID,
		IP:          ip.IpAddress,
		Hostname:    ptrFromText(ip.Hostname),
		Description: ptrFromText(ip.Description),
		IsAllocated: ip.IsAllocated,
		AllocatedTo: ptrFromText(ip.AllocatedTo),
		CreatedAt:   ip.CreatedAt.Time,
		UpdatedAt:   ip.UpdatedAt.Time,
	}
}
