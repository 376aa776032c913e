package db

import (
	"context"

	"github.com/Flarenzy/simple-ipam/internal/db/sqlc"
	"github.com/Flarenzy/simple-ipam/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type SubnetRepository struct {
	queries *sqlc.Queries
}

func NewSubnetRepository(queries *sqlc.Queries) *SubnetRepository {
	return &SubnetRepository{queries: queries}
}

func (r *SubnetRepository) List(ctx context.Context, filter domain.SubnetFilter) ([]domain.Subnet, error) {
	params := sqlc.ListSubnetsParams{
		RowOffset: int64(filter.Offset),
		RowLimit:  int32(filter.Limit),
	}
	if filter.IsActive != nil {
		params.IsActive = pgtype.Bool{Bool: *filter.IsActive, Valid: true}
	}

	subnets, err := r.queries.ListSubnets(ctx, params)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Subnet, 0, len(subnets))
	for _, subnet := range subnets {
		out = append(out, toDomainSubnet(subnet))
	}

	return out, nil
}

func (r *SubnetRepository) FindByID(ctx context.Context, id int64) (domain.Subnet, error) {
	subnet, err := r.queries.GetSubnetByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return domain.Subnet{}, domain.ErrNotFound
		}
		return domain.Subnet{}, err
	}

	return toDomainSubnet(subnet), nil
}

func (r *SubnetRepository) ExistsByNetwork(ctx context.Context, network string) (bool, error) {
	return r.queries.SubnetExistsByNetwork(ctx, network)
}

func (r *SubnetRepository) Create(ctx context.Context, record domain.NewSubnetRecord) (domain.Subnet, error) {
	subnet, err := r.queries.CreateSubnet(ctx, sqlc.CreateSubnetParams{
		Name:        record.Name,
		Network:     record.Network,
		Description: textFromPtr(record.Description),
		VlanID:      int4FromPtr(record.VLANID),
		Location:    textFromPtr(record.Location),
		IsActive:    record.IsActive,
	})
	if err != nil {
		if isConstraintViolation(err, "unique_network") {
			return domain.Subnet{}, domain.ErrDuplicateNetwork
		}
		return domain.Subnet{}, err
	}

	return toDomainSubnet(subnet), nil
}

func (r *SubnetRepository) Update(ctx context.Context, id int64, input domain.UpdateSubnetInput) (domain.Subnet, error) {
	params := sqlc.UpdateSubnetParams{ID: id}
	if input.Name.Set && input.Name.Value != nil {
		params.SetName = true
		params.Name = *input.Name.Value
	}
	params.SetDescription, params.Description = optionalText(input.Description)
	params.SetLocation, params.Location = optionalText(input.Location)
	params.SetIsActive, params.IsActive = optionalBool(input.IsActive)
	if input.VLANID.Set {
		params.SetVlanID = true
		params.VlanID = int4FromPtr(input.VLANID.Value)
	}

	subnet, err := r.queries.UpdateSubnet(ctx, params)
	if err != nil {
		if isNoRows(err) {
			return domain.Subnet{}, domain.ErrNotFound
		}
		return domain.Subnet{}, err
	}

	return toDomainSubnet(subnet), nil
}

func (r *SubnetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.queries.DeleteSubnetByID(ctx, id)
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func toDomainSubnet(subnet sqlc.Subnet) domain.Subnet {
	return domain.Subnet{
		ID:          subnet.ID,
		Name:        subnet.Name,
		Network:     subnet.Network,
		Description: ptrFromText(subnet.Description),
		VLANID:      ptrFromInt4(subnet.VlanID),
		Location:    ptrFromText(subnet.Location),
		IsActive:    subnet.IsActive,
		CreatedAt:   subnet.CreatedAt.Time,
		UpdatedAt:   subnet.UpdatedAt.Time,
	}
}
