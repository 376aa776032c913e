package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

const subnetColumns = `id, name, network, description, vlan_id, location, is_active, created_at, updated_at`

type SubnetRepository struct {
	store *Store
}

func (r *SubnetRepository) List(ctx context.Context, filter domain.SubnetFilter) ([]domain.Subnet, error) {
	query := `SELECT ` + subnetColumns + ` FROM subnets`
	var args []any
	if filter.IsActive != nil {
		query += ` WHERE is_active = ?`
		args = append(args, *filter.IsActive)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Subnet{}
	for rows.Next() {
		subnet, err := scanSubnet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, subnet)
	}
	return out, rows.Err()
}

func (r *SubnetRepository) FindByID(ctx context.Context, id int64) (domain.Subnet, error) {
	row := r.store.db.QueryRowContext(ctx, `SELECT `+subnetColumns+` FROM subnets WHERE id = ?`, id)
	subnet, err := scanSubnet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subnet{}, domain.ErrNotFound
		}
		return domain.Subnet{}, err
	}
	return subnet, nil
}

func (r *SubnetRepository) ExistsByNetwork(ctx context.Context, network string) (bool, error) {
	var exists bool
	err := r.store.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM subnets WHERE network = ?)`, network).Scan(&exists)
	return exists, err
}

func (r *SubnetRepository) Create(ctx context.Context, record domain.NewSubnetRecord) (domain.Subnet, error) {
	now := r.store.timestamp()
	row := r.store.db.QueryRowContext(ctx, `
		INSERT INTO subnets (name, network, description, vlan_id, location, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+subnetColumns,
		record.Name,
		record.Network,
		nullString(record.Description),
		nullInt32(record.VLANID),
		nullString(record.Location),
		record.IsActive,
		now,
		now,
	)
	subnet, err := scanSubnet(row)
	if err != nil {
		if isUniqueViolation(err, "subnets.network") {
			return domain.Subnet{}, domain.ErrDuplicateNetwork
		}
		return domain.Subnet{}, err
	}
	return subnet, nil
}

func (r *SubnetRepository) Update(ctx context.Context, id int64, input domain.UpdateSubnetInput) (domain.Subnet, error) {
	sets := []string{"updated_at = ?"}
	args := []any{r.store.timestamp()}

	if input.Name.Set && input.Name.Value != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name.Value)
	}
	if input.Description.Set {
		sets = append(sets, "description = ?")
		args = append(args, nullString(input.Description.Value))
	}
	if input.VLANID.Set {
		sets = append(sets, "vlan_id = ?")
		args = append(args, nullInt32(input.VLANID.Value))
	}
	if input.Location.Set {
		sets = append(sets, "location = ?")
		args = append(args, nullString(input.Location.Value))
	}
	if input.IsActive.Set && input.IsActive.Value != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *input.IsActive.Value)
	}
	args = append(args, id)

	row := r.store.db.QueryRowContext(ctx,
		`UPDATE subnets SET `+strings.Join(sets, ", ")+` WHERE id = ? RETURNING `+subnetColumns,
		args...,
	)
	subnet, err := scanSubnet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subnet{}, domain.ErrNotFound
		}
		return domain.Subnet{}, err
	}
	return subnet, nil
}

func (r *SubnetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM subnets WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanSubnet(row scanner) (domain.Subnet, error) {
	var (
		subnet      domain.Subnet
		description sql.NullString
		vlanID      sql.NullInt32
		location    sql.NullString
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(
		&subnet.ID,
		&subnet.Name,
		&subnet.Network,
		&description,
		&vlanID,
		&location,
		&subnet.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Subnet{}, err
	}

	subnet.Description = stringPtr(description)
	subnet.VLANID = int32Ptr(vlanID)
	subnet.Location = stringPtr(location)
	if subnet.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Subnet{}, err
	}
	if subnet.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Subnet{}, err
	}
	return subnet, nil
}
