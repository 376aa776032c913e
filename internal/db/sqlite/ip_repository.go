package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

const ipColumns = `id, subnet_id, ip_address, hostname, description, is_allocated, allocated_to, created_at, updated_at`

type IPRepository struct {
	store *Store
}

func (r *IPRepository) ListBySubnetID(ctx context.Context, subnetID int64) ([]domain.IPAddress, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT `+ipColumns+` FROM ip_addresses WHERE subnet_id = ? ORDER BY id`, subnetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.IPAddress{}
	for rows.Next() {
		ip, err := scanIP(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ip)
	}
	return out, rows.Err()
}

func (r *IPRepository) FindByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (domain.IPAddress, error) {
	row := r.store.db.QueryRowContext(ctx, `SELECT `+ipColumns+` FROM ip_addresses WHERE id = ? AND subnet_id = ?`, id, subnetID)
	ip, err := scanIP(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.IPAddress{}, domain.ErrNotFound
		}
		return domain.IPAddress{}, err
	}
	return ip, nil
}

func (r *IPRepository) Create(ctx context.Context, record domain.NewIPRecord) (domain.IPAddress, error) {
	now := r.store.timestamp()
	row := r.store.db.QueryRowContext(ctx, `
		INSERT INTO ip_addresses (subnet_id, ip_address, hostname, description, is_allocated, allocated_to, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+ipColumns,
		record.SubnetID,
		record.IP,
		nullString(record.Hostname),
		nullString(record.Description),
		record.IsAllocated,
		nullString(record.AllocatedTo),
		now,
		now,
	)
	ip, err := scanIP(row)
	if err != nil {
		if isUniqueViolation(err, "ip_addresses.ip_address") {
			return domain.IPAddress{}, domain.ErrConflict
		}
		return domain.IPAddress{}, err
	}
	return ip, nil
}

func (r *IPRepository) Update(ctx context.Context, id int64, input domain.UpdateIPInput) (domain.IPAddress, error) {
	sets := []string{"updated_at = ?"}
	args := []any{r.store.timestamp()}

	if input.Hostname.Set {
		sets = append(sets, "hostname = ?")
		args = append(args, nullString(input.Hostname.Value))
	}
	if input.Description.Set {
		sets = append(sets, "description = ?")
		args = append(args, nullString(input.Description.Value))
	}
	if input.IsAllocated.Set && input.IsAllocated.Value != nil {
		sets = append(sets, "is_allocated = ?")
		args = append(args, *input.IsAllocated.Value)
	}
	if input.AllocatedTo.Set {
		sets = append(sets, "allocated_to = ?")
		args = append(args, nullString(input.AllocatedTo.Value))
	}
	args = append(args, id)

	row := r.store.db.QueryRowContext(ctx,
		`UPDATE ip_addresses SET `+strings.Join(sets, ", ")+` WHERE id = ? RETURNING `+ipColumns,
		args...,
	)
	ip, err := scanIP(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.IPAddress{}, domain.ErrNotFound
		}
		return domain.IPAddress{}, err
	}
	return ip, nil
}

func (r *IPRepository) DeleteByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (bool, error) {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM ip_addresses WHERE id = ? AND subnet_id = ?`, id, subnetID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *IPRepository) UsageBySubnetID(ctx context.Context, subnetID int64) (domain.IPUsage, error) {
	var usage domain.IPUsage
	err := r.store.db.QueryRowContext(ctx, `
		SELECT count(*), coalesce(sum(CASE WHEN is_allocated THEN 1 ELSE 0 END), 0)
		FROM ip_addresses
		WHERE subnet_id = ?`, subnetID).Scan(&usage.Total, &usage.Allocated)
	return usage, err
}

func scanIP(row scanner) (domain.IPAddress, error) {
	var (
		ip          domain.IPAddress
		hostname    sql.NullString
		description sql.NullString
		allocatedTo sql.NullString
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(
		&ip.ID,
		&ip.SubnetID,
		&ip.IP,
		&hostname,
		&description,
		&ip.IsAllocated,
		&allocatedTo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.IPAddress{}, err
	}

	ip.Hostname = stringPtr(hostname)
	ip.Description = stringPtr(description)
	ip.AllocatedTo = stringPtr(allocatedTo)
	if ip.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.IPAddress{}, err
	}
	if ip.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.IPAddress{}, err
	}
	return ip, nil
}
