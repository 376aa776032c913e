package db

import (
	"errors"

	"github.com/Flarenzy/simple-ipam/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func ptrFromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func int4FromPtr(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *v, Valid: true}
}

func ptrFromInt4(v pgtype.Int4) *int32 {
	if !v.Valid {
		return nil
	}
	i := v.Int32
	return &i
}

func optionalText(o domain.Optional[string]) (bool, pgtype.Text) {
	return o.Set, textFromPtr(o.Value)
}

func optionalBool(o domain.Optional[bool]) (bool, bool) {
	if !o.Set || o.Value == nil {
		return false, false
	}
	return true, *o.Value
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isConstraintViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == constraint
}
