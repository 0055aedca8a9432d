package database

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned (wrapped) when a looked-up row does not exist.
var ErrNotFound = errors.New("record not found")

// nullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNullString stores empty strings as NULL.
func stringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// expectAffected turns "no rows touched" into ErrNotFound.
func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
