// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/nudge/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	itemsTable = "expiry_items"
	usersTable = "users"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	itemColumns = []string{"id", "name", "expiry_date", "user_id", "archived_at", "created_at", "updated_at"}
	userColumns = []string{"id", "email", "COALESCE(password_hash, '')", "COALESCE(name, '')", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// buildListItemsQuery selects one user's active or archived items, soonest
// expiry first.
func buildListItemsQuery(userID int64, archived bool) (string, []any, error) {
	var archivedCond sq.Sqlizer = sq.Eq{"archived_at": nil}
	if archived {
		archivedCond = sq.NotEq{"archived_at": nil}
	}

	query, args, err := psql.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(archivedCond).
		OrderBy("expiry_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildListAllActiveQuery selects active items of every user.
func buildListAllActiveQuery() (string, []any, error) {
	query, args, err := psql.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"archived_at": nil}).
		OrderBy("expiry_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildGetItemQuery(userID, itemID int64) (string, []any, error) {
	query, args, err := psql.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": itemID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertItemQuery(item models.Item) (string, []any, error) {
	query, args, err := psql.Insert(itemsTable).
		Columns("name", "expiry_date", "user_id").
		Values(item.Name, item.ExpiryDate, item.OwnerID).
		Suffix(returning(itemColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildUpdateItemQuery(item models.Item) (string, []any, error) {
	if item.OwnerID == nil {
		return "", nil, fmt.Errorf("%w: item %d has no owner", ErrBuildingSQLQuery, item.ID)
	}

	query, args, err := psql.Update(itemsTable).
		Set("name", item.Name).
		Set("expiry_date", item.ExpiryDate).
		Where(sq.Eq{"id": item.ID}).
		Where(sq.Eq{"user_id": *item.OwnerID}).
		Suffix(returning(itemColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildArchiveItemQuery archives one item. Archiving an archived item keeps
// its original timestamp.
func buildArchiveItemQuery(userID, itemID int64) (string, []any, error) {
	query, args, err := psql.Update(itemsTable).
		Set("archived_at", sq.Expr("COALESCE(archived_at, NOW())")).
		Where(sq.Eq{"id": itemID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildArchiveAllQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Update(itemsTable).
		Set("archived_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"archived_at": nil}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteItemQuery(userID, itemID int64) (string, []any, error) {
	query, args, err := psql.Delete(itemsTable).
		Where(sq.Eq{"id": itemID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteAllArchivedQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Delete(itemsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"archived_at": nil}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	var name any
	if user.Name != "" {
		name = user.Name
	}

	query, args, err := psql.Insert(usersTable).
		Columns("email", "password_hash", "name").
		Values(user.Email, user.PasswordHash, name).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}
