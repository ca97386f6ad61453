package kv_repo

import (
	"context"
	"errors"
	"fortune_wheel/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "wheel_history"
	colKey    = "session_key"
	colValue  = "value"
	colUpdate = "updated_at"
)

type pgKV struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewPostgresKeyValue - хранилище в таблице wheel_history.
// Внутри txManager.Do запросы идут в открытой транзакции
func NewPostgresKeyValue(dbc *pgxpool.Pool) repository.KeyValue {
	return &pgKV{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Get - значение по ключу. Строка блокируется до конца транзакции, если она есть
func (r *pgKV) Get(ctx context.Context, key string) (string, bool, error) {
	query := sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

// Set - вставка или обновление значения
func (r *pgKV) Set(ctx context.Context, key string, value string) error {
	query := sq.Insert(table).
		Columns(colKey, colValue).
		Values(key, value).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " + colValue + " = EXCLUDED." + colValue + ", " + colUpdate + " = now()").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *pgKV) Delete(ctx context.Context, key string) error {
	query := sq.Delete(table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
