package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockery --name Querier --dir . --output ../../../../mocks --outpkg mocks --with-expecter --unroll-variadic=false --filename Querier.go
//go:generate mockery --srcpkg github.com/jackc/pgx/v5 --name Row --output ../../../../mocks --outpkg mocks --with-expecter --filename Row.go
//go:generate mockery --srcpkg github.com/jackc/pgx/v5 --name Rows --output ../../../../mocks --outpkg mocks --with-expecter --filename Rows.go

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeInvalidText         = "22P02"
)
