package e_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wamique00786/wesalvator/pkg/e"
)

func TestWrapError_Nil(t *testing.T) {
	t.Parallel()

	if err := e.WrapError(context.Background(), "op", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestWrapError_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", fmt.Errorf("q: %w", context.DeadlineExceeded), e.ErrDeadline},
		{"canceled", context.Canceled, e.ErrCanceled},
		{"unique", &pgconn.PgError{Code: "23505"}, e.ErrUniqueViolation},
		{"fk", &pgconn.PgError{Code: "23503"}, e.ErrInvalidInput},
		{"other pg", &pgconn.PgError{Code: "42P01"}, e.ErrInternal},
		{"no rows", pgx.ErrNoRows, e.ErrNotFound},
		{"unknown", errors.New("boom"), e.ErrInternal},
	}

	for _, tc := range cases {
		got := e.WrapError(context.Background(), "postgres.Test", tc.in)
		if !errors.Is(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
