package tx

import (
	"context"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Tx carries the repository through the request context so that
// handlers can open transactions without holding a repo reference.
type Tx struct {
	DbRepo DBRepo
}

func TxMiddlewareHTTP(repo DBRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a transaction when the middleware installed
// one, and directly otherwise (tests, one-off callers).
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	txObj, ok := ctx.Value(KeyTx).(Tx)
	if !ok || txObj.DbRepo == nil {
		return cb(ctx)
	}
	return txObj.DbRepo.WithTx(ctx, cb)
}
