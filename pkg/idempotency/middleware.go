package idempotency

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
)

const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"
)

// Middleware replays the stored response for a repeated Idempotency-Key.
// Requests without the header pass straight through. Redis failures fail open.
// Responses with a 5xx status, and handlers that panic, release the key so the
// client can retry.
func Middleware(store *Store, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(HeaderKey)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			key := store.Key(r.Method+":"+r.URL.Path, header)

			claimed, err := store.Claim(ctx, key)
			if err != nil {
				log.Error("idempotency claim failed", "key", key, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if !claimed {
				replay(w, r, store, log, key, next)
				return
			}

			defer func() {
				if p := recover(); p != nil {
					if err := store.Forget(context.WithoutCancel(ctx), key); err != nil {
						log.Error("idempotency forget failed", "key", key, "err", err)
					}
					panic(p)
				}
			}()

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				if err := store.Forget(ctx, key); err != nil {
					log.Error("idempotency forget failed", "key", key, "err", err)
				}
				return
			}
			resp := Response{
				Status:      rec.status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			}
			if err := store.Save(ctx, key, resp); err != nil {
				log.Error("idempotency save failed", "key", key, "err", err)
			}
		})
	}
}

func replay(w http.ResponseWriter, r *http.Request, store *Store, log *slog.Logger, key string, next http.Handler) {
	resp, err := store.Load(r.Context(), key)
	switch {
	case errors.Is(err, ErrInFlight):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"a request with this idempotency key is already in progress","code":"idempotency_in_flight"}`))
	case err != nil:
		log.Error("idempotency load failed", "key", key, "err", err)
		next.ServeHTTP(w, r)
	case resp == nil:
		// expired between claim and load
		next.ServeHTTP(w, r)
	default:
		if resp.ContentType != "" {
			w.Header().Set("Content-Type", resp.ContentType)
		}
		w.Header().Set(HeaderReplayed, "true")
		w.WriteHeader(resp.Status)
		_, _ = w.Write(resp.Body)
	}
}

type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
