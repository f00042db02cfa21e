package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	HeaderRequestID  = "X-Request-Id"
	HeaderRequestAt  = "X-Request-At"
	HeaderCustomerID = "X-Customer-Id"

	// a request still running after this long no longer blocks retries
	pendingTTL = 60 * time.Second
	// accepted distance between X-Request-At and the server clock
	maxClockSkew = 10 * time.Minute
)

// record is what the store keeps per request key.
type record struct {
	Pending    bool      `json:"pending"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	RequestID  string    `json:"request_id"`
	RequestAt  time.Time `json:"request_at"`
	StoredAt   time.Time `json:"stored_at"`
}

// capture tees the response so it can be replayed.
type capture struct {
	http.ResponseWriter
	buf  bytes.Buffer
	code int
}

func (w *capture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capture) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func reject(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

// Idempotency makes mutating ledger requests safe to retry. A request is
// keyed by method, route, X-Customer-Id and X-Request-Id; the first
// completed response is replayed for the same key and body for ttl.
// Server errors are not kept so the client can retry them.
func Idempotency(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			reqID, err := parseRequestID(req.Header.Get(HeaderRequestID))
			if err != nil {
				return reject(c, http.StatusBadRequest, err.Error())
			}
			reqAt, err := parseRequestAt(req.Header.Get(HeaderRequestAt))
			if err != nil {
				return reject(c, http.StatusBadRequest, err.Error())
			}
			if now := nowUTC(); reqAt.Before(now.Add(-maxClockSkew)) || reqAt.After(now.Add(maxClockSkew)) {
				return reject(c, http.StatusBadRequest, HeaderRequestAt+" too skewed")
			}
			customerID, err := parseCustomerID(req.Header.Get(HeaderCustomerID))
			if err != nil {
				return reject(c, http.StatusBadRequest, err.Error())
			}

			var body []byte
			if req.Body != nil {
				if body, err = io.ReadAll(req.Body); err != nil {
					return reject(c, http.StatusBadRequest, "unreadable body")
				}
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			sum := bodyHash(body)

			key := buildKey(req.Method, c.Path(), customerID, reqID)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			ok, err := claim(ctx, rdb, key, record{
				Pending:    true,
				BodySHA256: sum,
				RequestID:  reqID,
				RequestAt:  reqAt,
				StoredAt:   nowUTC(),
			})
			if err != nil {
				log.Printf("idempotency: claim %s: %v", key, err)
				return reject(c, http.StatusServiceUnavailable, "idempotency store unavailable")
			}
			if !ok {
				prev, err := load(ctx, rdb, key)
				if err != nil {
					log.Printf("idempotency: load %s: %v", key, err)
				}
				if prev.BodySHA256 != "" && prev.BodySHA256 != sum {
					return reject(c, http.StatusUnprocessableEntity, HeaderRequestID+" reused with a different body")
				}
				if !prev.Pending && prev.Code != 0 {
					c.Response().Header().Set("Idempotent-Replayed", "true")
					return c.Blob(prev.Code, echo.MIMEApplicationJSON, prev.Body)
				}
				return reject(c, http.StatusConflict, "request is already in progress")
			}

			w := &capture{ResponseWriter: c.Response().Writer, code: http.StatusOK}
			c.Response().Writer = w
			if err := next(c); err != nil {
				c.Error(err)
			}

			// detached: the client may already be gone
			done, stop := context.WithTimeout(context.Background(), 2*time.Second)
			defer stop()
			if w.code >= http.StatusInternalServerError {
				if err := rdb.Del(done, key).Err(); err != nil {
					log.Printf("idempotency: release %s: %v", key, err)
				}
				return nil
			}
			if err := store(done, rdb, key, record{
				Code:       w.code,
				Body:       w.buf.Bytes(),
				BodySHA256: sum,
				RequestID:  reqID,
				RequestAt:  reqAt,
				StoredAt:   nowUTC(),
			}, ttl); err != nil {
				log.Printf("idempotency: store %s: %v", key, err)
			}
			return nil
		}
	}
}
