package pagetracker

import (
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request identifier used in log entries.
const HeaderRequestID = "X-Request-Id"

// FailureMessage is the body sent when the store cannot be reached.
const FailureMessage = "Sorry, something went wrong \U0001F614"

// Handler returns the HTTP surface of the tracker: GET / records a view and
// reports the total. Other methods on / get 405, other paths 404.
func (t *Tracker) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestID)
	r.Methods(http.MethodGet, http.MethodHead).
		Path("/").
		Name("index").
		HandlerFunc(t.index)
	return r
}

func (t *Tracker) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	n, err := t.Hit(r.Context())
	if err != nil {
		t.logger.Error("count page view",
			zap.String("request_id", w.Header().Get(HeaderRequestID)),
			zap.String("key", t.key),
			zap.Error(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, FailureMessage)
		return
	}

	fmt.Fprintf(w, "This page has been seen %d times.", n)
}

// requestID echoes the client's X-Request-Id or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r)
	})
}
