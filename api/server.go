package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/matt-g-everett/ledreel/stream"
)

// Doer runs a command against the movie.
type Doer interface {
	Do(ctx context.Context, cmd stream.Command) (stream.Status, error)
}

// Api serves movie status and control over HTTP, plus static client pages.
type Api struct {
	doer    Doer
	static  string
	timeout time.Duration
}

// NewApi creates an instance of an Api. An empty static directory disables
// the file server.
func NewApi(doer Doer, static string) *Api {
	a := new(Api)
	a.doer = doer
	a.static = static
	a.timeout = 5 * time.Second
	return a
}

// Handler returns the routes served by the Api.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	mux.HandleFunc("/command", a.handleCommand)
	if a.static != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.static)))
	}
	return mux
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.run(w, r, stream.Command{Type: stream.CommandStatus})
}

func (a *Api) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cmd stream.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, stream.Reply{Error: "decode command: " + err.Error()})
		return
	}
	a.run(w, r, cmd)
}

func (a *Api) run(w http.ResponseWriter, r *http.Request, cmd stream.Command) {
	ctx, cancel := context.WithTimeout(r.Context(), a.timeout)
	defer cancel()

	st, err := a.doer.Do(ctx, cmd)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, stream.Reply{Status: st})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, stream.ErrStopped):
		writeJSON(w, http.StatusServiceUnavailable, stream.Reply{Error: err.Error()})
	default:
		writeJSON(w, http.StatusBadRequest, stream.Reply{Status: st, Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
