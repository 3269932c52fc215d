package httpqueue

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jose-valero/gamejoin-queue-bot/internal/domain/queue"
)

// Lo implementa internal/app/service.QueueService
type QueueAPI interface {
	Draw(ctx context.Context, guildID string, count int) (queue.Round, error)
	List(guildID string) []queue.Entry
	Stats(guildID string) queue.Stats
}

const SecretHeader = "X-Queue-Secret"

type Server struct {
	secret string // vacío = POST deshabilitado
	queue  QueueAPI
	mux    *http.ServeMux
}

func New(secret string, q QueueAPI) *Server {
	s := &Server{secret: secret, queue: q, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /guilds/{guildID}/draw", s.handleDraw)
	s.mux.HandleFunc("GET /guilds/{guildID}/queue", s.handleQueue)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

func (s *Server) Handler() http.Handler { return s.mux }

type drawResponse struct {
	Guild     string   `json:"guild"`
	Round     int      `json:"round"`
	Requested int      `json:"requested"`
	Winners   []string `json:"winners"`
}

type entryJSON struct {
	Position      int        `json:"position"`
	ID            string     `json:"id"`
	PickCount     int        `json:"pick_count"`
	WaitCount     int        `json:"wait_count"`
	Weight        float64    `json:"weight"`
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
}

type queueResponse struct {
	Guild           string      `json:"guild"`
	Size            int         `json:"size"`
	TotalDrawRounds int         `json:"total_draw_rounds"`
	Entries         []entryJSON `json:"entries"`
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	if s.secret == "" || r.Header.Get(SecretHeader) != s.secret {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	guildID := r.PathValue("guildID")

	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = n
	}

	round, err := s.queue.Draw(r.Context(), guildID, count)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("[http] draw guild=%s: %v", guildID, err)
		}
		writeError(w, status, err.Error())
		return
	}
	log.Printf("[http] draw guild=%s round=%d winners=%d", guildID, round.Number, len(round.Winners))
	writeJSON(w, http.StatusOK, drawResponse{
		Guild:     guildID,
		Round:     round.Number,
		Requested: round.Requested,
		Winners:   round.Winners,
	})
}

func (s *Server) handleQueue(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("guildID")
	entries := s.queue.List(guildID)
	st := s.queue.Stats(guildID)

	out := queueResponse{
		Guild:           guildID,
		Size:            len(entries),
		TotalDrawRounds: st.TotalDrawRounds,
		Entries:         make([]entryJSON, 0, len(entries)),
	}
	for _, e := range entries {
		ej := entryJSON{
			Position:  e.Position,
			ID:        e.ID,
			PickCount: e.PickCount,
			WaitCount: e.WaitCount,
			Weight:    e.Weight,
		}
		if e.HasCooldown() {
			cu := e.CooldownUntil.UTC()
			ej.CooldownUntil = &cu
		}
		out.Entries = append(out.Entries, ej)
	}
	writeJSON(w, http.StatusOK, out)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, queue.ErrInvalidCount):
		return http.StatusBadRequest
	case errors.Is(err, queue.ErrEmptyQueue):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Start bloquea hasta que ctx se cancela y luego apaga el server.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("🌐 HTTP listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	}
}
