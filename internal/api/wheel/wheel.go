package wheel

import (
	"errors"
	"fortune_wheel/internal/converter"
	"fortune_wheel/internal/middleware"
	"fortune_wheel/internal/service"
	wheelServ "fortune_wheel/internal/service/wheel"
	"fortune_wheel/pkg/resp"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv         service.WheelService
	SpinDuration time.Duration
	Log          *zap.Logger
}

type Handler struct {
	serv         service.WheelService
	spinDuration time.Duration
	log          *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:         deps.Serv,
		spinDuration: deps.SpinDuration,
		log:          deps.Log,
	}
}

// Spin принимает решение и отдает поворот для анимации
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session not found", http.StatusInternalServerError)
		return
	}

	decision, err := h.serv.Spin(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, wheelServ.ErrSpinInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.log.Error("spin failed", zap.Error(err))
		http.Error(w, "spin failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*decision, h.spinDuration))
}

// Complete вызывается фронтендом по окончании анимации
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session not found", http.StatusInternalServerError)
		return
	}

	result, err := h.serv.Complete(r.Context(), sessionID, chi.URLParam(r, "spinID"))
	if err != nil {
		if errors.Is(err, wheelServ.ErrSpinNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, wheelServ.ErrSpinInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.log.Error("spin completion failed", zap.Error(err))
		http.Error(w, "spin completion failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCompleteResponse(*result))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session not found", http.StatusInternalServerError)
		return
	}

	history, err := h.serv.History(r.Context(), sessionID)
	if err != nil {
		h.log.Error("read history failed", zap.Error(err))
		http.Error(w, "read history failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(history))
}

func (h *Handler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session not found", http.StatusInternalServerError)
		return
	}

	if err := h.serv.ResetHistory(r.Context(), sessionID); err != nil {
		h.log.Error("reset history failed", zap.Error(err))
		http.Error(w, "reset history failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Prizes(w http.ResponseWriter, r *http.Request) {
	prizes := h.serv.Prizes()
	n := len(prizes)

	response := converter.ToPrizesResponse(prizes, wheelServ.SectionAngle(n), func(i int) float64 {
		return wheelServ.TargetAngle(i, n)
	})

	resp.WriteJSONResponse(w, http.StatusOK, response)
}
