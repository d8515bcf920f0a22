package room

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomreport/internal/model/message"
	"roomreport/pkg/utils"
)

// Lister enumerates rooms present in the message archive.
type Lister interface {
	ListRooms(ctx context.Context) ([]message.RoomSummary, error)
}

// Handler serves the room directory used by the report UI.
type Handler struct {
	rooms Lister
}

// New creates the room handler.
func New(rooms Lister) *Handler {
	return &Handler{rooms: rooms}
}

// RegisterRoutes registers the room endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/rooms", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListRooms(r.Context())
	if err != nil {
		log.Printf("[rooms] failed to list rooms: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to list rooms")
		return
	}

	if rooms == nil {
		rooms = []message.RoomSummary{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"rooms": rooms})
}
