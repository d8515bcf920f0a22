package report

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomreport/internal/model/message"
	reportModel "roomreport/internal/model/report"
	reportService "roomreport/internal/service/report"
	"roomreport/pkg/utils"
)

// Handler serves report generation requests.
type Handler struct {
	reportSvc *reportService.Service
}

// New creates the report handler.
func New(reportSvc *reportService.Service) *Handler {
	return &Handler{reportSvc: reportSvc}
}

// RegisterRoutes registers the report endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/report", h.handleGenerate)
}

type reportResponse struct {
	Report       string            `json:"report"`
	MessagesUsed []message.Message `json:"messagesUsed,omitempty"`
	MessageCount int               `json:"messageCount,omitempty"`
	Period       string            `json:"period,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := reportModel.Request{
		RoomID:   query.Get("room_id"),
		Period:   reportModel.Period(query.Get("period")),
		Language: reportModel.Language(query.Get("language")),
	}
	if req.Period == "" {
		req.Period = reportModel.DefaultPeriod
	}
	if req.Language == "" {
		req.Language = reportModel.DefaultLanguage
	}

	result, err := h.reportSvc.Generate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportService.ErrMissingRoomID):
			utils.RespondError(w, http.StatusBadRequest, "Missing room_id parameter")
		case errors.Is(err, reportService.ErrFetchMessages):
			utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch messages")
		case errors.Is(err, reportService.ErrNotConfigured):
			utils.RespondError(w, http.StatusInternalServerError, "AI service not configured")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Failed to generate report")
		}
		return
	}

	if result.MessageCount == 0 {
		utils.RespondJSON(w, http.StatusOK, reportResponse{Report: result.Report})
		return
	}

	utils.RespondJSON(w, http.StatusOK, reportResponse{
		Report:       result.Report,
		MessagesUsed: result.Messages,
		MessageCount: result.MessageCount,
		Period:       result.PeriodLabel,
	})
}
