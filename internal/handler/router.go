package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	reporthandler "roomreport/internal/handler/report"
	roomhandler "roomreport/internal/handler/room"
	middlewarePkg "roomreport/internal/middleware"
	reportservice "roomreport/internal/service/report"
	"roomreport/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(reportSvc *reportservice.Service, rooms roomhandler.Lister, db *sql.DB) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	reporthandler.New(reportSvc).RegisterRoutes(r)
	roomhandler.New(rooms).RegisterRoutes(r)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if db != nil {
			if err := db.PingContext(req.Context()); err != nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
