package dashboard

import (
	"net/http"
	"net/url"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

type dashboardPage struct {
	Dashboard
	Username string
	Error    string
}

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, log logger.Logger) {
	log = log.With(map[string]any{"module": "dashboard"})

	r.Get("/dashboard", dashboardHandler(svc, rd, log))
}

func dashboardHandler(svc *Service, rd *web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			web.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), web.Flash{
				Category: web.FlashWarning,
				Message:  "Please log in to view the dashboard.",
			})
			return
		}

		page := web.Page{Title: "Dashboard"}
		d, err := svc.Load(r.Context(), claims.UserID)
		view := dashboardPage{Dashboard: d, Username: claims.Username}
		if err != nil {
			log.Error("dashboard load incomplete", map[string]any{"err": err, "user_id": claims.UserID})
			page.Flashes = web.Danger("Error loading dashboard data. Some information may be missing.")
			view.Error = "Failed to load complete dashboard data due to a database error."
		}
		page.Data = view

		rd.Render(w, r, http.StatusOK, "dashboard", page)
	}
}
