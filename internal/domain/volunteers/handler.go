package volunteers

import (
	"errors"
	"net/http"

	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Volunteer With Us"

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) {
	log = log.With(map[string]any{"module": "volunteers"})

	r.Get("/volunteer", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "volunteer", web.Page{Title: pageTitle, Data: Interests})
	})
	r.Post("/volunteer", applyHandler(svc, rd, m, log))
}

func applyHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, 0); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r)
		page := web.Page{Title: pageTitle, Form: form, Data: Interests}

		v, err := svc.Apply(r.Context(), ApplyInput{
			Name:         form.Get("volunteer_name"),
			Email:        form.Get("volunteer_email"),
			Phone:        form.Get("volunteer_phone"),
			Address:      form.Get("volunteer_address"),
			DateOfBirth:  form.Get("volunteer_dob"),
			Availability: form.Get("volunteer_availability"),
			Interests:    form["volunteer_interests"],
			Experience:   form.Get("volunteer_experience"),
			Why:          form.Get("volunteer_why"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("volunteer", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "volunteer", page)
				return
			}
			if errors.Is(err, ErrDuplicateEmail) {
				m.Submission("volunteer", metrics.OutcomeInvalid)
				page.Flashes = []web.Flash{{
					Category: web.FlashWarning,
					Message:  "An application with this email address already exists. Please contact us if you need to update your information.",
				}}
				rd.Render(w, r, http.StatusConflict, "volunteer", page)
				return
			}

			m.Submission("volunteer", metrics.OutcomeFailed)
			log.Error("volunteer insert failed", map[string]any{"err": err})
			page.Flashes = web.Danger("An error occurred submitting your application due to a server error. Please try again.")
			rd.Render(w, r, http.StatusInternalServerError, "volunteer", page)
			return
		}

		m.Submission("volunteer", metrics.OutcomeAccepted)
		log.Info("volunteer application received", map[string]any{"volunteer_id": v.ID})
		web.Redirect(w, r, "/volunteer", web.Flash{
			Category: web.FlashSuccess,
			Message:  "Thank you for applying to volunteer! We will review your application and be in touch.",
		})
	}
}
