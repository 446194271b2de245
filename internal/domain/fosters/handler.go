package fosters

import (
	"errors"
	"net/http"

	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Foster a Pet"

type fosterPage struct {
	HomeTypes      []string
	YardOptions    []string
	FenceOptions   []string
	TransportOpts  []string
	PreferredKinds []string
}

var options = fosterPage{
	HomeTypes:      HomeTypes,
	YardOptions:    YardOptions,
	FenceOptions:   FenceOptions,
	TransportOpts:  TransportOpts,
	PreferredKinds: PreferredKinds,
}

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) {
	log = log.With(map[string]any{"module": "fosters"})

	r.Get("/foster", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "foster", web.Page{Title: pageTitle, Data: options})
	})
	r.Post("/foster", applyHandler(svc, rd, m, log))
}

func applyHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, 0); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r)
		page := web.Page{Title: pageTitle, Form: form, Data: options}

		f, err := svc.Apply(r.Context(), ApplyInput{
			Name:            form.Get("foster_name"),
			Email:           form.Get("foster_email"),
			Phone:           form.Get("foster_phone"),
			Address:         form.Get("foster_address"),
			HouseholdInfo:   form.Get("foster_household"),
			HomeType:        form.Get("foster_home_type"),
			HasYard:         form.Get("foster_has_yard"),
			YardFenced:      form.Get("foster_yard_fenced"),
			CanTransport:    form.Get("foster_can_transport"),
			PreferredAnimal: form["foster_preferred_animal"],
			Experience:      form.Get("foster_experience"),
			Why:             form.Get("foster_why"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("foster", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "foster", page)
				return
			}
			if errors.Is(err, ErrDuplicateEmail) {
				m.Submission("foster", metrics.OutcomeInvalid)
				page.Flashes = []web.Flash{{Category: web.FlashWarning, Message: "An application with this email address already exists."}}
				rd.Render(w, r, http.StatusConflict, "foster", page)
				return
			}

			m.Submission("foster", metrics.OutcomeFailed)
			log.Error("foster insert failed", map[string]any{"err": err})
			page.Flashes = web.Danger("An error occurred submitting your foster application due to a server error. Please try again.")
			rd.Render(w, r, http.StatusInternalServerError, "foster", page)
			return
		}

		m.Submission("foster", metrics.OutcomeAccepted)
		log.Info("foster application received", map[string]any{"foster_id": f.ID})
		web.Redirect(w, r, "/foster", web.Flash{
			Category: web.FlashSuccess,
			Message:  "Thank you for your interest in fostering! We will review your application and contact you soon.",
		})
	}
}
