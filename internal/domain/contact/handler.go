package contact

import (
	"net/http"

	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Contact Us"

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) {
	log = log.With(map[string]any{"module": "contact"})

	r.Get("/contact", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "contact", web.Page{Title: pageTitle})
	})
	r.Post("/contact", sendHandler(svc, rd, m, log))
}

func sendHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, 0); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r)
		page := web.Page{Title: pageTitle, Form: form}

		msg, err := svc.Send(r.Context(), SendInput{
			Name:    form.Get("contact_name"),
			Email:   form.Get("contact_email"),
			Subject: form.Get("contact_subject"),
			Message: form.Get("contact_message"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("contact", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "contact", page)
				return
			}

			m.Submission("contact", metrics.OutcomeFailed)
			log.Error("contact insert failed", map[string]any{"err": err})
			page.Flashes = web.Danger("Sorry, there was an error submitting your message due to a server issue. Please try again later.")
			rd.Render(w, r, http.StatusInternalServerError, "contact", page)
			return
		}

		m.Submission("contact", metrics.OutcomeAccepted)
		log.Info("contact message stored", map[string]any{"message_id": msg.ID})
		web.Redirect(w, r, "/contact", web.Flash{
			Category: web.FlashSuccess,
			Message:  "Thank you for your message! We have received it and will get back to you soon.",
		})
	}
}
