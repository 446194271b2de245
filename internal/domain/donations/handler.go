package donations

import (
	"net/http"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Make a Donation"

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) {
	log = log.With(map[string]any{"module": "donations"})

	r.Get("/donate", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "donate", web.Page{Title: pageTitle})
	})
	r.Post("/donate", donateHandler(svc, rd, m, log))
}

func donateHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, 0); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		page := web.Page{Title: pageTitle, Form: web.FormValues(r)}

		var userID string
		if c, ok := middleware.GetClaims(r.Context()); ok {
			userID = c.UserID
		}

		d, err := svc.Donate(r.Context(), userID, DonateInput{
			DonorName:      r.PostFormValue("donor_name"),
			DonorEmail:     r.PostFormValue("donor_email"),
			DonorPhone:     r.PostFormValue("donor_phone"),
			Type:           r.PostFormValue("donation_type"),
			Amount:         r.PostFormValue("amount"),
			PaymentMethod:  r.PostFormValue("payment_method"),
			ProductDetails: r.PostFormValue("product_details"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("donation", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "donate", page)
				return
			}

			m.Submission("donation", metrics.OutcomeFailed)
			log.Error("donation insert failed", map[string]any{"err": err})
			page.Flashes = web.Danger("We encountered an error recording your donation. Please try again.")
			rd.Render(w, r, http.StatusInternalServerError, "donate", page)
			return
		}

		m.Submission("donation", metrics.OutcomeAccepted)
		log.Info("donation recorded", map[string]any{"donation_id": d.ID, "type": string(d.Type)})
		web.Redirect(w, r, "/donate", web.Flash{
			Category: web.FlashSuccess,
			Message:  "Thank you for your generous donation! Your contribution is greatly appreciated.",
		})
	}
}
