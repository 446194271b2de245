package rescues

import (
	"errors"
	"net/http"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/uploads"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Report Animal Sighting"

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger, maxUploadBytes int64) {
	log = log.With(map[string]any{"module": "rescues"})

	r.Get("/rescue", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "rescue", web.Page{Title: pageTitle, Data: AnimalTypes})
	})
	r.Post("/rescue", reportHandler(svc, rd, m, log, maxUploadBytes))
}

func reportHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := web.Page{Title: pageTitle, Data: AnimalTypes}

		if err := web.ParseForm(w, r, maxUploadBytes); err != nil {
			m.Submission("rescue", metrics.OutcomeInvalid)
			status, msg := http.StatusBadRequest, "Invalid form data."
			if web.IsTooLarge(err) {
				status, msg = http.StatusRequestEntityTooLarge, "The uploaded image is too large."
			}
			page.Flashes = web.Danger(msg)
			rd.Render(w, r, status, "rescue", page)
			return
		}
		page.Form = web.FormValues(r)

		var userID string
		if c, ok := middleware.GetClaims(r.Context()); ok {
			userID = c.UserID
		}

		rs, err := svc.Report(r.Context(), userID, ReportInput{
			AnimalType:       r.PostFormValue("animalType"),
			OtherAnimalType:  r.PostFormValue("otherAnimalType"),
			Location:         r.PostFormValue("location"),
			ConditionDetails: r.PostFormValue("condition_details"),
			Image:            uploads.FormFile(r, "animalImage"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("rescue", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "rescue", page)
				return
			}

			m.Submission("rescue", metrics.OutcomeFailed)
			if errors.Is(err, ErrImageUpload) {
				log.Error("rescue image save failed", map[string]any{"err": err})
				page.Flashes = web.Danger("Image upload failed due to a server error.")
			} else {
				log.Error("rescue insert failed", map[string]any{"err": err})
				page.Flashes = web.Danger("An error occurred while submitting the report due to a server error. Please try again.")
			}
			rd.Render(w, r, http.StatusInternalServerError, "rescue", page)
			return
		}

		m.Submission("rescue", metrics.OutcomeAccepted)
		log.Info("rescue reported", map[string]any{"rescue_id": rs.ID, "animal_type": rs.AnimalType})
		web.Redirect(w, r, "/rescue", web.Flash{
			Category: web.FlashSuccess,
			Message:  "Rescue report submitted successfully! Thank you for your help.",
		})
	}
}
