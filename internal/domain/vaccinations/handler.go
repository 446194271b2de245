package vaccinations

import (
	"net/http"

	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const pageTitle = "Schedule Vaccination"

type vaccinationPage struct {
	TimeSlots []string
}

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) {
	log = log.With(map[string]any{"module": "vaccinations"})

	r.Get("/vaccination", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "vaccination", web.Page{
			Title: pageTitle,
			Data:  vaccinationPage{TimeSlots: TimeSlots},
		})
	})
	r.Post("/vaccination", scheduleHandler(svc, rd, m, log))
}

func scheduleHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, 0); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r)
		page := web.Page{
			Title: pageTitle,
			Form:  form,
			Data:  vaccinationPage{TimeSlots: TimeSlots},
		}

		a, err := svc.Schedule(r.Context(), ScheduleInput{
			OwnerName: form.Get("owner_name"),
			PetName:   form.Get("pet_name"),
			PetType:   form.Get("pet_type"),
			Date:      form.Get("appointment_date"),
			TimeSlot:  form.Get("appointment_time"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("vaccination", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "vaccination", page)
				return
			}

			m.Submission("vaccination", metrics.OutcomeFailed)
			log.Error("vaccination insert failed", map[string]any{"err": err})
			page.Flashes = web.Danger("There was an error booking the appointment. Please try again.")
			rd.Render(w, r, http.StatusInternalServerError, "vaccination", page)
			return
		}

		m.Submission("vaccination", metrics.OutcomeAccepted)
		log.Info("vaccination requested", map[string]any{"appointment_id": a.ID})
		web.Redirect(w, r, "/vaccination", web.Flash{Category: web.FlashSuccess, Message: a.Confirmation()})
	}
}
