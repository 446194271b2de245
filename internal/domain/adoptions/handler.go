package adoptions

import (
	"errors"
	"net/http"
	"strings"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/uploads"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics, log logger.Logger, maxUploadBytes int64) {
	log = log.With(map[string]any{"module": "adoptions"})

	r.Post("/submit_adoption/{animalID}", submitAdoptionHandler(svc, m, log, maxUploadBytes))
	r.Post("/process_adoption", processAdoptionHandler(svc, m, log))
}

// submitAdoptionHandler godoc
// @Summary Solicitar la adopción de un animal
// @Description Recibe el formulario multipart con los datos del adoptante, su foto (png, jpg, jpeg, gif) y un comprobante de identidad (imagen o pdf). El animal debe existir y estar Available. Requiere sesión iniciada.
// @Tags adoptions
// @Accept multipart/form-data
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param adopterName formData string true "Nombre completo"
// @Param adopterEmail formData string true "Email"
// @Param adopterPhoto formData file true "Foto del adoptante"
// @Param adopterIdProof formData file true "Comprobante de identidad"
// @Success 200 {object} web.JSONResult
// @Failure 400 {object} web.JSONResult "errores de validación"
// @Failure 401 {object} web.JSONResult "sin sesión"
// @Failure 404 {object} web.JSONResult "animal inexistente"
// @Failure 409 {object} web.JSONResult "animal no disponible"
// @Failure 500 {object} web.JSONResult "error de disco o base de datos"
// @Router /submit_adoption/{animalID} [post]
func submitAdoptionHandler(svc *Service, m *metrics.Metrics, log logger.Logger, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			web.JSONError(w, http.StatusUnauthorized, "Please log in to submit an adoption request.")
			return
		}

		if err := web.ParseForm(w, r, maxUploadBytes); err != nil {
			m.Submission("adoption_request", metrics.OutcomeInvalid)
			if web.IsTooLarge(err) {
				web.JSONError(w, http.StatusRequestEntityTooLarge, "Uploaded files are too large.")
				return
			}
			web.JSONError(w, http.StatusBadRequest, "Invalid form data.")
			return
		}

		animalID := chi.URLParam(r, "animalID")
		ad, err := svc.Submit(r.Context(), claims.UserID, animalID, SubmitInput{
			AdopterName:  r.PostFormValue("adopterName"),
			AdopterEmail: r.PostFormValue("adopterEmail"),
			Photo:        uploads.FormFile(r, "adopterPhoto"),
			IDProof:      uploads.FormFile(r, "adopterIdProof"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("adoption_request", metrics.OutcomeInvalid)
				status := http.StatusBadRequest
				switch {
				case errors.Is(err, ErrAnimalNotFound):
					status = http.StatusNotFound
				case errors.Is(err, ErrAnimalUnavailable):
					status = http.StatusConflict
				}
				web.JSONError(w, status, strings.Join(msgs, " "))
				return
			}

			m.Submission("adoption_request", metrics.OutcomeFailed)
			fields := map[string]any{"err": err, "user_id": claims.UserID, "animal_id": animalID}
			if errors.Is(err, ErrFileStorage) {
				log.Error("submit adoption: file save failed", fields)
				web.JSONError(w, http.StatusInternalServerError, "Could not process file uploads due to a server directory issue.")
				return
			}
			log.Error("submit adoption: insert failed", fields)
			web.JSONError(w, http.StatusInternalServerError, "A database error occurred while saving your request. Please try again.")
			return
		}

		m.Submission("adoption_request", metrics.OutcomeAccepted)
		log.Info("adoption requested", map[string]any{"adoption_id": ad.ID, "animal_id": ad.AnimalID, "user_id": claims.UserID})
		web.WriteJSON(w, http.StatusOK, web.JSONResult{
			Success: true,
			Message: "Adoption request submitted successfully! We will contact you soon.",
		})
	}
}

// processAdoptionHandler godoc
// @Summary Aceptar o rechazar una solicitud de adopción
// @Description Sólo quien publicó el animal puede procesar sus solicitudes. Aceptar marca el animal como Adopted y el resto de solicitudes pendientes como Unavailable en una sola transacción. Rechazar sólo aplica a solicitudes Pending.
// @Tags adoptions
// @Accept x-www-form-urlencoded
// @Produce json
// @Param adoption_id formData string true "ID de la solicitud"
// @Param action formData string true "accept o reject" Enums(accept, reject)
// @Success 200 {object} web.JSONResult
// @Failure 400 {object} web.JSONResult "datos inválidos"
// @Failure 401 {object} web.JSONResult "sin sesión"
// @Failure 403 {object} web.JSONResult "no es el dueño del animal"
// @Failure 404 {object} web.JSONResult "solicitud inexistente"
// @Failure 409 {object} web.JSONResult "animal no disponible o solicitud ya procesada"
// @Failure 500 {object} web.JSONResult "error de base de datos"
// @Router /process_adoption [post]
func processAdoptionHandler(svc *Service, m *metrics.Metrics, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			web.JSONError(w, http.StatusUnauthorized, "Authentication required.")
			return
		}

		if err := web.ParseForm(w, r, 0); err != nil {
			web.JSONError(w, http.StatusBadRequest, "Invalid data provided.")
			return
		}

		adoptionID := r.PostFormValue("adoption_id")
		action := Action(strings.ToLower(strings.TrimSpace(r.PostFormValue("action"))))

		err := svc.Process(r.Context(), claims.UserID, adoptionID, action)
		if err != nil {
			status, msg := processErrorResponse(err)
			if status == http.StatusInternalServerError {
				m.Submission("adoption_decision", metrics.OutcomeFailed)
				log.Error("process adoption failed", map[string]any{"err": err, "adoption_id": adoptionID, "user_id": claims.UserID})
			} else {
				m.Submission("adoption_decision", metrics.OutcomeInvalid)
			}
			web.JSONError(w, status, msg)
			return
		}

		m.Submission("adoption_decision", metrics.OutcomeAccepted)
		log.Info("adoption processed", map[string]any{"adoption_id": adoptionID, "action": string(action), "user_id": claims.UserID})

		msg := "Adoption rejected."
		if action == ActionAccept {
			msg = "Adoption accepted! Other pending requests marked as unavailable."
		}
		web.WriteJSON(w, http.StatusOK, web.JSONResult{Success: true, Message: msg})
	}
}

func processErrorResponse(err error) (int, string) {
	var se *AnimalStatusError
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "Invalid data provided."
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Adoption request not found."
	case errors.Is(err, ErrAnimalNotFound):
		return http.StatusNotFound, "Cannot process, animal record missing."
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "You are not authorized to process this request."
	case errors.As(err, &se):
		return http.StatusConflict, se.Error()
	case errors.Is(err, ErrAlreadyAccepted):
		return http.StatusConflict, "Another request for this animal has just been accepted."
	case errors.Is(err, ErrNotPending):
		return http.StatusConflict, "Only pending requests can be rejected."
	default:
		return http.StatusInternalServerError, "Database error occurred processing request."
	}
}
