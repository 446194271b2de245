package animals

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

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger, maxUploadBytes int64) {
	log = log.With(map[string]any{"module": "animals"})

	r.Get("/adoption", adoptionPageHandler(svc, rd, log))
	r.Post("/post_animal", postAnimalHandler(svc, m, log, maxUploadBytes))
}

// AnimalView es lo que consumen los templates.
type AnimalView struct {
	Animal
	ImageURL string
}

// Views adjunta la URL pública de la imagen a cada animal.
func (s *Service) Views(items []Animal) []AnimalView {
	out := make([]AnimalView, 0, len(items))
	for _, a := range items {
		out = append(out, AnimalView{Animal: a, ImageURL: s.ImageURL(a)})
	}
	return out
}

type adoptionPage struct {
	Animals []AnimalView
}

func adoptionPageHandler(svc *Service, rd *web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := web.Page{Title: "Adopt an Animal"}

		items, err := svc.ListAvailable(r.Context())
		if err != nil {
			log.Error("list available animals failed", map[string]any{"err": err})
			page.Flashes = web.Danger("Could not load animals.")
		}
		page.Data = adoptionPage{Animals: svc.Views(items)}

		rd.Render(w, r, http.StatusOK, "adoption", page)
	}
}

// postAnimalHandler godoc
// @Summary Publicar un animal en adopción
// @Description Recibe el formulario multipart de publicación. Valida todos los campos y devuelve todos los errores juntos. La imagen es opcional (png, jpg, jpeg, gif). Requiere sesión iniciada.
// @Tags animals
// @Accept multipart/form-data
// @Produce json
// @Param animalName formData string true "Nombre"
// @Param animalType formData string true "Tipo (perro, gato, ...)"
// @Param animalAge formData number true "Edad en años, admite decimales"
// @Param animalDescription formData string true "Descripción"
// @Param animalImage formData file false "Foto del animal"
// @Success 200 {object} web.JSONResult
// @Failure 400 {object} web.JSONResult "errores de validación"
// @Failure 401 {object} web.JSONResult "sin sesión"
// @Failure 500 {object} web.JSONResult "error de base de datos o de disco"
// @Router /post_animal [post]
func postAnimalHandler(svc *Service, m *metrics.Metrics, log logger.Logger, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			web.JSONError(w, http.StatusUnauthorized, "Please log in to post.")
			return
		}

		if err := web.ParseForm(w, r, maxUploadBytes); err != nil {
			m.Submission("post_animal", metrics.OutcomeInvalid)
			if web.IsTooLarge(err) {
				web.JSONError(w, http.StatusRequestEntityTooLarge, "Uploaded file is too large.")
				return
			}
			web.JSONError(w, http.StatusBadRequest, "Invalid form data.")
			return
		}

		a, err := svc.Post(r.Context(), claims.UserID, PostInput{
			Name:        r.PostFormValue("animalName"),
			Type:        r.PostFormValue("animalType"),
			Age:         r.PostFormValue("animalAge"),
			Description: r.PostFormValue("animalDescription"),
			Image:       uploads.FormFile(r, "animalImage"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("post_animal", metrics.OutcomeInvalid)
				web.JSONError(w, http.StatusBadRequest, strings.Join(msgs, " "))
				return
			}

			m.Submission("post_animal", metrics.OutcomeFailed)
			if errors.Is(err, ErrImageUpload) {
				log.Error("post animal: image save failed", map[string]any{"err": err, "user_id": claims.UserID})
				web.JSONError(w, http.StatusInternalServerError, "Image upload failed due to a server error.")
				return
			}
			log.Error("post animal: insert failed", map[string]any{"err": err, "user_id": claims.UserID})
			web.JSONError(w, http.StatusInternalServerError, "Database error occurred during posting.")
			return
		}

		m.Submission("post_animal", metrics.OutcomeAccepted)
		log.Info("animal posted", map[string]any{"animal_id": a.ID, "user_id": claims.UserID})
		web.WriteJSON(w, http.StatusOK, web.JSONResult{
			Success:  true,
			Message:  "Animal posted successfully!",
			AnimalID: a.ID,
			ImageURL: svc.ImageURL(a),
		})
	}
}
