// Package pages sirve las páginas estáticas del sitio.
package pages

import (
	"net/http"

	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// Resource es un enlace de la página educativa.
type Resource struct {
	Title   string
	Summary string
}

// Resources agrupados por tema, en el orden en que se muestran.
var Resources = []struct {
	Topic string
	Items []Resource
}{
	{
		Topic: "Before You Adopt",
		Items: []Resource{
			{"Is a pet right for you?", "Time, space, budget and the long-term commitment of caring for an animal."},
			{"Choosing the right match", "Energy level, size and temperament matter more than looks."},
		},
	},
	{
		Topic: "Health & Care",
		Items: []Resource{
			{"Vaccination schedule", "Core vaccines for puppies and kittens and when to book boosters."},
			{"Spay & neuter", "Why it matters and when it is usually done."},
			{"Nutrition basics", "Feeding by age and size, and foods to keep away from pets."},
		},
	},
	{
		Topic: "Helping Strays",
		Items: []Resource{
			{"Found an animal?", "Keep a safe distance, take a photo and report the location."},
			{"Fostering 101", "What a foster home provides and how the shelter supports you."},
		},
	},
}

func RegisterRoutes(r chi.Router, rd *web.Renderer) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "index", web.Page{Title: "Home"})
	})
	r.Get("/educational", func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "educational", web.Page{
			Title: "Pet Care & Adoption Resources",
			Data:  Resources,
		})
	})

	r.NotFound(rd.NotFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusMethodNotAllowed, "404", web.Page{Title: "Page Not Found"})
	})
}
