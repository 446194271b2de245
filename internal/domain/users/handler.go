package users

import (
	"errors"
	"net/http"
	"time"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/validate"
	"animal-rescue-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// CookieOptions controla el cookie de sesión.
type CookieOptions struct {
	Name   string
	Secure bool
}

func RegisterRoutes(r chi.Router, svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger, co CookieOptions) {
	log = log.With(map[string]any{"module": "users"})

	r.Get("/register", registerPageHandler(rd))
	r.Post("/register", registerHandler(svc, rd, m, log))

	r.Get("/login", loginPageHandler(rd))
	r.Post("/login", loginHandler(svc, rd, m, log, co))

	r.Get("/logout", logoutHandler(svc, log, co))
	r.Post("/logout", logoutHandler(svc, log, co))
}

func registerPageHandler(rd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); ok {
			web.Redirect(w, r, "/dashboard", web.Flash{Category: web.FlashInfo, Message: "Already logged in."})
			return
		}
		rd.Render(w, r, http.StatusOK, "register", web.Page{Title: "Register"})
	}
}

func registerHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, 0); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		form := web.FormValues(r)
		page := web.Page{Title: "Register", Form: form}

		_, err := svc.Register(r.Context(), RegisterInput{
			Username:        r.PostFormValue("username"),
			Email:           r.PostFormValue("email"),
			Password:        r.PostFormValue("password"),
			ConfirmPassword: r.PostFormValue("confirm_password"),
		})
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("register", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "register", page)
				return
			}
			if errors.Is(err, ErrUserExists) {
				m.Submission("register", metrics.OutcomeInvalid)
				page.Flashes = web.Danger("Username or email already registered.")
				rd.Render(w, r, http.StatusConflict, "register", page)
				return
			}

			m.Submission("register", metrics.OutcomeFailed)
			log.Error("register failed", map[string]any{"err": err})
			page.Flashes = web.Danger("Registration failed due to a server error. Please try again.")
			rd.Render(w, r, http.StatusInternalServerError, "register", page)
			return
		}

		m.Submission("register", metrics.OutcomeAccepted)
		web.Redirect(w, r, "/login", web.Flash{Category: web.FlashSuccess, Message: "Registration successful! Please log in."})
	}
}

func loginPageHandler(rd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); ok {
			web.Redirect(w, r, "/dashboard", web.Flash{Category: web.FlashInfo, Message: "Already logged in."})
			return
		}
		rd.Render(w, r, http.StatusOK, "login", web.Page{
			Title: "Login",
			Data:  loginView{Next: r.URL.Query().Get("next")},
		})
	}
}

type loginView struct {
	Next string
}

func loginHandler(svc *Service, rd *web.Renderer, m *metrics.Metrics, log logger.Logger, co CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(w, r, 0); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		next := r.PostFormValue("next")
		if next == "" {
			next = r.URL.Query().Get("next")
		}
		page := web.Page{
			Title: "Login",
			Form:  web.FormValues(r),
			Data:  loginView{Next: next},
		}

		u, sess, err := svc.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
		if err != nil {
			if msgs, ok := validate.Messages(err); ok {
				m.Submission("login", metrics.OutcomeInvalid)
				page.Flashes = web.Danger(msgs...)
				rd.Render(w, r, http.StatusBadRequest, "login", page)
				return
			}
			if errors.Is(err, ErrInvalidCredentials) {
				m.Submission("login", metrics.OutcomeInvalid)
				page.Flashes = web.Danger("Invalid credentials.")
				rd.Render(w, r, http.StatusUnauthorized, "login", page)
				return
			}

			m.Submission("login", metrics.OutcomeFailed)
			log.Error("login failed", map[string]any{"err": err})
			page.Flashes = web.Danger("Login error.")
			rd.Render(w, r, http.StatusInternalServerError, "login", page)
			return
		}

		m.Submission("login", metrics.OutcomeAccepted)
		http.SetCookie(w, &http.Cookie{
			Name:     co.Name,
			Value:    sess.ID,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
			HttpOnly: true,
			Secure:   co.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		web.Redirect(w, r, web.SafeNext(next, "/dashboard"), web.Flash{
			Category: web.FlashSuccess,
			Message:  "Welcome back, " + u.Username + "!",
		})
	}
}

func logoutHandler(svc *Service, log logger.Logger, co CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, ok := middleware.GetClaims(r.Context()); ok {
			if err := svc.Logout(r.Context(), c.SessionID); err != nil {
				log.Warn("logout: delete session failed", map[string]any{"err": err, "user_id": c.UserID})
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     co.Name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   co.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		web.Redirect(w, r, "/", web.Flash{Category: web.FlashSuccess, Message: "You have been successfully logged out."})
	}
}
