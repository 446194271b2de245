package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	mem "animal-rescue-portal/internal/adapters/storage/memory"
	pg "animal-rescue-portal/internal/adapters/storage/postgres"
	"animal-rescue-portal/internal/domain/adoptions"
	"animal-rescue-portal/internal/domain/animals"
	"animal-rescue-portal/internal/domain/contact"
	"animal-rescue-portal/internal/domain/dashboard"
	"animal-rescue-portal/internal/domain/donations"
	"animal-rescue-portal/internal/domain/fosters"
	"animal-rescue-portal/internal/domain/pages"
	"animal-rescue-portal/internal/domain/rescues"
	"animal-rescue-portal/internal/domain/users"
	"animal-rescue-portal/internal/domain/vaccinations"
	"animal-rescue-portal/internal/domain/volunteers"
	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/config"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/platform/uploads"
	"animal-rescue-portal/internal/platform/web"

	_ "animal-rescue-portal/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger     // nil => Nop
	Metrics *metrics.Metrics // nil => registry nuevo
}

// Router es el handler HTTP de la app más lo que el serve loop necesita.
type Router struct {
	chi.Router
	users *users.Service
}

// PurgeExpiredSessions lo llama periódicamente cmd/api.
func (rt *Router) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return rt.users.PurgeExpiredSessions(ctx)
}

type repos struct {
	users        users.Repository
	sessions     users.SessionRepository
	animals      animals.Repository
	adoptions    adoptions.Repository
	donations    donations.Repository
	rescues      rescues.Repository
	volunteers   volunteers.Repository
	fosters      fosters.Repository
	vaccinations vaccinations.Repository
	contact      contact.Repository
}

func postgresRepos(db *sql.DB) repos {
	u := pg.NewUsersRepo(db)
	return repos{
		users:        u,
		sessions:     u,
		animals:      pg.NewAnimalsRepo(db),
		adoptions:    pg.NewAdoptionsRepo(db),
		donations:    pg.NewDonationsRepo(db),
		rescues:      pg.NewRescuesRepo(db),
		volunteers:   pg.NewVolunteersRepo(db),
		fosters:      pg.NewFostersRepo(db),
		vaccinations: pg.NewVaccinationsRepo(db),
		contact:      pg.NewContactRepo(db),
	}
}

func memoryRepos() repos {
	u := mem.NewUserRepo()
	an := mem.NewAnimalRepo()
	return repos{
		users:        u,
		sessions:     u,
		animals:      an,
		adoptions:    mem.NewAdoptionRepo(an),
		donations:    mem.NewDonationRepo(),
		rescues:      mem.NewRescueRepo(),
		volunteers:   mem.NewVolunteerRepo(),
		fosters:      mem.NewFosterRepo(),
		vaccinations: mem.NewVaccinationRepo(),
		contact:      mem.NewContactRepo(),
	}
}

func NewRouter(opts Options) (*Router, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("router: config required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	rd, err := web.NewRenderer(log)
	if err != nil {
		return nil, err
	}

	files := uploads.NewStore(cfg.Uploads.Dir)
	if err := files.EnsureDirs(); err != nil {
		return nil, err
	}

	var rp repos
	if opts.DB != nil {
		rp = postgresRepos(opts.DB)
	} else {
		log.Warn("no database configured, using in-memory storage", nil)
		rp = memoryRepos()
	}

	// Services por módulo
	usersSvc := users.NewService(rp.users, rp.sessions, cfg.Session.TTL)
	animalsSvc := animals.NewService(rp.animals, files, cfg.Uploads.URLPrefix)
	adoptionsSvc := adoptions.NewService(rp.adoptions, animalsSvc, files)
	donationsSvc := donations.NewService(rp.donations)
	rescuesSvc := rescues.NewService(rp.rescues, files)
	volunteersSvc := volunteers.NewService(rp.volunteers)
	fostersSvc := fosters.NewService(rp.fosters)
	vaccinationsSvc := vaccinations.NewService(rp.vaccinations)
	contactSvc := contact.NewService(rp.contact)
	dashboardSvc := dashboard.NewService(animalsSvc, adoptionsSvc, donationsSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AuthContext(users.NewSessionVerifier(usersSvc), cfg.Session.CookieName))
	r.Use(middleware.RequestLogger(log, m))
	r.Use(middleware.Recover(log, rd.ServerError))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	prefix := strings.TrimRight(cfg.Uploads.URLPrefix, "/")
	r.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(files.PublicFS(uploads.PublicCategories...))))

	maxUpload := cfg.HTTP.MaxUploadBytes

	// Rutas por módulo
	pages.RegisterRoutes(r, rd)
	users.RegisterRoutes(r, usersSvc, rd, m, log, users.CookieOptions{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
	})
	animals.RegisterRoutes(r, animalsSvc, rd, m, log, maxUpload)
	adoptions.RegisterRoutes(r, adoptionsSvc, m, log, maxUpload)
	dashboard.RegisterRoutes(r, dashboardSvc, rd, log)
	donations.RegisterRoutes(r, donationsSvc, rd, m, log)
	rescues.RegisterRoutes(r, rescuesSvc, rd, m, log, maxUpload)
	volunteers.RegisterRoutes(r, volunteersSvc, rd, m, log)
	fosters.RegisterRoutes(r, fostersSvc, rd, m, log)
	vaccinations.RegisterRoutes(r, vaccinationsSvc, rd, m, log)
	contact.RegisterRoutes(r, contactSvc, rd, m, log)

	return &Router{Router: r, users: usersSvc}, nil
}
