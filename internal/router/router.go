package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	jf "pet-adoption-portal/internal/adapters/storage/jsonfile"
	mem "pet-adoption-portal/internal/adapters/storage/memory"
	pg "pet-adoption-portal/internal/adapters/storage/postgres"
	"pet-adoption-portal/internal/domain/applications"
	"pet-adoption-portal/internal/domain/appointments"
	"pet-adoption-portal/internal/domain/favorites"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/domain/quiz"
	"pet-adoption-portal/internal/domain/users"
	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/logger"
	"pet-adoption-portal/internal/platform/web"
	"pet-adoption-portal/internal/ports/auth"

	_ "pet-adoption-portal/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: X-Debug-User-ID)
	TokenIssuer  auth.TokenIssuer  // requerido si se usan las rutas /auth con verifier real

	// Selección de storage, en orden: DB, DataDir, in-memory.
	DB      *sql.DB
	DataDir string

	Logger logger.Logger

	// Rate limit para register/login. Nil => sin límite (tests).
	RateLimiter *middleware.RateLimiter
}

type repos struct {
	pets         pets.Repository
	applications applications.Repository
	favorites    favorites.Repository
	appointments appointments.Repository
	quiz         quiz.Repository
	users        users.Repository
}

func NewRouter(opts Options) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	rp, err := buildRepos(opts)
	if err != nil {
		return nil, err
	}

	// Services por módulo
	petsSvc := pets.NewService(rp.pets)
	quizSvc := quiz.NewService(rp.quiz, rp.pets)
	appsSvc := applications.NewService(rp.applications, petsSvc)
	favsSvc := favorites.NewService(rp.favorites)
	apptsSvc := appointments.NewService(rp.appointments)
	usersSvc := users.NewService(rp.users, opts.TokenIssuer)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler)

		pets.RegisterRoutes(api, petsSvc)
		quiz.RegisterRoutes(api, quizSvc)
		applications.RegisterRoutes(api, appsSvc)
		favorites.RegisterRoutes(api, favsSvc)
		appointments.RegisterRoutes(api, apptsSvc)
		users.RegisterRoutes(api, usersSvc, opts.RateLimiter)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r, nil
}

// buildRepos elige el adapter: DB explícita o por env, luego directorio de
// datos, y si no hay nada, in-memory (dev).
func buildRepos(opts Options) (repos, error) {
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		return repos{
			pets:         pg.NewPetsRepo(db),
			applications: pg.NewApplicationsRepo(db),
			favorites:    pg.NewFavoritesRepo(db),
			appointments: pg.NewAppointmentsRepo(db),
			quiz:         pg.NewQuizRepo(db),
			users:        pg.NewUsersRepo(db),
		}, nil
	}

	if opts.DataDir != "" {
		store, err := jf.NewStore(opts.DataDir)
		if err != nil {
			return repos{}, err
		}
		return repos{
			pets:         jf.NewPetsRepo(store),
			applications: jf.NewApplicationsRepo(store),
			favorites:    jf.NewFavoritesRepo(store),
			appointments: jf.NewAppointmentsRepo(store),
			quiz:         jf.NewQuizRepo(store),
			users:        jf.NewUsersRepo(store),
		}, nil
	}

	return repos{
		pets:         mem.NewPetsRepo(),
		applications: mem.NewApplicationsRepo(),
		favorites:    mem.NewFavoritesRepo(),
		appointments: mem.NewAppointmentsRepo(),
		quiz:         mem.NewQuizRepo(),
		users:        mem.NewUsersRepo(),
	}, nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	web.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
