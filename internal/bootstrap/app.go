package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"skillbridge/internal/applications"
	googleauth "skillbridge/internal/auth"
	"skillbridge/internal/jobs"
	"skillbridge/internal/match"
	"skillbridge/internal/profiles"
	"skillbridge/internal/server"
	"skillbridge/internal/shared/config"
	"skillbridge/internal/shared/sessions"
	"skillbridge/internal/shared/storage/db"
	"skillbridge/internal/shared/storage/object"
	localstore "skillbridge/internal/shared/storage/object/local"
	s3store "skillbridge/internal/shared/storage/object/s3"
	"skillbridge/internal/uploads"
	"skillbridge/internal/users"
)

// App holds the wired application.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Store    object.ObjectStore
	Sessions *sessions.Manager

	UsersRepo        users.Repo
	ProfilesRepo     profiles.Repo
	JobsRepo         jobs.Repo
	ApplicationsRepo applications.Repo

	UsersService        *users.Service
	ProfilesService     *profiles.Service
	JobsService         *jobs.Service
	ApplicationsService *applications.Service
	MatchService        *match.Service

	GoogleAuth *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if !isDevLike(cfg.Env) && strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Store:    store,
		Sessions: sessions.NewManager(cfg.JWTSecret),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		Sessions:     app.Sessions,
		Users:        users.NewHandler(app.UsersService, app.Sessions),
		Profiles:     profiles.NewHandler(app.ProfilesService),
		Jobs:         jobs.NewHandler(app.JobsService),
		Applications: applications.NewHandler(app.ApplicationsService),
		Uploads:      uploads.NewHandler(app.Store),
		Match:        match.NewHandler(app.MatchService),
		GoogleAuth:   app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
	} else {
		userRepo := users.NewMemoryRepo()
		profileRepo := profiles.NewMemoryRepo()
		app.UsersRepo = userRepo
		app.ProfilesRepo = profileRepo
		app.JobsRepo = jobs.NewMemoryRepo(profileRepo.GetRecruiterByID)
		app.ApplicationsRepo = applications.NewMemoryRepo(
			profileRepo.GetCandidateByID,
			func(ctx context.Context, userID string) (string, error) {
				user, err := userRepo.GetByID(ctx, userID)
				if err != nil {
					return "", err
				}
				return user.Email, nil
			},
		)
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.ProfilesService = profiles.NewService(app.ProfilesRepo)
	app.JobsService = jobs.NewService(app.JobsRepo)
	app.ApplicationsService = applications.NewService(app.ApplicationsRepo)

	scorer := match.NewHTTPScorer(app.Config.MatchEndpoint, app.Config.MatchTimeout)
	app.MatchService = match.NewService(scorer, app.Config.ResumeFetchTimeout)

	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
		app.Sessions,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
