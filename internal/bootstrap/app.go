package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/applications"
	"jobapp-backend/internal/assistant"
	googleauth "jobapp-backend/internal/auth"
	"jobapp-backend/internal/extract"
	"jobapp-backend/internal/generate"
	"jobapp-backend/internal/llm"
	"jobapp-backend/internal/llm/gemini"
	"jobapp-backend/internal/resumes"
	"jobapp-backend/internal/shared/config"
	"jobapp-backend/internal/shared/server"
	"jobapp-backend/internal/shared/storage/db"
	"jobapp-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	UsersRepo        users.Repo
	ResumesRepo      resumes.Repo
	ApplicationsRepo applications.Repo

	UsersService        *users.Service
	ResumesService      *resumes.Service
	ApplicationsService *applications.Service
	AssistantService    *assistant.Service

	UsersHandler        *users.Handler
	ResumesHandler      *resumes.Handler
	ApplicationsHandler *applications.Handler
	AssistantHandler    *assistant.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		UserHandler:      app.UsersHandler,
		ResumeHandler:    app.ResumesHandler,
		AppHandler:       app.ApplicationsHandler,
		AssistantHandler: app.AssistantHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
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
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	var userRepo users.Repo
	var resumeRepo resumes.Repo
	var appRepo applications.Repo

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		appRepo = &applications.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		appRepo = applications.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "gemini" && strings.TrimSpace(app.Config.GeminiAPIKey) != "" {
		geminiClient, err := gemini.NewClient(app.Config.GeminiAPIKey, app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = geminiClient
	}

	userSvc := users.NewService(userRepo)
	resumeSvc := resumes.NewService(resumeRepo)
	appSvc := applications.NewService(appRepo)
	assistantSvc := &assistant.Service{
		Users:        userSvc,
		Resumes:      resumeSvc,
		Applications: appSvc,
		Pipeline:     generate.NewPipeline(llmClient),
		Extract:      extract.BestEffortText,
	}

	app.UsersRepo = userRepo
	app.ResumesRepo = resumeRepo
	app.ApplicationsRepo = appRepo
	app.UsersService = userSvc
	app.ResumesService = resumeSvc
	app.ApplicationsService = appSvc
	app.AssistantService = assistantSvc
	app.UsersHandler = users.NewHandler(userSvc, historyAdapter{svc: assistantSvc})
	app.ResumesHandler = resumes.NewHandler(resumeSvc, extract.BestEffortText)
	app.ApplicationsHandler = applications.NewHandler(appSvc)
	app.AssistantHandler = assistant.NewHandler(assistantSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	return nil
}

// historyAdapter exposes the assistant's cached application history as the
// dashboard summaries the users handler wants.
type historyAdapter struct {
	svc *assistant.Service
}

func (a historyAdapter) Summaries(ctx context.Context, email string) ([]users.ApplicationSummary, error) {
	apps, err := a.svc.History(ctx, email, assistant.NewCache())
	if err != nil {
		return nil, err
	}
	out := make([]users.ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		out = append(out, users.ApplicationSummary{
			Company:            app.CompanyName,
			Role:               app.Role,
			Status:             app.Status,
			CreatedAt:          app.CreatedAt,
			HasResumeReview:    app.ResumeReview != nil,
			HasCoverLetter:     app.CoverLetter != nil,
			HasNetworkingEmail: app.NetworkingEmail != nil,
		})
	}
	return out, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "dev", "development", "local", "test":
		return true
	}
	return false
}

type requiredError string

func (e requiredError) Error() string { return string(e) }

const errDatabaseRequired = requiredError("DATABASE_URL is required")
