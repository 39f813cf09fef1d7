package router

import (
	userapp "github.com/mindfuly/mindfuly/internal/application"
	"github.com/mindfuly/mindfuly/internal/container"
	repouser "github.com/mindfuly/mindfuly/internal/domain/repository"
	pginfra "github.com/mindfuly/mindfuly/internal/infrastructure/postgres"
	handlers "github.com/mindfuly/mindfuly/internal/interface/http"
	"github.com/mindfuly/mindfuly/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := &userapp.Service{
		Repo:         repo,
		JWT:          container.GetJWT(),
		Redis:        container.GetRedis(),
		Logger:       container.GetLogger(),
		Pub:          container.GetRabbitPub(),
		MailEnabled:  cfg.MailSendEnabled,
		ES:           container.GetES(),
		ESUsersIndex: cfg.ESUsersIndex,
		GCS:          container.GetGCS(),
		GCSBucket:    cfg.GCSBucket,
	}
	return UserModuleDeps{Repo: repo, Service: service}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	deps := buildUserDeps()

	usersHandler := handlers.NewUsersHandler(deps.Repo, logger)
	authHandler := handlers.NewAuthHandler(deps.Service, logger, cfg.CookieDomain, cfg.CookieSecure)
	adminHandler := handlers.NewAdminHandler(deps.Repo, deps.Service, logger)

	wellnessSvc := userapp.NewWellnessService(container.GetWellness(), container.GetRedis(), logger)
	wellnessHandler := handlers.NewWellnessHandler(wellnessSvc, logger)

	r.AddRoot(modules.NewUsersModule(usersHandler))
	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewWellnessModule(wellnessHandler, container.GetJWT()))
	r.Add(modules.NewAdminModule(adminHandler, container.GetJWT()))
	r.Add(modules.NewDebugModule())
}
