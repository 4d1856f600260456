package router

import (
	"github.com/fintrack/expense-service/internal/application"
	"github.com/fintrack/expense-service/internal/container"
	pginfra "github.com/fintrack/expense-service/internal/infrastructure/postgres"
	handlers "github.com/fintrack/expense-service/internal/interface/http"
	"github.com/fintrack/expense-service/internal/router/modules"
)

// InitModules constructs the repositories, services, and handlers from the
// container singletons and registers every feature module.
// Called once during application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	roles := pginfra.NewRoleRepository(pool)
	expenses := pginfra.NewExpenseRepository(pool)

	authSvc := application.NewAuthService(users, roles, container.GetJWT(), container.GetRedis(), logger)
	expenseSvc := application.NewExpenseService(users, expenses, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	expenseHandler := handlers.NewExpenseHandler(expenseSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewExpenseModule(expenseHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
