package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/expense-service/internal/container"
	"github.com/fintrack/expense-service/internal/domain/entity"
	handlers "github.com/fintrack/expense-service/internal/interface/http"
	"github.com/fintrack/expense-service/internal/interface/middleware"
	"github.com/fintrack/expense-service/pkg/helpers"
)

// ExpenseModule wires the owner-scoped expense CRUD routes under
// /api/expenses. Every route requires an authenticated caller holding the
// user or admin role.
type ExpenseModule struct {
	Handler *handlers.ExpenseHandler
	JWT     *helpers.JWTManager
}

func NewExpenseModule(h *handlers.ExpenseHandler, jwt *helpers.JWTManager) *ExpenseModule {
	return &ExpenseModule{Handler: h, JWT: jwt}
}

func (m *ExpenseModule) Register(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	expenses.Use(
		middleware.Auth(container.GetRedis(), m.JWT),
		middleware.RequireRoles(entity.RoleUser, entity.RoleAdmin),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		expenses.GET("", m.Handler.List)
		expenses.GET("/:id", m.Handler.Get)
		expenses.POST("", m.Handler.Create)
		expenses.PUT("/:id", m.Handler.Update)
		expenses.DELETE("/:id", m.Handler.Delete)
	}
}
