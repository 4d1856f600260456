package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fintrack/expense-service/internal/application"
	"github.com/fintrack/expense-service/internal/domain/entity"
	"github.com/fintrack/expense-service/internal/interface/middleware"
	"github.com/fintrack/expense-service/pkg/response"
	"github.com/fintrack/expense-service/pkg/validation"
)

type ExpenseHandler struct {
	Svc    *application.ExpenseService
	Logger *logrus.Logger
}

func NewExpenseHandler(svc *application.ExpenseService, logger *logrus.Logger) *ExpenseHandler {
	return &ExpenseHandler{Svc: svc, Logger: logger}
}

type expenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        entity.Date     `json:"date" binding:"required"`
}

func (r expenseRequest) input() application.ExpenseInput {
	return application.ExpenseInput{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
	}
}

func expensePayload(e *entity.Expense) gin.H {
	return gin.H{
		"id":          e.ID,
		"user_id":     e.UserID,
		"description": e.Description,
		"amount":      e.Amount,
		"date":        e.Date,
		"created_at":  e.CreatedAt,
		"updated_at":  e.UpdatedAt,
	}
}

// GET /api/expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	expenses, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(expenses))
	for i := range expenses {
		out = append(out, expensePayload(&expenses[i]))
	}
	response.Success(c, http.StatusOK, out, "expenses", gin.H{"count": len(out)})
}

// GET /api/expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	e, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, expensePayload(e), "expense", nil)
}

// POST /api/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	e, err := h.Svc.Create(c.Request.Context(), uid, req.input())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, expensePayload(e), "expense created", nil)
}

// PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	e, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), req.input())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, expensePayload(e), "expense updated", nil)
}

// DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) fail(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusBadRequest, "invalid expense payload", verr.Fields)
	case errors.Is(err, application.ErrExpenseNotFound):
		response.Error[any](c, http.StatusNotFound, "expense not found", nil)
	case errors.Is(err, application.ErrUserNotFound):
		// Principal has a valid token but no user row: server-side fault.
		if h.Logger != nil {
			h.Logger.WithError(err).Error("account lookup failed for authenticated principal")
		}
		response.Error[any](c, http.StatusInternalServerError, "account lookup failed", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("expense operation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
