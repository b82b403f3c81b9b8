package handlers

import (
	"net/http"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/income", h.listIncome)
		transactions.GET("/expenses", h.listExpenses)
		transactions.POST("/income", h.createIncome)
		transactions.POST("/expenses", h.createExpense)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a filtered page of the user's transactions, newest first
// @Tags transactions
// @Produce json
// @Param type query string false "Filter by kind (income or expense)"
// @Param category query string false "Filter by category"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.Envelope{data=dto.ListTransactionsResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	h.list(c, "")
}

// listIncome godoc
// @Summary List income transactions
// @Description Retrieves a filtered page of the user's income transactions, newest first
// @Tags transactions
// @Produce json
// @Param category query string false "Filter by category"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.Envelope{data=dto.ListTransactionsResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions/income [get]
func (h *transactionHandler) listIncome(c *gin.Context) {
	h.list(c, domain.Income)
}

// listExpenses godoc
// @Summary List expense transactions
// @Description Retrieves a filtered page of the user's expense transactions, newest first
// @Tags transactions
// @Produce json
// @Param category query string false "Filter by category"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.Envelope{data=dto.ListTransactionsResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions/expenses [get]
func (h *transactionHandler) listExpenses(c *gin.Context) {
	h.list(c, domain.Expense)
}

func (h *transactionHandler) list(c *gin.Context, fixedKind domain.TransactionKind) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	if fixedKind != "" {
		params.Kind = string(fixedKind)
	}

	transactions, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	resp := dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}
	c.JSON(http.StatusOK, dto.OKCount(resp, len(resp.Transactions)))
}

// createIncome godoc
// @Summary Record an income transaction
// @Description Persists a new income transaction for the user
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Envelope{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions/income [post]
func (h *transactionHandler) createIncome(c *gin.Context) {
	h.createTransaction(c, domain.Income)
}

// createExpense godoc
// @Summary Record an expense transaction
// @Description Persists a new expense transaction for the user
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Envelope{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions/expenses [post]
func (h *transactionHandler) createExpense(c *gin.Context) {
	h.createTransaction(c, domain.Expense)
}

func (h *transactionHandler) createTransaction(c *gin.Context, kind domain.TransactionKind) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(*created)))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves a single transaction owned by the user
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Envelope{data=dto.TransactionResponse}
// @Failure 401 {object} dto.ErrorEnvelope
// @Failure 404 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(*txn)))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update to a transaction owned by the user
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Failure 404 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(*updated)))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction owned by the user
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Failure 404 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "Transaction deleted"}))
}
