package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Azurakun/money-manager/linkage"
	"github.com/Azurakun/money-manager/models"
	"github.com/Azurakun/money-manager/store"
)

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/transactions", listTransactionsHandler)
	api.POST("/transactions", createTransactionHandler)
	api.DELETE("/transactions/:id", deleteTransactionHandler)
	api.GET("/tags", tagsHandler)
	api.GET("/debts", listDebtsHandler)
	api.POST("/debts", createDebtHandler)
	api.PUT("/debts/:id", updateDebtHandler)
	api.PUT("/debts/:id/toggle", toggleDebtHandler)
	api.DELETE("/debts/:id", deleteDebtHandler)
	api.GET("/rates", ratesHandler)
	r.GET("/healthz", healthHandler)
}

// parseID reads the :id route param. A non-numeric id can never resolve to
// a record, so it maps to not-found rather than bad-request.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// writeError maps the store/linkage error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var verr *store.ValidationError
	var pf *linkage.PartialFailure
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &pf):
		// the debt exists without its mirror: hand back enough to reconcile
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "debt created but linked transaction failed",
			"debt_id": pf.DebtID,
			"cause":   pf.Unwrap().Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseTags accepts either an array of strings or a single CSV string, the
// two shapes the client has historically sent.
func parseTags(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return cleanTags(list), nil
	}
	var csv string
	if err := json.Unmarshal(raw, &csv); err != nil {
		return nil, err
	}
	return cleanTags(strings.Split(csv, ",")), nil
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseDate accepts RFC3339 or a bare yyyy-mm-dd (what date inputs send).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func listTransactionsHandler(c *gin.Context) {
	// unknown query keys are simply never read, so they are ignored
	opts := store.TransactionListOptions{
		Type:   c.Query("type"),
		Tag:    c.Query("tag"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}
	items, err := txStore.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func createTransactionHandler(c *gin.Context) {
	var req struct {
		Description string          `json:"description" binding:"required"`
		Amount      decimal.Decimal `json:"amount" binding:"required"`
		Type        string          `json:"type" binding:"required"`
		Tags        json.RawMessage `json:"tags"`
		Date        string          `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tags, err := parseTags(req.Tags)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tags must be an array or a comma-separated string"})
		return
	}
	tx := models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		Tags:        tags,
	}
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC3339 or yyyy-mm-dd"})
			return
		}
		tx.Date = d
	}
	if err := txStore.Create(c.Request.Context(), &tx); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func deleteTransactionHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := txStore.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

func tagsHandler(c *gin.Context) {
	tags, err := txStore.DistinctTags(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func listDebtsHandler(c *gin.Context) {
	items, err := debtStore.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func createDebtHandler(c *gin.Context) {
	var req struct {
		Description string          `json:"description" binding:"required"`
		Amount      decimal.Decimal `json:"amount" binding:"required"`
		Lender      string          `json:"lender"`
		DueDate     string          `json:"dueDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be RFC3339 or yyyy-mm-dd"})
		return
	}
	debt := models.Debt{
		Description: req.Description,
		Amount:      req.Amount,
		Lender:      req.Lender,
		DueDate:     due,
	}
	if err := link.CreateDebt(c.Request.Context(), &debt); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, debt)
}

func updateDebtHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Description *string          `json:"description"`
		Amount      *decimal.Decimal `json:"amount"`
		Lender      *string          `json:"lender"`
		DueDate     *string          `json:"dueDate"`
		IsPaid      *bool            `json:"isPaid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := store.DebtPatch{
		Description: req.Description,
		Amount:      req.Amount,
		Lender:      req.Lender,
		IsPaid:      req.IsPaid,
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be RFC3339 or yyyy-mm-dd"})
			return
		}
		patch.DueDate = &due
	}
	debt, err := link.UpdateDebt(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, debt)
}

func toggleDebtHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	debt, err := link.TogglePaid(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, debt)
}

func deleteDebtHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := link.DeleteDebt(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "debt deleted"})
}

func ratesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"base": "USD", "rates": rateClient.Rates(c.Request.Context())})
}

func healthHandler(c *gin.Context) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
