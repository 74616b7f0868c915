package handler

import (
	"errors"
	"time"

	"backoffice/model"
	"backoffice/repository"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	repo *repository.OrdersRepo
}

func NewOrderHandler(repo *repository.OrdersRepo) *OrderHandler {
	return &OrderHandler{repo: repo}
}

// ListOrders supports ?location=&supplier=&month= query filters.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := repository.OrderFilter{
		LocationID: c.Query("location"),
		SupplierID: c.Query("supplier"),
		Month:      c.Query("month"),
	}

	orders, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		utils.InternalError(c, "Failed to load orders")
		return
	}
	if orders == nil {
		orders = []*model.Order{}
	}
	utils.Success(c, orders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		LocationID string            `json:"location_id" binding:"required"`
		SupplierID string            `json:"supplier_id" binding:"required"`
		Month      string            `json:"month"`
		Items      []model.OrderItem `json:"items"`
		Total      float64           `json:"total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.Month == "" {
		req.Month = time.Now().Format("01/2006")
	}
	if req.Items == nil {
		req.Items = []model.OrderItem{}
	}

	order := &model.Order{
		OrderID:    utils.GenerateID(),
		LocationID: req.LocationID,
		SupplierID: req.SupplierID,
		Month:      req.Month,
		Items:      req.Items,
		Total:      req.Total,
		CreatedAt:  time.Now(),
	}

	if err := h.repo.Create(c.Request.Context(), order); err != nil {
		utils.InternalError(c, "Failed to create order")
		return
	}
	utils.Created(c, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			utils.NotFound(c, "Order not found")
			return
		}
		utils.InternalError(c, "Failed to delete order")
		return
	}
	utils.Success(c, gin.H{"deleted": true})
}
