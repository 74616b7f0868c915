package handler

import (
	"errors"
	"time"

	"backoffice/model"
	"backoffice/repository"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	repo *repository.SuppliersRepo
}

func NewSupplierHandler(repo *repository.SuppliersRepo) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.repo.List(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to load suppliers")
		return
	}
	if suppliers == nil {
		suppliers = []*model.Supplier{}
	}
	utils.Success(c, suppliers)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	supplier, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			utils.NotFound(c, "Supplier not found")
			return
		}
		utils.InternalError(c, "Failed to load supplier")
		return
	}
	utils.Success(c, supplier)
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier := &model.Supplier{
		SupplierID: utils.GenerateID(),
		Name:       req.Name,
		Phone:      req.Phone,
		Category:   req.Category,
		CreatedAt:  time.Now(),
	}

	if err := h.repo.Create(c.Request.Context(), supplier); err != nil {
		utils.InternalError(c, "Failed to create supplier")
		return
	}
	utils.Created(c, supplier)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	supplierID := c.Param("id")

	existing, err := h.repo.Get(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			utils.NotFound(c, "Supplier not found")
			return
		}
		utils.InternalError(c, "Failed to load supplier")
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated := &model.Supplier{
		SupplierID: supplierID,
		Name:       req.Name,
		Phone:      req.Phone,
		Category:   req.Category,
		CreatedAt:  existing.CreatedAt,
	}

	if err := h.repo.Update(c.Request.Context(), updated); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			utils.NotFound(c, "Supplier not found")
			return
		}
		utils.InternalError(c, "Failed to update supplier")
		return
	}
	utils.Success(c, updated)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			utils.NotFound(c, "Supplier not found")
			return
		}
		utils.InternalError(c, "Failed to delete supplier")
		return
	}
	utils.Success(c, gin.H{"deleted": true})
}
