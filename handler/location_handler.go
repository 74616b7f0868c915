package handler

import (
	"errors"

	"backoffice/model"
	"backoffice/usecase"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	service *usecase.LocationService
}

func NewLocationHandler(service *usecase.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// GetLocation returns the whole document for a location. A location that
// has never been saved comes back as an empty document at version 0, not
// as a 404; pollers diff the version field to decide whether to re-render.
func (h *LocationHandler) GetLocation(c *gin.Context) {
	locationID := c.Param("locationId")
	if locationID == "" {
		utils.BadRequest(c, "Missing location ID")
		return
	}

	state, err := h.service.Get(c.Request.Context(), locationID)
	if err != nil {
		utils.InternalError(c, "Failed to load location")
		return
	}
	utils.Success(c, state)
}

// SaveLocation replaces the document wholesale after the data-loss guard
// passes. Guard rejections are 400s the UI must surface, never silent drops.
func (h *LocationHandler) SaveLocation(c *gin.Context) {
	locationID := c.Param("locationId")
	if locationID == "" {
		utils.BadRequest(c, "Missing location ID")
		return
	}

	var req struct {
		Categories []model.Category `json:"categories"`
		TaskLists  []model.TaskList `json:"taskLists"`
		Version    int64            `json:"version"` // accepted, ignored
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	for _, list := range req.TaskLists {
		if list.Color != "" && !model.ValidTaskListColor(list.Color) {
			utils.BadRequest(c, "Invalid task list color: "+list.Color)
			return
		}
	}

	proposed := &model.LocationState{
		Categories: req.Categories,
		TaskLists:  req.TaskLists,
	}

	saved, err := h.service.Save(c.Request.Context(), locationID, proposed)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyState) || errors.Is(err, usecase.ErrSuspiciousShrink) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to save location")
		return
	}
	utils.Success(c, saved)
}
