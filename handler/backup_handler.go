package handler

import (
	"strconv"
	"time"

	"backoffice/model"
	"backoffice/repository"
	"backoffice/usecase"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	repo      *repository.BackupsRepo
	locations *usecase.LocationService
}

func NewBackupHandler(repo *repository.BackupsRepo, locations *usecase.LocationService) *BackupHandler {
	return &BackupHandler{repo: repo, locations: locations}
}

// ListBackups supports ?location= and ?limit= query filters.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	snapshots, err := h.repo.List(c.Request.Context(), c.Query("location"), limit)
	if err != nil {
		utils.InternalError(c, "Failed to load backups")
		return
	}
	if snapshots == nil {
		snapshots = []*model.BackupSnapshot{}
	}
	utils.Success(c, snapshots)
}

// CreateBackup takes a manual snapshot of a location's current document.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	var req struct {
		LocationID string `json:"location_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	state, err := h.locations.Get(c.Request.Context(), req.LocationID)
	if err != nil {
		utils.InternalError(c, "Failed to load location")
		return
	}

	snapshot := &model.BackupSnapshot{
		BackupID:   utils.GenerateID(),
		LocationID: req.LocationID,
		State:      *state,
		Reason:     model.BackupReasonManual,
		CreatedAt:  time.Now(),
	}

	if err := h.repo.Insert(c.Request.Context(), snapshot); err != nil {
		utils.InternalError(c, "Failed to store backup")
		return
	}
	utils.Created(c, snapshot)
}
