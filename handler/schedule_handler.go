package handler

import (
	"backoffice/model"
	"backoffice/repository"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	repo *repository.SchedulesRepo
}

func NewScheduleHandler(repo *repository.SchedulesRepo) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

// GetConfig never 404s: an unsaved config comes back as the default
// shift-hours template with an empty roster.
func (h *ScheduleHandler) GetConfig(c *gin.Context) {
	cfg, err := h.repo.GetConfig(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to load schedule config")
		return
	}
	utils.Success(c, cfg)
}

func (h *ScheduleHandler) PutConfig(c *gin.Context) {
	var req struct {
		Employees  []string          `json:"employees"`
		ShiftHours map[string]string `json:"shiftHours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cfg := &model.ScheduleConfig{
		Employees:  req.Employees,
		ShiftHours: req.ShiftHours,
	}
	if cfg.Employees == nil {
		cfg.Employees = []string{}
	}
	if cfg.ShiftHours == nil {
		cfg.ShiftHours = map[string]string{}
	}

	if err := h.repo.PutConfig(c.Request.Context(), cfg); err != nil {
		utils.InternalError(c, "Failed to save schedule config")
		return
	}
	utils.Success(c, cfg)
}

func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	weekID := c.Param("weekId")
	if weekID == "" {
		utils.BadRequest(c, "Missing week ID")
		return
	}

	week, err := h.repo.GetWeek(c.Request.Context(), weekID)
	if err != nil {
		utils.InternalError(c, "Failed to load week schedule")
		return
	}
	utils.Success(c, week)
}

func (h *ScheduleHandler) PutWeek(c *gin.Context) {
	weekID := c.Param("weekId")
	if weekID == "" {
		utils.BadRequest(c, "Missing week ID")
		return
	}

	var req struct {
		Availability  map[string]map[string]string `json:"availability"`
		FinalSchedule map[string]map[string]string `json:"finalSchedule"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	week := &model.WeekSchedule{
		WeekID:        weekID,
		Availability:  req.Availability,
		FinalSchedule: req.FinalSchedule,
	}
	if week.Availability == nil {
		week.Availability = map[string]map[string]string{}
	}
	if week.FinalSchedule == nil {
		week.FinalSchedule = map[string]map[string]string{}
	}

	if err := h.repo.PutWeek(c.Request.Context(), week); err != nil {
		utils.InternalError(c, "Failed to save week schedule")
		return
	}
	utils.Success(c, week)
}
