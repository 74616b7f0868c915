package handler

import (
	"context"
	"errors"
	"time"

	"backoffice/model"
	"backoffice/repository"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

// ReminderStore is what the CRUD surface needs from the repository.
type ReminderStore interface {
	List(ctx context.Context) ([]*model.Reminder, error)
	Get(ctx context.Context, reminderID string) (*model.Reminder, error)
	Create(ctx context.Context, reminder *model.Reminder) error
	Update(ctx context.Context, reminder *model.Reminder) error
	Delete(ctx context.Context, reminderID string) error
}

type ReminderHandler struct {
	store ReminderStore
}

func NewReminderHandler(store ReminderStore) *ReminderHandler {
	return &ReminderHandler{store: store}
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	reminders, err := h.store.List(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to load reminders")
		return
	}
	if reminders == nil {
		reminders = []*model.Reminder{}
	}
	utils.Success(c, reminders)
}

func (h *ReminderHandler) GetReminder(c *gin.Context) {
	reminder, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to load reminder")
		return
	}
	utils.Success(c, reminder)
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req struct {
		Title string             `json:"title" binding:"required"`
		Time  string             `json:"time" binding:"required,hhmm"`
		Type  model.ReminderType `json:"type"`
		Days  []string           `json:"days" binding:"omitempty,dive,weekday"`
		Date  string             `json:"date" binding:"omitempty,ddmmyyyy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.Type == "" {
		req.Type = model.ReminderRecurring
	}
	switch req.Type {
	case model.ReminderRecurring, model.ReminderOneTime:
	default:
		utils.BadRequest(c, "Invalid reminder type")
		return
	}
	if req.Type == model.ReminderOneTime && req.Date == "" {
		utils.BadRequest(c, "Date is required for one-time reminders")
		return
	}
	if req.Days == nil {
		req.Days = []string{}
	}

	reminder := &model.Reminder{
		ReminderID: utils.GenerateID(),
		Title:      req.Title,
		Time:       req.Time,
		Type:       req.Type,
		Enabled:    true,
		Days:       req.Days,
		Date:       req.Date,
		CreatedAt:  time.Now(),
	}

	if err := h.store.Create(c.Request.Context(), reminder); err != nil {
		utils.InternalError(c, "Failed to create reminder")
		return
	}
	utils.Created(c, reminder)
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	reminderID := c.Param("id")

	existing, err := h.store.Get(c.Request.Context(), reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to load reminder")
		return
	}

	var req struct {
		Title   string             `json:"title" binding:"required"`
		Time    string             `json:"time" binding:"required,hhmm"`
		Type    model.ReminderType `json:"type"`
		Enabled *bool              `json:"enabled"`
		Days    []string           `json:"days" binding:"omitempty,dive,weekday"`
		Date    string             `json:"date" binding:"omitempty,ddmmyyyy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.Type == "" {
		req.Type = existing.Type
	}
	switch req.Type {
	case model.ReminderRecurring, model.ReminderOneTime:
	default:
		utils.BadRequest(c, "Invalid reminder type")
		return
	}
	if req.Days == nil {
		req.Days = []string{}
	}

	updated := &model.Reminder{
		ReminderID: reminderID,
		Title:      req.Title,
		Time:       req.Time,
		Type:       req.Type,
		Enabled:    existing.Enabled,
		Days:       req.Days,
		Date:       req.Date,
		CreatedAt:  existing.CreatedAt,
	}
	if req.Enabled != nil {
		updated.Enabled = *req.Enabled
	}

	if err := h.store.Update(c.Request.Context(), updated); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to update reminder")
		return
	}
	utils.Success(c, updated)
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to delete reminder")
		return
	}
	utils.Success(c, gin.H{"deleted": true})
}
