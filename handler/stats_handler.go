package handler

import (
	"log"

	"backoffice/repository"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	locationsRepo *repository.LocationsRepo
	remindersRepo *repository.RemindersRepo
}

func NewStatsHandler(locationsRepo *repository.LocationsRepo, remindersRepo *repository.RemindersRepo) *StatsHandler {
	return &StatsHandler{
		locationsRepo: locationsRepo,
		remindersRepo: remindersRepo,
	}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	locationCount, err := h.locationsRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting locations: %v", err)
		utils.InternalError(c, "Failed to count locations")
		return
	}

	reminderCount, err := h.remindersRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting reminders: %v", err)
		utils.InternalError(c, "Failed to count reminders")
		return
	}

	utils.Success(c, gin.H{
		"locations": locationCount,
		"reminders": reminderCount,
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}
