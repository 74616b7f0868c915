package handler

import (
	"context"
	"time"

	"backoffice/services"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	markers     *services.SentMarkerStore
}

func NewHealthHandler(mongoClient *mongo.Client, markers *services.SentMarkerStore) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient, markers: markers}
}

// Health pings both stores; a failure on either makes the service
// unavailable since every request path depends on them.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		utils.ServiceUnavailable(c, "mongodb unreachable")
		return
	}
	if err := h.markers.Ping(ctx); err != nil {
		utils.ServiceUnavailable(c, "redis unreachable")
		return
	}
	utils.Success(c, gin.H{"status": "ok"})
}
