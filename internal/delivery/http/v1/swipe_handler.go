package v1

import (
	"net/http"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUC domain.SwipeUsecase
}

// NewSwipeHandler registers swipe routes
func NewSwipeHandler(r *gin.RouterGroup, swipeUC domain.SwipeUsecase) {
	handler := &SwipeHandler{swipeUC: swipeUC}

	swipes := r.Group("/swipes")
	{
		swipes.POST("", handler.RecordSwipe)
		swipes.POST("/undo", handler.UndoLastSwipe)
	}
}

// RecordSwipeRequest is the request payload for recording a swipe
type RecordSwipeRequest struct {
	SubjectID    string `json:"subject_id" binding:"required"`
	SubjectType  string `json:"subject_type" binding:"required,oneof=job candidate"`
	JobContextID int64  `json:"job_context_id" binding:"required,gt=0"`
	Direction    string `json:"direction" binding:"required,oneof=left right super"`
	Override     bool   `json:"override"`
}

// RecordSwipe godoc
// @Summary      Record a swipe
// @Description  Record a directional decision and detect mutual interest. Requires override=true to commit an interested swipe while deal-breaker violations exist.
// @Tags         swipes
// @Accept       json
// @Produce      json
// @Param        body  body      RecordSwipeRequest  true  "Swipe data"
// @Success      200   {object}  response.Response{data=domain.SwipeResult}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /swipes [post]
// @Security     BearerAuth
func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyActorID))
	actorRole := c.GetString(string(domain.KeyActorRole))

	var req RecordSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.swipeUC.RecordSwipe(c.Request.Context(), domain.SwipeCommand{
		ActorID:      actorID,
		ActorRole:    actorRole,
		SubjectID:    req.SubjectID,
		SubjectType:  req.SubjectType,
		JobContextID: req.JobContextID,
		Direction:    req.Direction,
		Override:     req.Override,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Swipe recorded", result)
}

// UndoLastSwipe godoc
// @Summary      Undo the last swipe
// @Description  Retract the actor's single most recent swipe, unless it already produced a match
// @Tags         swipes
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /swipes/undo [post]
// @Security     BearerAuth
func (h *SwipeHandler) UndoLastSwipe(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyActorID))

	if err := h.swipeUC.UndoLastSwipe(c.Request.Context(), actorID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Swipe retracted", gin.H{"ok": true})
}
