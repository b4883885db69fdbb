package v1

import (
	"net/http"
	"strconv"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

// NewMatchHandler registers match routes
func NewMatchHandler(r *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	matches := r.Group("/matches")
	{
		matches.GET("/:candidateId/:jobId", handler.GetMatch)
		matches.POST("/:matchId/transition", handler.TransitionStatus)
	}

	r.GET("/candidates/:candidateId/matches", handler.ListCandidateMatches)
	r.GET("/jobs/:jobId/matches", handler.ListJobMatches)
}

// GetMatch godoc
// @Summary      Get a match
// @Description  Get the match for a (candidate, job) pair
// @Tags         matches
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate user ID"
// @Param        jobId        path      int     true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.MatchRecord}
// @Failure      404  {object}  response.Response
// @Router       /matches/{candidateId}/{jobId} [get]
// @Security     BearerAuth
func (h *MatchHandler) GetMatch(c *gin.Context) {
	candidateID := c.Param("candidateId")
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	match, err := h.matchUC.GetMatch(c.Request.Context(), candidateID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match retrieved", match)
}

// TransitionRequest is the request payload for a status transition
type TransitionRequest struct {
	NewStatus string `json:"new_status" binding:"required,oneof=matched interviewing offered hired rejected"`
}

// TransitionStatus godoc
// @Summary      Transition a match status
// @Description  Advance a match through the status state machine: matched, interviewing, offered, hired in order; rejected from any non-terminal state
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        matchId  path      string             true  "Match ID"
// @Param        body     body      TransitionRequest  true  "New status"
// @Success      200      {object}  response.Response{data=domain.MatchRecord}
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /matches/{matchId}/transition [post]
// @Security     BearerAuth
func (h *MatchHandler) TransitionStatus(c *gin.Context) {
	matchID := c.Param("matchId")

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	match, err := h.matchUC.TransitionStatus(c.Request.Context(), matchID, req.NewStatus)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match status updated", match)
}

// ListCandidateMatches godoc
// @Summary      List a candidate's matches
// @Tags         matches
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate user ID"
// @Success      200  {object}  response.Response{data=[]domain.MatchRecord}
// @Router       /candidates/{candidateId}/matches [get]
// @Security     BearerAuth
func (h *MatchHandler) ListCandidateMatches(c *gin.Context) {
	candidateID := c.Param("candidateId")

	// Candidates may only list their own matches
	if c.GetString(string(domain.KeyActorRole)) == domain.RoleCandidate &&
		c.GetString(string(domain.KeyActorID)) != candidateID {
		c.Error(apperror.Forbidden("You can only view your own matches"))
		return
	}

	matches, err := h.matchUC.ListByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", matches)
}

// ListJobMatches godoc
// @Summary      List a job's matches
// @Tags         matches
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.MatchRecord}
// @Failure      403  {object}  response.Response
// @Router       /jobs/{jobId}/matches [get]
// @Security     BearerAuth
func (h *MatchHandler) ListJobMatches(c *gin.Context) {
	if c.GetString(string(domain.KeyActorRole)) != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can list job matches"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	matches, err := h.matchUC.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", matches)
}
