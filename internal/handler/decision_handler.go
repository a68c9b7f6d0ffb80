package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/storage"
)

// DecisionRequest is the PUT body for one petition row's decision.
type DecisionRequest struct {
	Status        string `json:"status" example:"denied_staff"`
	Justification string `json:"justificativa" example:"Plano de estudo não apresentado."`
}

// PutDecision godoc
// @Summary      Set the reviewer's decision for one petition row
// @Description  Statuses: pending, approved_staff, denied_staff, escalate_committee.
// @Description  denied_staff and escalate_committee require a justification; other statuses clear it.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path string true "Session id"
// @Param        key path string true "Decision key (nusp_problema_rowid)"
// @Param        request body handler.DecisionRequest true "Decision"
// @Success      200 {object} models.DecisionRecord
// @Failure      400 {object} handler.ErrorResponse "Unknown status or missing justification"
// @Failure      404 {object} handler.ErrorResponse "Unknown session or key"
// @Router       /api/sessions/{id}/decisions/{key} [put]
func PutDecision(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if !sess.DecisionKeyExists(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Requerimento não encontrado para esta chave."})
		return
	}

	var req DecisionRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status, err := models.ParseDecisionStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parecer inválido: " + req.Status})
		return
	}
	if status.RequiresJustification() && strings.TrimSpace(req.Justification) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Justificativa é obrigatória para indeferir ou encaminhar ao COC."})
		return
	}

	rec := models.DecisionRecord{Key: key, Status: status, Justification: strings.TrimSpace(req.Justification)}
	if err := storage.SetDecision(sess.ID, rec); err != nil {
		fail(c, err)
		return
	}

	// read back so the response shows the stored record (justification may
	// have been cleared)
	stored, err := storage.GetDecision(sess.ID, key)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// ListDecisions godoc
// @Summary      All explicitly set decisions of the session
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session id"
// @Success      200 {object} map[string]models.DecisionRecord
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id}/decisions [get]
func ListDecisions(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	decisions, err := storage.DecisionsBySession(sess.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"decisions": decisions})
}
