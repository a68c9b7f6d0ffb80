package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/report"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportReport godoc
// @Summary      Download the annotated petitions as xlsx
// @Description  `view=full` (default) exports every petition with its final status and justification.
// @Description  `view=granted` leaves out the rows decided denied_staff.
// @Tags         API (Protected)
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id   path  string true  "Session id"
// @Param        view query string false "full or granted" default(full)
// @Success      200 {file} file "xlsx report, date-stamped filename"
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id}/export [get]
func ExportReport(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	view := c.DefaultQuery("view", "full")
	if view != "full" && view != "granted" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'view' deve ser 'full' ou 'granted'."})
		return
	}
	includeDenied := view == "full"

	decisions, err := storage.DecisionsBySession(sess.ID)
	if err != nil {
		fail(c, err)
		return
	}

	f, err := report.BuildPetitionReport(sess.Petitions, decisions, includeDenied)
	if err != nil {
		fail(c, err)
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		fail(c, err)
		return
	}

	filename := report.Filename(includeDenied, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
