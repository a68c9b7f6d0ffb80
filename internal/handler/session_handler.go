package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/dataset"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/review"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/storage"
)

// SessionResponse is returned after the two files are processed.
type SessionResponse struct {
	SessionID string         `json:"session_id" example:"b2cbd447-2eef-4ca3-81cb-5f0b4ff6b8f7"`
	Summary   review.Summary `json:"summary"`
	Warnings  []string       `json:"warnings,omitempty"`
	Debug     *DebugInfo     `json:"debug,omitempty"`
}

// DebugInfo carries the original headers of both uploads, included only when
// DEBUG_ERRORS is enabled.
type DebugInfo struct {
	HistoryHeaders  []string `json:"consolidado_colunas"`
	PetitionHeaders []string `json:"requerimentos_colunas"`
}

// StudentSummary is one entry of the students listing.
type StudentSummary struct {
	NUSP         int    `json:"nusp"`
	Name         string `json:"nome"`
	PetitionRows int    `json:"requerimentos_atuais"`
	HistoryRows  int    `json:"pedidos_historico"`
}

// PetitionWithDecision pairs a current petition with its decision key and the
// reviewer's current decision.
type PetitionWithDecision struct {
	models.PetitionRecord
	ProblemLabel string                `json:"problema_label"`
	DecisionKey  string                `json:"decision_key"`
	Decision     models.DecisionRecord `json:"decisao"`
}

// HistoryEntry is one historical row with its display labels.
type HistoryEntry struct {
	models.HistoricalRecord
	ProblemLabel string              `json:"problema_label"`
	OutcomeClass review.OutcomeClass `json:"parecer_class"`
}

// StudentDetailResponse is everything the reviewer sees for one student.
type StudentDetailResponse struct {
	NUSP      int                    `json:"nusp"`
	Name      string                 `json:"nome"`
	Petitions []PetitionWithDecision `json:"requerimentos_atuais"`
	History   []HistoryEntry         `json:"historico"`
}

func debugEnabled() bool {
	v, _ := strconv.ParseBool(os.Getenv("DEBUG_ERRORS"))
	return v
}

// fail maps an error to the two top-level categories: validation errors go
// out verbatim with a 400, anything else is a generic 500 with the detail
// included only under the debug toggle.
func fail(c *gin.Context, err error) {
	var verr *dataset.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
	if debugEnabled() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro inesperado.", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro inesperado."})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// CreateSession godoc
// @Summary      Upload the two spreadsheets and start a review session
// @Description  Multipart fields: `consolidado` (historical record) and `requerimentos` (current petitions), each xlsx or csv.
// @Description  Normalizes headers, validates required columns, drops rows with invalid NUSP, joins and aggregates.
// @Tags         API (Protected)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        consolidado   formData file true "Historical petitions file"
// @Param        requerimentos formData file true "Current-semester petitions file"
// @Success      201 {object} handler.SessionResponse
// @Failure      400 {object} handler.ErrorResponse "Validation error (missing columns, unreadable file)"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/sessions [post]
func CreateSession(c *gin.Context) {
	histFH, err := c.FormFile("consolidado")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo 'consolidado' é obrigatório."})
		return
	}
	petFH, err := c.FormFile("requerimentos")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo 'requerimentos' é obrigatório."})
		return
	}

	histData, err := readUpload(histFH)
	if err != nil {
		fail(c, err)
		return
	}
	petData, err := readUpload(petFH)
	if err != nil {
		fail(c, err)
		return
	}

	histTable, err := dataset.ReadTable(histData, histFH.Filename)
	if err != nil {
		fail(c, err)
		return
	}
	petTable, err := dataset.ReadTable(petData, petFH.Filename)
	if err != nil {
		fail(c, err)
		return
	}

	rawHistHeaders := append([]string(nil), histTable.Headers...)
	rawPetHeaders := append([]string(nil), petTable.Headers...)

	if err := dataset.FindAndRenameColumns(histTable, dataset.ColNUSP, dataset.NUSPVariants, dataset.HistoryAliases); err != nil {
		fail(c, err)
		return
	}
	if err := dataset.FindAndRenameColumns(petTable, dataset.ColNUSP, dataset.NUSPVariants, dataset.PetitionAliases); err != nil {
		fail(c, err)
		return
	}
	if err := dataset.Validate(histTable, petTable); err != nil {
		fail(c, err)
		return
	}

	history, histDropped := dataset.HistoricalRecords(histTable)
	petitions, petDropped := dataset.PetitionRecords(petTable)

	var warnings []string
	if histDropped > 0 {
		warnings = append(warnings, fmt.Sprintf("Removidos %d registros com NUSP inválido do arquivo consolidado", histDropped))
	}
	if petDropped > 0 {
		warnings = append(warnings, fmt.Sprintf("Removidos %d registros com NUSP inválido do arquivo requerimentos", petDropped))
	}

	merged := review.Merge(petitions, history)

	sess := &storage.ReviewSession{
		ID:                 uuid.New().String(),
		CreatedAt:          time.Now(),
		Petitions:          petitions,
		History:            history,
		Merged:             merged,
		Summary:            review.Summarize(petitions, merged),
		Warnings:           warnings,
		RawHistoryHeaders:  rawHistHeaders,
		RawPetitionHeaders: rawPetHeaders,
	}
	if err := storage.CreateSession(sess); err != nil {
		fail(c, err)
		return
	}
	log.Printf("CreateSession(): session %s with %d petitions, %d merged rows", sess.ID, len(petitions), len(merged))

	resp := SessionResponse{SessionID: sess.ID, Summary: sess.Summary, Warnings: warnings}
	if debugEnabled() {
		resp.Debug = &DebugInfo{HistoryHeaders: rawHistHeaders, PetitionHeaders: rawPetHeaders}
	}
	c.JSON(http.StatusCreated, resp)
}

// sessionFromPath resolves the :id parameter, answering 404 itself when the
// session is unknown.
func sessionFromPath(c *gin.Context) (*storage.ReviewSession, bool) {
	sess, err := storage.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessão de revisão não encontrada."})
		return nil, false
	}
	return sess, true
}

// GetSessionSummary godoc
// @Summary      Session summary metrics
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session id"
// @Success      200 {object} handler.SessionResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id} [get]
func GetSessionSummary(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: sess.ID, Summary: sess.Summary, Warnings: sess.Warnings})
}

// ListStudents godoc
// @Summary      Students present in the merged view
// @Description  Unique students of the current petitions that have at least one historical row, sorted by name.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session id"
// @Success      200 {object} map[string][]handler.StudentSummary
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id}/students [get]
func ListStudents(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	byNUSP := make(map[int]*StudentSummary)
	for _, m := range sess.Merged {
		s, ok := byNUSP[m.Petition.NUSP]
		if !ok {
			s = &StudentSummary{NUSP: m.Petition.NUSP, Name: m.Petition.Name}
			byNUSP[m.Petition.NUSP] = s
		}
	}
	for nusp, s := range byNUSP {
		for _, p := range sess.Petitions {
			if p.NUSP == nusp {
				s.PetitionRows++
			}
		}
		s.HistoryRows = len(review.HistoryFor(sess.Merged, nusp))
	}

	students := make([]StudentSummary, 0, len(byNUSP))
	for _, s := range byNUSP {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].Name != students[j].Name {
			return students[i].Name < students[j].Name
		}
		return students[i].NUSP < students[j].NUSP
	})
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// GetStudent godoc
// @Summary      One student's current petitions and full history
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Session id"
// @Param        nusp path int    true "Student NUSP"
// @Success      200 {object} handler.StudentDetailResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id}/students/{nusp} [get]
func GetStudent(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	nusp, err := strconv.Atoi(c.Param("nusp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NUSP inválido."})
		return
	}

	detail := StudentDetailResponse{NUSP: nusp}
	for _, p := range sess.Petitions {
		if p.NUSP != nusp {
			continue
		}
		if detail.Name == "" {
			detail.Name = p.Name
		}
		key := models.DecisionKey(p.NUSP, p.Problem, p.RowID)
		dec, err := storage.GetDecision(sess.ID, key)
		if err != nil {
			fail(c, err)
			return
		}
		detail.Petitions = append(detail.Petitions, PetitionWithDecision{
			PetitionRecord: p,
			ProblemLabel:   review.ProblemLabel(p.Problem),
			DecisionKey:    key,
			Decision:       dec,
		})
	}
	if len(detail.Petitions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum requerimento encontrado para este aluno no arquivo atual."})
		return
	}

	for _, h := range review.HistoryFor(sess.Merged, nusp) {
		detail.History = append(detail.History, HistoryEntry{
			HistoricalRecord: h,
			ProblemLabel:     review.ProblemLabel(h.Problem),
			OutcomeClass:     review.ClassifyOutcome(h.Outcome),
		})
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteSession godoc
// @Summary      Discard a review session
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session id"
// @Success      200 {object} map[string]string
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/sessions/{id} [delete]
func DeleteSession(c *gin.Context) {
	if err := storage.DeleteSession(c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sessão de revisão não encontrada."})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sessão descartada."})
}
