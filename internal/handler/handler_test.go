package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/handler"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/middleware"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/storage"
)

const historyCSV = `Número USP,disciplina,Ano,Semestre,problema,parecer
111,MAC0110,2023,1,QR,Deferido
111,MAC0121,2023,2,CH,Indeferido
222,MAC0110,2024,1,QR,Deferido
`

const petitionsCSV = `NUSP,Nome completo,problema,Link para o requerimento,Plano de Estudo
111,Ana Souza,QR,http://drive/req1,Plano de estudos da Ana
333,Caio Lima,CH,http://drive/req2,
`

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	storage.InitDB(":memory:")
	code := m.Run()
	storage.CloseDB()
	os.Exit(code)
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.POST("/login", handler.Login)
	protected := router.Group("/api").Use(middleware.AuthMiddleware())
	{
		protected.POST("/sessions", handler.CreateSession)
		protected.GET("/sessions/:id", handler.GetSessionSummary)
		protected.DELETE("/sessions/:id", handler.DeleteSession)
		protected.GET("/sessions/:id/students", handler.ListStudents)
		protected.GET("/sessions/:id/students/:nusp", handler.GetStudent)
		protected.GET("/sessions/:id/decisions", handler.ListDecisions)
		protected.PUT("/sessions/:id/decisions/:key", handler.PutDecision)
		protected.GET("/sessions/:id/export", handler.ExportReport)
	}
	return router
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": "segredo"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func uploadSessionReq(t *testing.T, token, historyFile, petitionsFile string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("consolidado", "consolidado.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(historyFile))
	require.NoError(t, err)

	fw, err = mw.CreateFormFile("requerimentos", "requerimentos.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(petitionsFile))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return httptest.NewRecorder(), req
}

func createSession(t *testing.T, router *gin.Engine, token string) handler.SessionResponse {
	t.Helper()
	w, req := uploadSessionReq(t, token, historyCSV, petitionsCSV)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp handler.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func authedReq(token, method, url string, body []byte) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, url, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, url, nil)
	}
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "segredo")
	router := setupRouter()

	body, _ := json.Marshal(map[string]string{"password": "errada"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_NotConfigured(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "")
	t.Setenv("MASTER_PASSWORD_HASH", "")
	router := setupRouter()

	body, _ := json.Marshal(map[string]string{"password": "qualquer"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router := setupRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions/xyz", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSession_SummaryAndMerge(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "segredo")
	router := setupRouter()
	token := login(t, router)

	resp := createSession(t, router, token)

	// 111 is in the history, 333 is not
	assert.Equal(t, 2, resp.Summary.TotalPetitions)
	assert.Equal(t, 1, resp.Summary.StudentsWithHistory)
	assert.InDelta(t, 50.0, resp.Summary.HistorySharePct, 0.1)
	// Ana's history: Deferido + Indeferido
	assert.InDelta(t, 50.0, resp.Summary.ApprovalRatePct, 0.1)
}

func TestCreateSession_MissingColumns(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "segredo")
	router := setupRouter()
	token := login(t, router)

	badHistory := "Número USP,disciplina\n111,MAC0110\n"
	w, req := uploadSessionReq(t, token, badHistory, petitionsCSV)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "consolidado")
	assert.Contains(t, w.Body.String(), "colunas faltando")
}

func TestStudentListingAndDetail(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "segredo")
	router := setupRouter()
	token := login(t, router)
	sess := createSession(t, router, token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodGet, "/api/sessions/"+sess.SessionID+"/students", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Students []handler.StudentSummary `json:"students"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Students, 1)
	assert.Equal(t, 111, listing.Students[0].NUSP)
	assert.Equal(t, "Ana Souza", listing.Students[0].Name)
	assert.Equal(t, 2, listing.Students[0].HistoryRows)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodGet, "/api/sessions/"+sess.SessionID+"/students/111", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var detail handler.StudentDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Len(t, detail.Petitions, 1)
	assert.Equal(t, "111_QR_0", detail.Petitions[0].DecisionKey)
	assert.Equal(t, "pending", string(detail.Petitions[0].Decision.Status))
	assert.Equal(t, "Quebra de Requisito", detail.Petitions[0].ProblemLabel)
	require.Len(t, detail.History, 2)

	// student without history
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodGet, "/api/sessions/"+sess.SessionID+"/students/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDecisionFlow(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "segredo")
	router := setupRouter()
	token := login(t, router)
	sess := createSession(t, router, token)
	url := "/api/sessions/" + sess.SessionID + "/decisions/111_QR_0"

	// denial without justification is rejected
	body, _ := json.Marshal(handler.DecisionRequest{Status: "denied_staff"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodPut, url, body))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown status is rejected
	body, _ = json.Marshal(handler.DecisionRequest{Status: "Deferido SG"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodPut, url, body))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown key is a 404
	body, _ = json.Marshal(handler.DecisionRequest{Status: "approved_staff"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodPut, "/api/sessions/"+sess.SessionID+"/decisions/999_QR_9", body))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// valid denial sticks
	body, _ = json.Marshal(handler.DecisionRequest{Status: "denied_staff", Justification: "Plano de estudo ausente."})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodPut, url, body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// moving back to pending clears the justification
	body, _ = json.Marshal(handler.DecisionRequest{Status: "pending"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodPut, url, body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Plano de estudo ausente.")
}

func TestExport_RoundTrip(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "segredo")
	router := setupRouter()
	token := login(t, router)
	sess := createSession(t, router, token)

	body, _ := json.Marshal(handler.DecisionRequest{Status: "denied_staff", Justification: "Indeferido por prazo."})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodPut, "/api/sessions/"+sess.SessionID+"/decisions/111_QR_0", body))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodGet, "/api/sessions/"+sess.SessionID+"/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "relatorio_completo_pareceres_")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Relatorio")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + Ana + Caio

	var anaRow []string
	for _, row := range rows[1:] {
		if strings.HasPrefix(row[0], "111") {
			anaRow = row
		}
	}
	require.NotNil(t, anaRow)
	assert.Equal(t, "Indeferido SG", anaRow[5])
	assert.Equal(t, "Indeferido por prazo.", anaRow[6])

	// the granted view drops Ana
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodGet, fmt.Sprintf("/api/sessions/%s/export?view=granted", sess.SessionID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "relatorio_nao_indeferidos_")

	f2, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f2.Close()
	rows2, err := f2.GetRows("Relatorio")
	require.NoError(t, err)
	require.Len(t, rows2, 2) // header + Caio
	assert.Equal(t, "333", rows2[1][0])
}

func TestDeleteSession_Endpoint(t *testing.T) {
	t.Setenv("MASTER_PASSWORD", "segredo")
	router := setupRouter()
	token := login(t, router)
	sess := createSession(t, router, token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodDelete, "/api/sessions/"+sess.SessionID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedReq(token, http.MethodGet, "/api/sessions/"+sess.SessionID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
