package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/quizbank/internal/api"
	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/ingest"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/spreadsheet"
	"github.com/remaimber-it/quizbank/internal/store"
)

const sampleText = "单项选择题\n1.2+2=? (B)\nA.3 B.4\n2.1+1=? (A)\nA.2 B.3\n判断题\n3.天是蓝的 (√)\n"

func newServer(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := store.NewRepository(store.NewMemory())
	ingester := ingest.NewService(repo, spreadsheet.NewDecoder(), logger)

	cfg := practicesession.DefaultConfig()
	cfg.AdvanceDelay = 0
	h := api.NewHandler(
		service.NewBankService(repo, ingester, logger, 1),
		service.NewPracticeService(repo, repo, cfg, logger),
		logger,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", api.Health)
	api.RegisterRoutes(mux, h)
	return api.Logging(logger)(api.CORS([]string{"*"})(mux))
}

func do(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func upload(t *testing.T, srv http.Handler, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/banks/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func importSample(t *testing.T, srv http.Handler) string {
	t.Helper()
	rec := upload(t, srv, "期末.txt", sampleText)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp api.ImportBankResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.StorageKey
}

func TestHealth(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestImportAndListBanks(t *testing.T) {
	srv := newServer(t)

	rec := upload(t, srv, "期末.txt", sampleText)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp api.ImportBankResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "期末", resp.DisplayName)
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.False(t, resp.Replaced)

	again := upload(t, srv, "期末.txts", sampleText)
	require.Equal(t, http.StatusCreated, again.Code)
	var second api.ImportBankResponse
	require.NoError(t, json.NewDecoder(again.Body).Decode(&second))
	assert.True(t, second.Replaced)

	rec = do(t, srv, http.MethodGet, "/banks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list api.ListBanksResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list.Banks, 2)
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  string
		want     int
	}{
		{"unsupported extension", "notes.docx", "x", http.StatusUnsupportedMediaType},
		{"json schema", "bank.json", `{"foo":1}`, http.StatusUnprocessableEntity},
		{"json syntax", "bank.json", `{"questions":[`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := upload(t, newServer(t), tt.fileName, tt.content)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestExportAndDeleteBank(t *testing.T) {
	srv := newServer(t)
	key := importSample(t, srv)
	path := "/banks/" + url.PathEscape(key)

	rec := do(t, srv, http.MethodGet, path+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), `"questionTypes"`)

	rec = do(t, srv, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, srv, http.MethodGet, path+"/export", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPracticeFlow(t *testing.T) {
	srv := newServer(t)
	key := importSample(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions", api.CreateSessionRequest{StorageKey: key, Mode: "sequential", Type: "单选题"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created api.CreateSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, 2, created.State.Total)
	base := "/sessions/" + created.ID

	rec = do(t, srv, http.MethodPost, base+"/select", map[string]int{"option": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var answered api.AnswerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&answered))
	assert.True(t, answered.Outcome.Correct)
	assert.Equal(t, 1, answered.State.Position)

	rec = do(t, srv, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodPost, base+"/select", map[string]int{"option": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, srv, http.MethodPost, base+"/select", map[string]int{"option": 0})
	assert.Equal(t, http.StatusConflict, rec.Code, "answer already shown")

	rec = do(t, srv, http.MethodPost, base+"/favorite", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fav api.FavoriteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fav))
	assert.True(t, fav.Collected)

	rec = do(t, srv, http.MethodPost, base+"/search", map[string]string{"keyword": "x"})
	assert.Equal(t, http.StatusConflict, rec.Code, "search needs search mode")

	rec = do(t, srv, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, srv, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSessionValidation(t *testing.T) {
	srv := newServer(t)
	key := importSample(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions", api.CreateSessionRequest{StorageKey: key, Mode: "exam"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/sessions", api.CreateSessionRequest{StorageKey: key, Mode: "wrong"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, srv, http.MethodPost, "/sessions", api.CreateSessionRequest{StorageKey: "txtData_none.txt_1", Mode: "sequential"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditFlow(t *testing.T) {
	srv := newServer(t)
	key := importSample(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions", api.CreateSessionRequest{StorageKey: key, Mode: "editMode", Type: "单选题"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created api.CreateSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	base := "/sessions/" + created.ID

	content := "2+2 等于几"
	rec = do(t, srv, http.MethodPut, base+"/questions/current", api.SaveQuestionRequest{Content: &content, Options: []string{"三", "四", "五"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var state practicesession.SessionState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, content, state.Content)
	require.NotNil(t, state.Draft)
	assert.Equal(t, []string{"三", "四", "五"}, state.Draft.Options)

	rec = do(t, srv, http.MethodPost, base+"/questions", api.InsertQuestionRequest{Type: "多选题", Answer: "ba"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, "多选题", state.TypeFilter)

	rec = do(t, srv, http.MethodDelete, base+"/questions/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/banks/"+url.PathEscape(key), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bank struct {
		Questions []struct {
			Content string `json:"content"`
		} `json:"questions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&bank))
	assert.Len(t, bank.Questions, 3)
	assert.Equal(t, content, bank.Questions[0].Content)
}

func TestSaveQuestion_EmptyOptionsKeepAnswer(t *testing.T) {
	srv := newServer(t)
	rec := upload(t, srv, "填空.txt", "填空题\n1.中国的首都是 北京 。\n")
	require.Equal(t, http.StatusCreated, rec.Code)
	var imported api.ImportBankResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&imported))

	rec = do(t, srv, http.MethodPost, "/sessions", api.CreateSessionRequest{StorageKey: imported.StorageKey, Mode: "editMode", Type: "填空题"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created api.CreateSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	content := "中国的首都是 ______ 。"
	rec = do(t, srv, http.MethodPut, "/sessions/"+created.ID+"/questions/current", map[string]any{"content": content, "options": []string{}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/banks/"+url.PathEscape(imported.StorageKey), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bank struct {
		Questions []struct {
			Content string            `json:"content"`
			Options map[string]string `json:"options"`
		} `json:"questions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&bank))
	require.Len(t, bank.Questions, 1)
	assert.Equal(t, content, bank.Questions[0].Content)
	assert.Equal(t, "北京", bank.Questions[0].Options["A"])
}
