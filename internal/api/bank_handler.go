package api

import (
	"net/http"
	"strings"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type ImportBankResponse struct {
	StorageKey     string   `json:"storage_key"`
	DisplayName    string   `json:"display_name"`
	TotalQuestions int      `json:"total_questions"`
	QuestionTypes  []string `json:"question_types"`
	Replaced       bool     `json:"replaced_display_name"`
}

type ListBanksResponse struct {
	Banks []questionbank.BankStats `json:"banks"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// importBank imports an uploaded source file as a new bank.
// @Summary      Import a question bank
// @Description  Accepts xls, xlsx, txt, txts and json files. The file name decides the parser.
// @Tags         Banks
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file    true   "Source file"
// @Param        name  formData  string  false  "File name override"
// @Success      201  {object}  ImportBankResponse
// @Failure      400  {string}  string
// @Failure      415  {string}  string  "unsupported file type"
// @Failure      422  {string}  string  "invalid bank document"
// @Failure      500  {string}  string
// @Router       /banks/import [post]
func (h *Handler) importBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "multipart field \"file\" is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileName := header.Filename
	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		fileName = name
	}
	if fileName == "" {
		http.Error(w, "file name is required", http.StatusBadRequest)
		return
	}

	// Re-importing under an existing display name is allowed; the caller is
	// told so it can warn the user.
	replaced, err := h.banks.HasDisplayName(ctx, fileName)
	if err != nil {
		h.logger.Error("display name lookup failed", "file", fileName, "error", err)
	}

	bank, err := h.banks.Import(ctx, fileName, file)
	if h.handleError(w, err, "bank") {
		return
	}

	respondJSON(w, http.StatusCreated, ImportBankResponse{
		StorageKey:     bank.StorageKey,
		DisplayName:    bank.DisplayName,
		TotalQuestions: len(bank.Questions),
		QuestionTypes:  bank.QuestionTypes,
		Replaced:       replaced,
	})
}

// listBanks lists every stored bank, newest first.
// @Summary      List question banks
// @Tags         Banks
// @Produce      json
// @Success      200  {object}  ListBanksResponse
// @Failure      500  {string}  string
// @Router       /banks [get]
func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.banks.List(r.Context())
	if h.handleError(w, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, ListBanksResponse{Banks: banks})
}

// getBank returns a stored bank.
// @Summary      Get a question bank
// @Tags         Banks
// @Produce      json
// @Param        storageKey  path  string  true  "Bank storage key"
// @Success      200  {object}  questionbank.QuestionBank
// @Failure      404  {string}  string  "bank not found"
// @Router       /banks/{storageKey} [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.banks.Get(r.Context(), r.PathValue("storageKey"))
	if h.handleError(w, err, "bank") {
		return
	}
	respondJSON(w, http.StatusOK, bank)
}

// deleteBank removes a bank and, when no other bank shares its name, its progress.
// @Summary      Delete a question bank
// @Tags         Banks
// @Param        storageKey  path  string  true  "Bank storage key"
// @Success      204
// @Failure      404  {string}  string  "bank not found"
// @Router       /banks/{storageKey} [delete]
func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	err := h.banks.Delete(r.Context(), r.PathValue("storageKey"))
	if h.handleError(w, err, "bank") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
