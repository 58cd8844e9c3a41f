package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// exportBank responds with the stored bank as an indented JSON attachment.
// @Summary      Export a question bank
// @Description  The file re-imports through POST /banks/import.
// @Tags         Banks
// @Produce      json
// @Param        storageKey  path  string  true  "Bank storage key"
// @Success      200  {object}  questionbank.QuestionBank
// @Failure      404  {string}  string  "bank not found"
// @Router       /banks/{storageKey}/export [get]
func (h *Handler) exportBank(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("storageKey")
	data, err := h.banks.Export(r.Context(), key)
	if h.handleError(w, err, "bank") {
		return
	}

	filename := fmt.Sprintf("%s_%s.json", exportBaseName(key), time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// exportBaseName turns a storage key into a file-name-safe base.
func exportBaseName(key string) string {
	out := []rune{}
	for _, c := range key {
		switch c {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
