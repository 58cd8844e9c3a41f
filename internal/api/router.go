package api

import "net/http"

// RegisterRoutes mounts every API route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Banks
	mux.HandleFunc("GET /banks", h.listBanks)
	mux.HandleFunc("POST /banks/import", h.importBank)
	mux.HandleFunc("GET /banks/{storageKey}", h.getBank)
	mux.HandleFunc("GET /banks/{storageKey}/export", h.exportBank)
	mux.HandleFunc("DELETE /banks/{storageKey}", h.deleteBank)

	// Practice sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.closeSession)
	mux.HandleFunc("POST /sessions/{sessionID}/type", h.selectType)
	mux.HandleFunc("POST /sessions/{sessionID}/goto", h.gotoQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/next", h.nextQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/prev", h.prevQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/swipe", h.swipe)
	mux.HandleFunc("POST /sessions/{sessionID}/select", h.selectOption)
	mux.HandleFunc("POST /sessions/{sessionID}/confirm", h.confirmSelection)
	mux.HandleFunc("POST /sessions/{sessionID}/reveal", h.reveal)
	mux.HandleFunc("POST /sessions/{sessionID}/favorite", h.toggleFavorite)
	mux.HandleFunc("POST /sessions/{sessionID}/reset", h.resetProgress)
	mux.HandleFunc("POST /sessions/{sessionID}/search", h.search)

	// Bank editing through an editMode session
	mux.HandleFunc("POST /sessions/{sessionID}/questions", h.insertQuestion)
	mux.HandleFunc("PUT /sessions/{sessionID}/questions/current", h.saveCurrentQuestion)
	mux.HandleFunc("DELETE /sessions/{sessionID}/questions/current", h.deleteCurrentQuestion)
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
