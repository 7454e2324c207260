package connections

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"recipely/internal/common"
	"recipely/internal/remote"
	"recipely/internal/session"
)

// HTTPServer exposes the sync core over HTTP for the local client shell.
type HTTPServer struct {
	manager *ConnectionManager
	store   remote.RemoteStore
	session *session.Session
}

func NewHTTPServer(manager *ConnectionManager, store remote.RemoteStore, sess *session.Session) *HTTPServer {
	return &HTTPServer{
		manager: manager,
		store:   store,
		session: sess,
	}
}

func (s *HTTPServer) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.health).Methods("GET")
	router.HandleFunc("/connections", s.listConnections).Methods("GET")
	router.HandleFunc("/connections/badge", s.badge).Methods("GET")
	router.HandleFunc("/connections/requests", s.sendRequest).Methods("POST")
	router.HandleFunc("/connections/{connectionId}/accept", s.accept).Methods("POST")
	router.HandleFunc("/connections/{connectionId}/reject", s.reject).Methods("POST")
	router.HandleFunc("/connections/{connectionId}/retry", s.retry).Methods("POST")
	router.HandleFunc("/connections/{connectionId}", s.remove).Methods("DELETE")
	router.HandleFunc("/relationship/{userId}", s.relationship).Methods("GET")
	router.HandleFunc("/share/resolve", s.resolveShare).Methods("GET")

	router.Use(common.AuthMiddleware)
	return router
}

func (s *HTTPServer) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) listConnections(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.LoadConnections(r.Context(), s.session.UserID); err != nil {
		writeError(w, err)
		return
	}

	type connectionView struct {
		ID         string `json:"id"`
		FromUserID string `json:"from_user_id"`
		ToUserID   string `json:"to_user_id"`
		Status     string `json:"status"`
		SyncState  string `json:"sync_state"`
		RetryCount int    `json:"retry_count,omitempty"`
		SyncError  string `json:"sync_error,omitempty"`
	}

	var views []connectionView
	for _, entry := range s.manager.Connections() {
		view := connectionView{
			ID:         entry.Connection.ID,
			FromUserID: entry.Connection.FromUserID,
			ToUserID:   entry.Connection.ToUserID,
			Status:     entry.Connection.Status,
			SyncState:  string(entry.SyncState.Kind),
			RetryCount: entry.SyncState.RetryCount,
		}
		if entry.SyncState.Err != nil {
			view.SyncError = entry.SyncState.Err.Error()
		}
		views = append(views, view)
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *HTTPServer) badge(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"pending_requests": s.manager.PendingRequestsCount()})
}

func (s *HTTPServer) sendRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ToUserID string `json:"to_user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := s.manager.SendConnectionRequest(r.Context(), body.ToUserID, s.session.Snapshot())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "pending_sync"})
}

func (s *HTTPServer) accept(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connectionId"]
	if err := s.manager.AcceptConnection(r.Context(), connectionID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "pending_sync"})
}

func (s *HTTPServer) reject(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connectionId"]
	if err := s.manager.RejectConnection(r.Context(), connectionID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "removed"})
}

func (s *HTTPServer) retry(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connectionId"]
	if err := s.manager.RetryFailedOperation(r.Context(), connectionID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "pending_sync"})
}

func (s *HTTPServer) remove(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connectionId"]
	if err := s.manager.DeleteConnection(r.Context(), connectionID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "removed"})
}

func (s *HTTPServer) relationship(w http.ResponseWriter, r *http.Request) {
	otherUserID := mux.Vars(r)["userId"]
	entry := s.manager.ConnectionStatus(otherUserID)
	state := Resolve(entry, s.session.UserID, otherUserID)

	response := map[string]string{"relationship": string(state.Kind)}
	if state.Err != nil {
		response["error"] = state.Err.Error()
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *HTTPServer) resolveShare(w http.ResponseWriter, r *http.Request) {
	shareURL := r.URL.Query().Get("url")
	if shareURL == "" {
		http.Error(w, "url query parameter required", http.StatusBadRequest)
		return
	}

	metadata, err := s.store.FetchShareMetadata(r.Context(), shareURL)
	if err != nil {
		if errors.Is(err, remote.ErrShareNotFound) {
			http.Error(w, "share link not found", http.StatusNotFound)
			return
		}
		writeError(w, err)
		return
	}
	if metadata.ContentType == "" {
		metadata.ContentType = common.DetectShareContentType(shareURL)
	}
	writeJSON(w, http.StatusOK, metadata)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrConnectionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, common.ErrConnectionExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, common.ErrSelfConnection), errors.Is(err, common.ErrNotRetryable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
