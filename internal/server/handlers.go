package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/services/todo"
)

// fieldDecoder decodes one raw JSON member into its destination
type fieldDecoder func(raw json.RawMessage) error

// createTodoBody is the accepted shape of a POST /todos body
type createTodoBody struct {
	Task     string
	Priority string
}

func (b *createTodoBody) fields() map[string]fieldDecoder {
	return map[string]fieldDecoder{
		"task":     decodeField(&b.Task),
		"priority": decodeField(&b.Priority),
	}
}

// updateTodoBody is the accepted shape of a PUT /todos/{id} body.
// A JSON null decodes to nil and is treated as absent.
type updateTodoBody struct {
	Task      *string
	Completed *bool
}

func (b *updateTodoBody) fields() map[string]fieldDecoder {
	return map[string]fieldDecoder{
		"task":      decodeField(&b.Task),
		"completed": decodeField(&b.Completed),
	}
}

// decodeField returns a decoder that assigns dst only when raw decodes
// cleanly, so a wrong-typed member leaves dst at its zero value.
func decodeField[V any](dst *V) fieldDecoder {
	return func(raw json.RawMessage) error {
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	count, err := s.app.TodoService.CountTodos(r.Context())
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	snap := s.metrics.GetSnapshot()
	snap.TodosCount = count
	s.writeJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	var req todo.ListTodosRequest
	query := r.URL.Query()
	if query.Has("completed") {
		completed := query.Get("completed") == "true"
		req.Completed = &completed
	}

	todos, err := s.app.TodoService.ListTodos(r.Context(), req)
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}
	if todos == nil {
		todos = []*models.Todo{}
	}

	s.writeJSON(w, r, http.StatusOK, todos)
}

func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		s.writeNotFound(w)
		return
	}

	t, err := s.app.TodoService.GetTodo(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, t)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[createTodoBody](r, s.requestLogger(r))

	t, err := s.app.TodoService.CreateTodo(r.Context(), todo.CreateTodoRequest{
		Task:     body.Task,
		Priority: body.Priority,
	})
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	s.metrics.IncTodosCreated()
	s.writeJSON(w, r, http.StatusCreated, t)
}

func (s *Server) handleCompleteAll(w http.ResponseWriter, r *http.Request) {
	if err := s.app.TodoService.CompleteAll(r.Context()); err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	s.metrics.IncCompleteAll()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		s.writeNotFound(w)
		return
	}

	body := decodeBody[updateTodoBody](r, s.requestLogger(r))

	t, err := s.app.TodoService.UpdateTodo(r.Context(), todo.UpdateTodoRequest{
		ID:        id,
		Task:      body.Task,
		Completed: body.Completed,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.metrics.IncTodosUpdated()
	s.writeJSON(w, r, http.StatusOK, t)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		s.writeNotFound(w)
		return
	}

	if err := s.app.TodoService.DeleteTodo(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.metrics.IncTodosDeleted()
	w.WriteHeader(http.StatusNoContent)
}

// parseID reads the leading integer of a path segment, so "12abc" is 12 and
// " 7" is 7. A segment with no leading digits is not an id.
func parseID(raw string) (int, bool) {
	raw = strings.TrimLeft(raw, " \t\n\r")
	if raw == "" {
		return 0, false
	}

	sign := 1
	switch raw[0] {
	case '-':
		sign = -1
		raw = raw[1:]
	case '+':
		raw = raw[1:]
	}

	n, digits := 0, 0
	for digits < len(raw) && raw[digits] >= '0' && raw[digits] <= '9' {
		n = n*10 + int(raw[digits]-'0')
		digits++
		if n > math.MaxInt32 {
			// no collection gets this large; stop before overflow
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}

	return sign * n, true
}

// decodeBody decodes a JSON object body into T one member at a time.
// A member of the wrong type is skipped and the rest are kept. A missing,
// empty or unparsable body yields the zero value, so every field counts as
// absent. Unknown members are ignored.
func decodeBody[T any, PT interface {
	*T
	fields() map[string]fieldDecoder
}](r *http.Request, logger *slog.Logger) T {
	var body T
	if r.Body == nil {
		return body
	}

	var members map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&members); err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Debug("ignoring malformed request body", "path", r.URL.Path, "error", err)
		}
		return body
	}

	for name, decode := range PT(&body).fields() {
		raw, ok := members[name]
		if !ok {
			continue
		}
		if err := decode(raw); err != nil {
			logger.Debug("ignoring malformed request field", "path", r.URL.Path, "field", name, "error", err)
		}
	}

	return body
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.requestLogger(r).Error("failed to encode response", "error", err)
	}
}

// writeNotFound writes the plain-text not-found body exactly, with no
// trailing newline, which is why http.Error is not used here.
func (s *Server) writeNotFound(w http.ResponseWriter) {
	s.metrics.IncNotFound()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, models.NotFoundMessage)
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrTodoNotFound) {
		s.writeNotFound(w)
		return
	}
	s.writeInternalError(w, r, err)
}

func (s *Server) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	s.requestLogger(r).Error("request failed", "path", r.URL.Path, "error", err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = io.WriteString(w, "Internal server error")
}
