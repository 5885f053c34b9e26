package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routes builds the route table. mux tries routes in registration order, so
// the literal complete-all route must come before the {id} pattern.
func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestIDMiddleware, s.accessLogMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)

	r.HandleFunc("/todos", s.handleListTodos).Methods(http.MethodGet)
	r.HandleFunc("/todos", s.handleCreateTodo).Methods(http.MethodPost)
	r.HandleFunc("/todos/complete-all", s.handleCompleteAll).Methods(http.MethodPut)
	r.HandleFunc("/todos/{id}", s.handleGetTodo).Methods(http.MethodGet)
	r.HandleFunc("/todos/{id}", s.handleUpdateTodo).Methods(http.MethodPut)
	r.HandleFunc("/todos/{id}", s.handleDeleteTodo).Methods(http.MethodDelete)

	return r
}
