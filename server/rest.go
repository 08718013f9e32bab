package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/todo/service"
	"github.com/example/todo/storage"
	"github.com/example/todo/todo"
	"github.com/example/todo/utils/log"
)

// errorResponse is the body returned for server-side failures
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RESTHandler translates HTTP requests under /api/todos into domain
// service calls. It is stateless; all state lives behind the service.
type RESTHandler struct {
	todos  *service.Todos
	logger *zap.Logger
}

// NewRESTHandler builds the REST adapter and its routes
func NewRESTHandler(todos *service.Todos, logger *zap.Logger) http.Handler {
	handler := &RESTHandler{
		todos:  todos,
		logger: logger,
	}

	router := mux.NewRouter()

	router.HandleFunc("/api/todos", handler.list).Methods("GET")
	router.HandleFunc("/api/todos", handler.create).Methods("POST")
	router.HandleFunc("/api/todos/{id}", handler.get).Methods("GET")
	router.HandleFunc("/api/todos/{id}", handler.update).Methods("PUT")
	router.HandleFunc("/api/todos/{id}", handler.delete).Methods("DELETE")

	router.Use(handler.logRequests)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(status int) {
	recorder.status = status
	recorder.ResponseWriter.WriteHeader(status)
}

func (handler *RESTHandler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		ctx := log.WithLogger(r.Context(), handler.logger)
		ctx = log.WithFields(ctx,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)

		next.ServeHTTP(recorder, r.WithContext(ctx))

		log.WithContext(ctx, handler.logger).Info("request", zap.Int("status", recorder.status))
	})
}

func (handler *RESTHandler) list(w http.ResponseWriter, r *http.Request) {
	todos, err := handler.todos.List(r.Context())

	if err != nil {
		handler.serverError(r.Context(), w, err)

		return
	}

	if todos == nil {
		todos = []todo.Todo{}
	}

	handler.writeJSON(w, http.StatusOK, todos)
}

func (handler *RESTHandler) get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	t, err := handler.todos.Get(r.Context(), id)

	if err != nil {
		handler.serverError(r.Context(), w, err)

		return
	}

	if t == nil {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	handler.writeJSON(w, http.StatusOK, t)
}

func (handler *RESTHandler) create(w http.ResponseWriter, r *http.Request) {
	var t todo.Todo

	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		handler.clientError(w, "Invalid JSON body")

		return
	}

	if err := t.Validate(); err != nil {
		handler.clientError(w, err.Error())

		return
	}

	created, err := handler.todos.Create(r.Context(), t)

	if err != nil {
		handler.serverError(r.Context(), w, err)

		return
	}

	handler.writeJSON(w, http.StatusCreated, created)
}

func (handler *RESTHandler) update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var t todo.Todo

	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		handler.clientError(w, "Invalid JSON body")

		return
	}

	if err := t.Validate(); err != nil {
		handler.clientError(w, err.Error())

		return
	}

	updated, err := handler.todos.Update(r.Context(), id, t)

	if err != nil {
		handler.serverError(r.Context(), w, err)

		return
	}

	if updated == nil {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	handler.writeJSON(w, http.StatusOK, updated)
}

func (handler *RESTHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := handler.todos.Delete(r.Context(), id)

	if err != nil {
		handler.serverError(r.Context(), w, err)

		return
	}

	if !deleted {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *RESTHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		handler.logger.Error("could not encode response", zap.Error(err))
	}
}

func (handler *RESTHandler) clientError(w http.ResponseWriter, message string) {
	handler.writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "Validation failed",
		Message: message,
	})
}

func (handler *RESTHandler) serverError(ctx context.Context, w http.ResponseWriter, err error) {
	logger, ctx := log.LoggerFromContext(ctx, handler.logger)
	log.WithContext(ctx, logger).Error("storage failure", zap.Error(err))

	if errors.Is(err, storage.ErrUnavailable) {
		handler.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Database error",
			Message: "An error occurred while accessing the database. Please try again later.",
		})

		return
	}

	handler.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "Internal error",
		Message: "An unexpected error occurred.",
	})
}
