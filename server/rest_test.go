package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/todo/server"
	"github.com/example/todo/service"
	"github.com/example/todo/storage/memory"
	"github.com/example/todo/todo"
)

func restServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler := server.NewRESTHandler(service.New(memory.New()), zap.NewNop())
	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)

	return testServer
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		encoded, err := json.Marshal(body)

		if err != nil {
			t.Fatalf("could not encode request body: %v", err)
		}

		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequest(method, url, reader)

	if err != nil {
		t.Fatalf("could not build request: %v", err)
	}

	response, err := http.DefaultClient.Do(request)

	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}

	return response
}

func decodeTodo(t *testing.T, response *http.Response) todo.Todo {
	t.Helper()

	defer response.Body.Close()

	var decoded todo.Todo

	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}

	return decoded
}

func decodeTodos(t *testing.T, response *http.Response) []todo.Todo {
	t.Helper()

	defer response.Body.Close()

	var decoded []todo.Todo

	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}

	return decoded
}

// TestLifecycle walks a todo through create, get, update, list,
// delete, and the final not-found.
func TestLifecycle(t *testing.T) {
	testServer := restServer(t)
	base := testServer.URL + "/api/todos"

	response := doJSON(t, "POST", base, todo.Todo{Title: "Buy milk", Description: "2%"})

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", response.StatusCode)
	}

	created := decodeTodo(t, response)

	if created.ID == "" {
		t.Fatalf("create: expected a generated id")
	}

	if created.Completed {
		t.Fatalf("create: expected completed=false")
	}

	response = doJSON(t, "GET", base+"/"+created.ID, nil)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", response.StatusCode)
	}

	got := decodeTodo(t, response)

	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("get returned a different record (-want +got):\n%s", diff)
	}

	response = doJSON(t, "PUT", base+"/"+created.ID, todo.Todo{Title: "Buy milk", Description: "2%", Completed: true})

	if response.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", response.StatusCode)
	}

	updated := decodeTodo(t, response)

	if !updated.Completed {
		t.Fatalf("update: expected completed=true, got %+v", updated)
	}

	response = doJSON(t, "GET", base, nil)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", response.StatusCode)
	}

	todos := decodeTodos(t, response)

	if len(todos) != 1 {
		t.Fatalf("list: expected exactly one record, got %d", len(todos))
	}

	if diff := cmp.Diff(updated, todos[0]); diff != "" {
		t.Fatalf("list returned a different record (-want +got):\n%s", diff)
	}

	response = doJSON(t, "DELETE", base+"/"+created.ID, nil)

	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", response.StatusCode)
	}

	response.Body.Close()

	response = doJSON(t, "GET", base+"/"+created.ID, nil)
	response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", response.StatusCode)
	}
}

func TestListEmpty(t *testing.T) {
	testServer := restServer(t)

	response := doJSON(t, "GET", testServer.URL+"/api/todos", nil)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	todos := decodeTodos(t, response)

	if len(todos) != 0 {
		t.Fatalf("expected empty array, got %+v", todos)
	}
}

func TestCreateValidation(t *testing.T) {
	testServer := restServer(t)
	base := testServer.URL + "/api/todos"

	testCases := map[string]todo.Todo{
		"blank title":          {Title: "   "},
		"title too long":       {Title: strings.Repeat("a", todo.MaxTitleLen+1)},
		"description too long": {Title: "t", Description: strings.Repeat("d", todo.MaxDescriptionLen+1)},
	}

	for name, invalid := range testCases {
		t.Run(name, func(t *testing.T) {
			response := doJSON(t, "POST", base, invalid)
			response.Body.Close()

			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", response.StatusCode)
			}

			// validation failures must never reach storage
			response = doJSON(t, "GET", base, nil)
			todos := decodeTodos(t, response)

			if len(todos) != 0 {
				t.Fatalf("rejected create must not write, but list shows %+v", todos)
			}
		})
	}
}

func TestCreateMalformedBody(t *testing.T) {
	testServer := restServer(t)

	response, err := http.Post(testServer.URL+"/api/todos", "application/json", strings.NewReader("{not json"))

	if err != nil {
		t.Fatalf("post: %v", err)
	}

	response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestUpdateNotFound(t *testing.T) {
	testServer := restServer(t)

	response := doJSON(t, "PUT", testServer.URL+"/api/todos/missing", todo.Todo{Title: "t"})
	response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", response.StatusCode)
	}
}

func TestUpdateValidation(t *testing.T) {
	testServer := restServer(t)
	base := testServer.URL + "/api/todos"

	created := decodeTodo(t, doJSON(t, "POST", base, todo.Todo{Title: "t"}))

	response := doJSON(t, "PUT", base+"/"+created.ID, todo.Todo{Title: ""})
	response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

// TestDeleteNotFound pins the REST side of the delete asymmetry: a
// missing id is a 404 here but success=false over RPC.
func TestDeleteNotFound(t *testing.T) {
	testServer := restServer(t)

	response := doJSON(t, "DELETE", testServer.URL+"/api/todos/missing", nil)
	response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", response.StatusCode)
	}
}

func TestStorageUnavailable(t *testing.T) {
	handler := server.NewRESTHandler(service.New(&unavailableRepository{}), zap.NewNop())
	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)

	response := doJSON(t, "GET", testServer.URL+"/api/todos", nil)

	if response.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", response.StatusCode)
	}

	defer response.Body.Close()

	var body struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode error body: %v", err)
	}

	if body.Error != "Database error" {
		t.Fatalf("expected the generic database error body, got %+v", body)
	}
}

// TestRequestLogging checks that handler log entries carry the method
// and path accumulated on the request context.
func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := server.NewRESTHandler(service.New(&unavailableRepository{}), zap.New(core))
	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)

	response := doJSON(t, "GET", testServer.URL+"/api/todos", nil)
	response.Body.Close()

	failures := logs.FilterMessage("storage failure").All()

	if len(failures) != 1 {
		t.Fatalf("expected one storage failure entry, got %d", len(failures))
	}

	fields := failures[0].ContextMap()

	if fields["method"] != "GET" || fields["path"] != "/api/todos" {
		t.Fatalf("expected method and path on the entry, got %#v", fields)
	}

	requests := logs.FilterMessage("request").All()

	if len(requests) != 1 {
		t.Fatalf("expected one request entry, got %d", len(requests))
	}

	if status, ok := requests[0].ContextMap()["status"].(int64); !ok || status != http.StatusInternalServerError {
		t.Fatalf("expected status 500 on the request entry, got %#v", requests[0].ContextMap())
	}
}
