package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ibeloyar/orderapi/internal/model"
)

// readBody читает и парсит JSON тело запроса в структуру T
func readBody[T any](r *http.Request) (T, error) {
	var body T

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to parse request body: %w", err)
	}

	return body, nil
}

// writeJSON записывает ответ в формате JSON и добавляет заголовок Content-Type: application/json
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// writeError отвечает телом вида {"detail": "..."}
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	writeJSON(w, model.APIError{Message: detail}, statusCode)
}
