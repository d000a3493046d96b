package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/wamique00786/wesalvator/pkg/e"
	"github.com/wamique00786/wesalvator/pkg/validator"
)

const maxJSONBody = 1 << 20

// DecodeJSON reads a JSON body into T and validates it. Both failures wrap
// e.ErrInvalidInput.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var target T

	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(&target); err != nil {
		return target, fmt.Errorf("%w: invalid JSON", e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(target); err != nil {
		return target, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	return target, nil
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
