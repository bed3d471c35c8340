package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const maxBodyBytes = 4 << 10

func decodeRequest(w http.ResponseWriter, r *http.Request, validator RequestValidator, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request format: %w", err)
	}
	if err := validator.ValidateRequest(dst); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
