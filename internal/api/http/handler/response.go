package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
)

const maxBodyBytes = 1 << 20

type resultEnvelope struct {
	Result any `json:"result"`
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apierror.New(apierror.InvalidInput, "request body too large", err)
		}
		return apierror.New(apierror.InvalidInput, "malformed JSON body", err)
	}

	return nil
}

func writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resultEnvelope{Result: result})
}

// handleError writes the error envelope. Causes of internal errors are logged, never sent.
func handleError(w http.ResponseWriter, r *http.Request, logger *logger.Logger, err error) {
	apiErr := apierror.From(err)
	if apiErr.Kind == apierror.Internal {
		logger.Error("Handler: request failed",
			"path", r.URL.Path,
			"error", err.Error())
	}
	apiErr.Write(w)
}
