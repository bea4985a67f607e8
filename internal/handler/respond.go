package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

// errorBody is the JSON error envelope every endpoint shares.
type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// writeError translates a domain error into the shared envelope. Non-domain
// errors surface as internal without leaking their message.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.ToHTTPStatus(code))
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:  string(code),
		Reason: dErrors.Reason(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decode parses the request body, rejecting unknown fields so typos fail
// loudly instead of registering half a record.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

// urlUUID parses a UUID path parameter.
func urlUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeBadRequest, "invalid %s", name)
	}
	return id, nil
}

// logHandlerErr keeps one log line per failed request at the right level:
// client failures are warnings, everything else is an error.
func logHandlerErr(logger *slog.Logger, r *http.Request, op string, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal || code == dErrors.CodeTimeout {
		logger.ErrorContext(r.Context(), op+" failed", "error", err)
		return
	}
	logger.WarnContext(r.Context(), op+" rejected", "error", err)
}
