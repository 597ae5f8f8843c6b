package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/service"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/response"
)

const maxBodyBytes = 1 << 20

// serve decodes a JSON request, runs fn and writes the envelope.
func serve[Req any, Res any](w http.ResponseWriter, r *http.Request, fn func(context.Context, *Req) (*Res, error)) {
	var req Req
	domain.Prefill(&req)
	if err := decodeJSON(r, &req); err != nil {
		response.FromError(w, err)
		return
	}

	result, err := fn(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, result)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))

	err := decoder.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return customError.WrapValidation("body", "request body is required")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return customError.WrapValidation(field, fmt.Sprintf("%s has the wrong type, expected %s", field, typeErr.Type))
	default:
		return customError.WrapValidation("body", "invalid JSON body: "+err.Error())
	}
}

// UserMiddleware attaches the X-User-ID header to the request context so
// calculations can be attributed in the history.
func UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := strings.TrimSpace(r.Header.Get("X-User-ID")); userID != "" {
			r = r.WithContext(service.WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}
