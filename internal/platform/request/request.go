// Copyright (c) 2026 Tigerlilly. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/ctxutil"
	"github.com/tigerlilly/api/internal/platform/sec"
)

// maxIconMemory bounds the in-memory portion of a multipart icon upload.
const maxIconMemory = 8 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: apperr.BadRequest if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return apperr.BadRequest("Invalid JSON payload")
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as an integer.

Returns:
  - int: The parsed value
  - error: apperr.BadRequest if the parameter is not numeric
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.BadRequest("Parameter '" + name + "' must be an integer, got: " + raw)
	}
	return value, nil
}

/*
IsMultipart reports whether the request carries a multipart/form-data body.
File-bearing endpoints (user and author create/update) accept either JSON or
multipart bodies.
*/
func IsMultipart(request *http.Request) bool {
	return strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data")
}

/*
FormFile parses a multipart body and returns the named file field.

Returns:
  - multipart.File, *multipart.FileHeader: The uploaded file, or nils when
    the field is absent (the field is optional on every endpoint that has one)
  - error: apperr.BadRequest if the body cannot be parsed as multipart
*/
func FormFile(request *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if err := request.ParseMultipartForm(maxIconMemory); err != nil {
		return nil, nil, apperr.BadRequest("Invalid multipart payload")
	}
	file, header, err := request.FormFile(field)
	if err != nil {
		// Absent file field is not an error; uploads are optional.
		return nil, nil, nil
	}
	return file, header, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get user claims
	claims := ctxutil.GetAuthUser(request.Context())

	// If the user is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}
