// Copyright (c) 2026 Tigerlilly. All rights reserved.

package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tigerlilly/api/internal/platform/ctxutil"
	"github.com/tigerlilly/api/internal/platform/sec"
)

// TokenVerifier validates a raw bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// # Identity Resolution

// Authenticate resolves the caller's identity from the Authorization header
// and stores it in the request context.
//
// Resolution is tolerant: a missing, malformed, or invalid token never fails
// the request. The caller simply proceeds as anonymous and the route guards
// decide whether anonymity is acceptable.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			header := request.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// Accept "Bearer <token>" case-insensitively; anything else is
			// treated as anonymous rather than rejected.
			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Route Guards

// RequireAuth rejects anonymous callers with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			writeError(writer, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin rejects callers without the admin flag with 401.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil || !claims.IsAdmin {
			writeError(writer, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireSelfOrAdmin permits admins, and non-admins whose identity matches the
// named route parameter. The parameter may hold either the caller's username
// or their numeric user id.
//
// Before the ownership check, any "isAdmin" key in a JSON body from a
// non-admin caller is stripped, so a user editing their own record cannot
// grant themselves the admin flag.
func RequireSelfOrAdmin(paramName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if !claims.IsAdmin {
				stripAdminField(request)
			}

			if claims.IsAdmin {
				next.ServeHTTP(writer, request)
				return
			}

			value := chi.URLParam(request, paramName)
			if value == claims.Username || value == strconv.Itoa(claims.UserID) {
				next.ServeHTTP(writer, request)
				return
			}

			writeError(writer, http.StatusUnauthorized, "Unauthorized")
		})
	}
}

// stripAdminField removes "isAdmin" from a JSON request body in place.
// Non-JSON bodies (including multipart uploads) pass through untouched.
func stripAdminField(request *http.Request) {
	if request.Body == nil {
		return
	}

	contentType := request.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return
	}

	raw, err := io.ReadAll(request.Body)
	request.Body.Close()
	if err != nil {
		request.Body = io.NopCloser(bytes.NewReader(nil))
		return
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		// Leave malformed bodies for the handler's decoder to report.
		request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	if _, found := body["isAdmin"]; !found {
		request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	delete(body, "isAdmin")
	rewritten, err := json.Marshal(body)
	if err != nil {
		request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	request.Body = io.NopCloser(bytes.NewReader(rewritten))
	request.ContentLength = int64(len(rewritten))
}
