package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/jwt"
	"github.com/streamhive/streamhive-api/internal/middlewares"
	"github.com/streamhive/streamhive-api/internal/pagination"
	"github.com/streamhive/streamhive-api/internal/services"
)

// principal returns the authenticated caller. Handlers behind the required
// auth middleware can rely on it being present.
func principal(ctx context.Context) (uuid.UUID, error) {
	id, ok := middlewares.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, services.ErrUnauthenticated
	}
	return id, nil
}

// viewer returns the caller on optional-auth routes, nil when anonymous.
func viewer(ctx context.Context) *uuid.UUID {
	if id, ok := middlewares.GetUserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}

func pageParams(r *http.Request) pagination.Params {
	q := r.URL.Query()
	return pagination.Parse(q.Get("page"), q.Get("limit"))
}

// formUpload extracts one uploaded file from a parsed multipart form, nil
// when the field is absent.
func formUpload(r *http.Request, field string) *services.Upload {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	return &services.Upload{Filename: header.Filename, File: file}
}

func setAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.AccessCookie,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.RefreshCookie,
		Value:    refresh,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{jwt.AccessCookie, jwt.RefreshCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
