package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"estateBack/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

var errNoToken = errors.New("authorization header missing or invalid")

func (app *application) claimsFromRequest(r *http.Request) (*models.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errNoToken
	}
	return app.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
}

// requireUser admits any authenticated caller and stores the claims in the
// request context.
func (app *application) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := app.claimsFromRequest(r)
		if err != nil {
			http.Error(w, "Authorization header missing or invalid", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(models.ContextWithUser(r.Context(), claims)))
	})
}

func (app *application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := app.claimsFromRequest(r)
		if err != nil {
			http.Error(w, "Authorization header missing or invalid", http.StatusUnauthorized)
			return
		}
		if claims.Role != models.RoleAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r.WithContext(models.ContextWithUser(r.Context(), claims)))
	})
}

// withOptionalUser attaches claims when a valid token is present but never
// rejects the request. Used by the public listing endpoint so owners and
// admins also see pending/rejected entries.
func (app *application) withOptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := app.claimsFromRequest(r); err == nil {
			r = r.WithContext(models.ContextWithUser(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

func (app *application) rateLimitContact(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ok, err := app.limiter.Allow(r.Context(), "contact:"+host)
		if err != nil {
			app.errorLog.Printf("rate limiter: %v", err)
		}
		if !ok {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
