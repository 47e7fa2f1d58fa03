// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication on the
// routes it wraps. It is a pass-through while no token sign key is
// configured.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token's operator in the
// request context under [utils.OperatorCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent ([ErrEmptyAuthorizationHeader]), is not a bearer header
// ([ErrInvalidAuthorizationHeader]), or carries a token that fails
// validation.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.AuthService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.OperatorCtxKey, token.Operator)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("operator", token.Operator)
		})

		next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
	})
}
