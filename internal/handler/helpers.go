package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"forumhub/internal/domain"
	"forumhub/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
//
// Anything implementing domain.HTTPError carries its own status; that keeps
// the four error families distinct at the boundary (404 not-found, 418 policy
// denial, 422 business-rule conflict, 502 directory failure) without a switch
// per family here. Unknown errors become an opaque 500.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var remoteErr *domain.RemoteError
	if errors.As(err, &remoteErr) {
		// Keep the upstream body out of the response but in the log.
		logger.Error("user directory failure",
			"method", r.Method,
			"path", r.URL.Path,
			"upstream_status", remoteErr.UpstreamStatus,
			"upstream_body", remoteErr.Body,
		)
		httputil.RespondError(w, remoteErr.StatusCode(), remoteErr.Error())
		return
	}

	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), err.Error())
		return
	}

	if errors.Is(err, domain.ErrUnauthorized) {
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	logger.Error("unhandled error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}

// actorID extracts the authenticated actor from the request context.
// The auth middleware guarantees it is set on every protected route.
func actorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := httputil.ActorID(r.Context())
	if id == 0 {
		httputil.RespondError(w, http.StatusUnauthorized, "missing authenticated user")
		return 0, false
	}
	return id, true
}
