package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/httputil"
)

// DefaultTimeout bounds a single resolve call. The user service is expected to
// begin responding well within this window; a slower response is treated as an
// outage rather than waited out.
const DefaultTimeout = 10 * time.Second

// Client resolves numeric user ids to Author snapshots via the remote user
// service. One Resolve is one network attempt: no retries, no caching, no
// fallback value on failure.
type Client interface {
	// Resolve fetches the author identified by userID.
	// Error families, distinguishable with errors.Is:
	//   - domain.ErrNotFound: the directory answered with a domain 404;
	//     the message carries the directory's own detail text
	//   - domain.ErrRemoteUnavailable: timeout, connection failure, or an
	//     unexpected upstream status
	Resolve(ctx context.Context, userID int64) (*models.Author, error)
}

// HTTPClient is the production Client backed by the user service HTTP API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a directory client for the user service at baseURL.
// A non-positive timeout falls back to DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// summaryInfoResponse is the user service's success body for summary-info.
type summaryInfoResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Profile  struct {
		ProfileName string `json:"profileName"`
	} `json:"profile"`
}

// errorResponse is the user service's structured error body.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Resolve implements Client.
func (c *HTTPClient) Resolve(ctx context.Context, userID int64) (*models.Author, error) {
	url := fmt.Sprintf("%s/users/summary-info?user_id=%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create summary-info request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Charset", "utf-8")
	if token := httputil.BearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and refused connections land here; the caller must see an
		// upstream failure, never a silent empty author.
		c.logger.Warn("user directory unreachable", "user_id", userID, "error", err)
		return nil, &domain.RemoteUnavailableError{
			Message: fmt.Sprintf("resolve user %d: user directory unreachable: %v", userID, err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteUnavailableError{
			Message: fmt.Sprintf("resolve user %d: read directory response: %v", userID, err),
		}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode below
	case resp.StatusCode == http.StatusNotFound:
		var errResp errorResponse
		detail := fmt.Sprintf("user %d not found", userID)
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			detail = errResp.Detail
		}
		return nil, &domain.NotFoundError{Message: detail}
	default:
		c.logger.Warn("user directory returned unexpected status",
			"user_id", userID,
			"status", resp.StatusCode,
		)
		return nil, &domain.RemoteError{
			Message:        fmt.Sprintf("resolve user %d: user directory returned status %d", userID, resp.StatusCode),
			UpstreamStatus: resp.StatusCode,
			Body:           string(body),
		}
	}

	var info summaryInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, &domain.RemoteError{
			Message:        fmt.Sprintf("resolve user %d: decode directory response: %v", userID, err),
			UpstreamStatus: resp.StatusCode,
			Body:           string(body),
		}
	}

	role := models.Role(info.Profile.ProfileName)
	if !role.Valid() {
		// Unknown profiles get the lowest authority rather than failing the
		// whole workflow over a directory-side rename.
		c.logger.Warn("unknown profile name from user directory",
			"user_id", userID,
			"profile", info.Profile.ProfileName,
		)
		role = models.RoleBasic
	}

	return &models.Author{
		ID:       info.ID,
		Username: info.Username,
		Email:    info.Email,
		Role:     role,
	}, nil
}
