package gitlab

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
)

// parseExpiry accepts a date (2026-01-31) or an RFC 3339 timestamp.
func parseExpiry(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("parameter 'expiresAt' must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	return &t, nil
}

func persistFlag(request *mcp.CallToolRequest) (bool, error) {
	persist, err := OptionalBoolParam(request, "persist")
	if err != nil {
		return false, err
	}
	return persist != nil && *persist, nil
}

// notifyValidationFailure records why a stored token failed validation.
func notifyValidationFailure(logger *log.Logger, store *TokenStore, name string, err error) {
	if isTokenExpired(store, name) {
		notifyTokenExpiration(logger, name)
		return
	}
	notifyTokenIssue(logger, name, err)
}

// AddToken adds a new GitLab token configuration to the runtime pool, and to
// the OS keyring when persist is set.
func AddToken(pool *ClientPool, logger *log.Logger) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"addToken",
			mcp.WithDescription("Adds a GitLab token to the runtime token store after validating it. Set 'persist' to also save it in the OS keyring for later sessions."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Token/server name (e.g., 'work', 'personal'). Must be unique."),
			),
			mcp.WithString("token",
				mcp.Required(),
				mcp.Description("GitLab personal, project, group or OAuth access token."),
			),
			mcp.WithString("gitlabHost",
				mcp.Description("GitLab host URL (e.g., 'https://gitlab.example.com'). Defaults to the server's host."),
			),
			mcp.WithString("authType",
				mcp.Description("How the token is sent. Defaults to private-token."),
				mcp.Enum(string(AuthPrivateToken), string(AuthOAuth), string(AuthJobToken)),
			),
			mcp.WithString("expiresAt",
				mcp.Description("Optional expiry date of the token (YYYY-MM-DD). Used for expiry warnings."),
			),
			mcp.WithBoolean("persist",
				mcp.Description("Also store the token in the OS keyring."),
			),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := requiredParam[string](&request, "name")
			if err != nil {
				return validationError(err), nil
			}
			token, err := requiredParam[string](&request, "token")
			if err != nil {
				return validationError(err), nil
			}
			gitlabHost, err := OptionalParam[string](&request, "gitlabHost")
			if err != nil {
				return validationError(err), nil
			}
			authTypeArg, err := OptionalParam[string](&request, "authType")
			if err != nil {
				return validationError(err), nil
			}
			authType, err := ParseAuthType(authTypeArg)
			if err != nil {
				return validationError(err), nil
			}
			expiresAtArg, err := OptionalParam[string](&request, "expiresAt")
			if err != nil {
				return validationError(err), nil
			}
			expiresAt, err := parseExpiry(expiresAtArg)
			if err != nil {
				return validationError(err), nil
			}
			persist, err := persistFlag(&request)
			if err != nil {
				return validationError(err), nil
			}

			if _, err := pool.Store().GetToken(name); err == nil {
				return mcp.NewToolResultError(fmt.Sprintf("Token '%s' already exists. Use updateToken to change it.", name)), nil
			}
			if gitlabHost == "" {
				gitlabHost = pool.BaseOptions().BaseURL()
			}
			metadata := &TokenMetadata{
				Name:       name,
				GitLabHost: NormalizeHost(gitlabHost),
				AuthType:   authType,
				ExpiresAt:  expiresAt,
			}
			metadata.SetToken(token)

			glClient, err := pool.NewClient(metadata)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create GitLab client: %v", err)), nil
			}

			user, err := currentUserOf(ctx, name, glClient)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Token validation failed: %v", err)), nil
			}
			metadata.UserID = int64(user.ID)
			metadata.Username = user.Username
			metadata.LastValidated = time.Now()

			if err := pool.Register(name, metadata, glClient); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to store token: %v", err)), nil
			}

			notifyTokenValidated(logger, name, metadata.UserID, metadata.Username)
			if metadata.ExpiresSoon() {
				notifyTokenExpiringSoon(logger, name, metadata.DaysUntilExpiry())
			}

			result := map[string]any{
				"success":    true,
				"message":    fmt.Sprintf("Token '%s' added and validated successfully", name),
				"tokenName":  name,
				"userId":     metadata.UserID,
				"username":   metadata.Username,
				"gitlabHost": metadata.GitLabHost,
				"persisted":  false,
			}
			if persist {
				if err := SaveKeyringToken(name, token, metadata.GitLabHost, authType); err != nil {
					result["persistError"] = err.Error()
				} else {
					result["persisted"] = true
				}
			}
			return marshalResult(result)
		}
}

// ListTokens lists all configured tokens with their status
func ListTokens(tokenStore *TokenStore) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"listTokens",
			mcp.WithDescription("Lists all configured GitLab tokens with their validation status and metadata. Token values are never shown."),
			mcp.WithToolAnnotation(mcp.ToolAnnotation{
				Title:        "List Tokens",
				ReadOnlyHint: mcp.ToBoolPtr(true),
			}),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			names := tokenStore.Names()
			if len(names) == 0 {
				return marshalResult(map[string]any{
					"tokens":  []any{},
					"message": "No tokens configured. Tokens come from GITLAB_TOKEN, the OS keyring or the addToken tool.",
				})
			}

			tokens := tokenStore.ListTokens()
			tokensList := make([]map[string]any, 0, len(names))
			for _, name := range names {
				metadata := tokens[name]
				tokenInfo := map[string]any{
					"name":            name,
					"gitlabHost":      metadata.GitLabHost,
					"authType":        metadata.AuthType,
					"userId":          metadata.UserID,
					"username":        metadata.Username,
					"createdAt":       metadata.CreatedAt,
					"lastValidated":   metadata.LastValidated,
					"isExpired":       metadata.IsExpired(),
					"daysUntilExpiry": metadata.DaysUntilExpiry(),
				}
				if metadata.ExpiresAt != nil {
					tokenInfo["expiresAt"] = metadata.ExpiresAt
				}
				tokensList = append(tokensList, tokenInfo)
			}

			return marshalResult(map[string]any{
				"tokens":  tokensList,
				"count":   len(tokensList),
				"message": fmt.Sprintf("Found %d configured token(s)", len(tokensList)),
			})
		}
}

// UpdateToken updates an existing token configuration
func UpdateToken(pool *ClientPool, logger *log.Logger) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"updateToken",
			mcp.WithDescription("Updates an existing GitLab token. Validates the new token before updating."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Token name to update."),
			),
			mcp.WithString("token",
				mcp.Description("New token value. If not provided, only revalidates the existing token."),
			),
			mcp.WithString("expiresAt",
				mcp.Description("New expiry date of the token (YYYY-MM-DD)."),
			),
			mcp.WithBoolean("persist",
				mcp.Description("Also store the updated token in the OS keyring."),
			),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := requiredParam[string](&request, "name")
			if err != nil {
				return validationError(err), nil
			}
			newToken, err := OptionalParam[string](&request, "token")
			if err != nil {
				return validationError(err), nil
			}
			expiresAtArg, err := OptionalParam[string](&request, "expiresAt")
			if err != nil {
				return validationError(err), nil
			}
			expiresAt, err := parseExpiry(expiresAtArg)
			if err != nil {
				return validationError(err), nil
			}
			persist, err := persistFlag(&request)
			if err != nil {
				return validationError(err), nil
			}

			existing, err := pool.Store().GetToken(name)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Token '%s' not found: %v", name, err)), nil
			}

			token := newToken
			if token == "" {
				if token, err = existing.Token(); err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
			}

			metadata := &TokenMetadata{
				Name:       name,
				GitLabHost: existing.GitLabHost,
				AuthType:   existing.AuthType,
				ExpiresAt:  existing.ExpiresAt,
				CreatedAt:  existing.CreatedAt,
			}
			if expiresAt != nil {
				metadata.ExpiresAt = expiresAt
			}
			metadata.SetToken(token)

			glClient, err := pool.NewClient(metadata)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create GitLab client: %v", err)), nil
			}
			// A rejected replacement leaves the stored token untouched.
			var userID int64
			var username string
			if newToken != "" {
				user, err := currentUserOf(ctx, name, glClient)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Token validation failed: %v", err)), nil
				}
				userID, username = int64(user.ID), user.Username
			} else {
				validated, err := pool.Store().ValidateToken(ctx, name, glClient)
				if err != nil {
					notifyValidationFailure(logger, pool.Store(), name, err)
					return mcp.NewToolResultError(fmt.Sprintf("Token validation failed: %v", err)), nil
				}
				userID, username = validated.UserID, validated.Username
			}
			metadata.UserID = userID
			metadata.Username = username
			metadata.LastValidated = time.Now()

			if err := pool.Register(name, metadata, glClient); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update token: %v", err)), nil
			}

			notifyTokenValidated(logger, name, metadata.UserID, metadata.Username)
			if metadata.ExpiresSoon() {
				notifyTokenExpiringSoon(logger, name, metadata.DaysUntilExpiry())
			}

			result := map[string]any{
				"success":   true,
				"message":   fmt.Sprintf("Token '%s' updated successfully", name),
				"tokenName": name,
				"userId":    metadata.UserID,
				"username":  metadata.Username,
				"updated":   newToken != "",
			}
			if persist {
				if err := SaveKeyringToken(name, token, metadata.GitLabHost, metadata.AuthType); err != nil {
					result["persistError"] = err.Error()
				} else {
					result["persisted"] = true
				}
			}
			return marshalResult(result)
		}
}

// ValidateToken manually validates a token (or all tokens)
func ValidateToken(pool *ClientPool, logger *log.Logger) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"validateToken",
			mcp.WithDescription("Manually validates a GitLab token by calling the GitLab API. If no token name is provided, validates all configured tokens."),
			mcp.WithString("name",
				mcp.Description("Token name to validate. If not provided, validates all tokens."),
			),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			tokenName, err := OptionalParam[string](&request, "name")
			if err != nil {
				return validationError(err), nil
			}

			if tokenName == "" {
				results := pool.ValidateAllClients(ctx)

				successCount := 0
				for _, r := range results {
					if r.Success {
						successCount++
					}
				}
				failureCount := len(results) - successCount

				return marshalResult(map[string]any{
					"results":      results,
					"total":        len(results),
					"successCount": successCount,
					"failureCount": failureCount,
					"message":      fmt.Sprintf("Validated %d token(s): %d succeeded, %d failed", len(results), successCount, failureCount),
				})
			}

			client, err := pool.ClientFor(tokenName)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create client: %v", err)), nil
			}

			validated, err := pool.Store().ValidateToken(ctx, tokenName, client)
			if err != nil {
				notifyValidationFailure(logger, pool.Store(), tokenName, err)
				return mcp.NewToolResultError(fmt.Sprintf("Token validation failed: %v", err)), nil
			}

			notifyTokenValidated(logger, tokenName, validated.UserID, validated.Username)
			if validated.ExpiresSoon() {
				notifyTokenExpiringSoon(logger, tokenName, validated.DaysUntilExpiry())
			}

			return marshalResult(map[string]any{
				"success":     true,
				"tokenName":   tokenName,
				"userId":      validated.UserID,
				"username":    validated.Username,
				"expiresSoon": validated.ExpiresSoon(),
				"message":     fmt.Sprintf("Token '%s' is valid", tokenName),
			})
		}
}

// GetNotificationsTool returns recent notifications
func GetNotificationsTool() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"getNotifications",
			mcp.WithDescription("Returns recent notifications about token issues, validation results, and other important messages, oldest first."),
			mcp.WithNumber("limit",
				mcp.Description("Return only the most recent N notifications. 0 returns all."),
			),
			mcp.WithToolAnnotation(mcp.ToolAnnotation{
				Title:        "Get Notifications",
				ReadOnlyHint: mcp.ToBoolPtr(true),
			}),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			limit, err := OptionalIntParamWithDefault(&request, "limit", 0)
			if err != nil {
				return validationError(err), nil
			}
			if limit < 0 {
				return validationError(fmt.Errorf("parameter 'limit' must not be negative")), nil
			}

			notifications := GetNotifications()
			if len(notifications) == 0 {
				return marshalResult(map[string]any{
					"notifications": []Notification{},
					"message":       "No notifications",
				})
			}
			if limit > 0 && len(notifications) > limit {
				notifications = notifications[len(notifications)-limit:]
			}

			return marshalResult(map[string]any{
				"notifications": notifications,
				"count":         len(notifications),
			})
		}
}

// ClearNotificationsTool clears all stored notifications
func ClearNotificationsTool() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"clearNotifications",
			mcp.WithDescription("Clears all stored notifications."),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ClearNotifications()
			return marshalResult(map[string]any{
				"success": true,
				"message": "All notifications cleared",
			})
		}
}

// RemoveToken removes a token from the runtime store
func RemoveToken(pool *ClientPool) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"removeToken",
			mcp.WithDescription("Removes a token from the runtime token store. Set 'persist' to also delete it from the OS keyring."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Token name to remove."),
			),
			mcp.WithBoolean("persist",
				mcp.Description("Also delete the token from the OS keyring."),
			),
			mcp.WithDestructiveHintAnnotation(true),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := requiredParam[string](&request, "name")
			if err != nil {
				return validationError(err), nil
			}
			persist, err := persistFlag(&request)
			if err != nil {
				return validationError(err), nil
			}

			if err := pool.Unregister(name); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to remove token: %v", err)), nil
			}

			result := map[string]any{
				"success": true,
				"message": fmt.Sprintf("Token '%s' removed from runtime store", name),
			}
			if persist {
				if err := DeleteKeyringToken(name); err != nil {
					result["persistError"] = err.Error()
				} else {
					result["removedFromKeyring"] = true
				}
			}
			return marshalResult(result)
		}
}
