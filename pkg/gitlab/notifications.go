package gitlab

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// NotificationLevel defines the severity of a notification
type NotificationLevel int

const (
	NotificationInfo NotificationLevel = iota
	NotificationWarning
	NotificationError
)

// maxNotifications bounds the in-memory history.
const maxNotifications = 100

// String returns the string representation of the notification level
func (n NotificationLevel) String() string {
	switch n {
	case NotificationInfo:
		return "INFO"
	case NotificationWarning:
		return "WARNING"
	case NotificationError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText makes levels readable in tool output.
func (n NotificationLevel) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Notification represents a message to both AI and user
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	TokenName string            `json:"tokenName,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NotificationStore keeps the most recent notifications in a ring.
type NotificationStore struct {
	mu    sync.Mutex
	items []Notification
	start int
}

// NewNotificationStore creates an empty store.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{items: make([]Notification, 0, maxNotifications)}
}

// Add stores n, evicting the oldest entry once the store is full.
func (s *NotificationStore) Add(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) < maxNotifications {
		s.items = append(s.items, n)
		return
	}
	s.items[s.start] = n
	s.start = (s.start + 1) % maxNotifications
}

// List returns the notifications oldest first.
func (s *NotificationStore) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, 0, len(s.items))
	out = append(out, s.items[s.start:]...)
	out = append(out, s.items[:s.start]...)
	return out
}

// Clear drops every notification.
func (s *NotificationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items[:0]
	s.start = 0
}

var notificationStore = NewNotificationStore()

// SendNotification sends a notification to the user (via stderr) and stores it for AI retrieval
func SendNotification(logger *log.Logger, notif Notification) {
	notif.Timestamp = time.Now()
	if logger == nil {
		logger = log.StandardLogger()
	}

	entry := logger.WithField("title", notif.Title)
	if notif.TokenName != "" {
		entry = entry.WithField("token", notif.TokenName)
	}
	switch notif.Level {
	case NotificationError:
		entry.Error(notif.Message)
	case NotificationWarning:
		entry.Warn(notif.Message)
	default:
		entry.Info(notif.Message)
	}

	notificationStore.Add(notif)
}

// GetNotifications returns all stored notifications
func GetNotifications() []Notification {
	return notificationStore.List()
}

// ClearNotifications clears all stored notifications
func ClearNotifications() {
	notificationStore.Clear()
}

// notifyTokenIssue sends a notification about token problems
func notifyTokenIssue(logger *log.Logger, tokenName string, err error) {
	SendNotification(logger, Notification{
		Level:     NotificationWarning,
		Title:     "Token Issue Detected",
		Message:   fmt.Sprintf("Token '%s' has a problem: %v", tokenName, err),
		TokenName: tokenName,
	})
}

// notifyTokenExpiration sends a notification about expired token
func notifyTokenExpiration(logger *log.Logger, tokenName string) {
	SendNotification(logger, Notification{
		Level:     NotificationError,
		Title:     "Token Expired",
		Message:   fmt.Sprintf("Token '%s' is expired or invalid. Please update it using the updateToken tool or reconfigure the MCP server.", tokenName),
		TokenName: tokenName,
	})
}

// notifyTokenExpiringSoon sends a warning about token expiring soon
func notifyTokenExpiringSoon(logger *log.Logger, tokenName string, daysUntilExpiry int) {
	SendNotification(logger, Notification{
		Level:     NotificationWarning,
		Title:     "Token Expiring Soon",
		Message:   fmt.Sprintf("Token '%s' will expire in %d days. Please create a new token and update it.", tokenName, daysUntilExpiry),
		TokenName: tokenName,
	})
}

// notifyTokenValidated sends a success message about token validation
func notifyTokenValidated(logger *log.Logger, tokenName string, userID int64, username string) {
	SendNotification(logger, Notification{
		Level:     NotificationInfo,
		Title:     "Token Validated",
		Message:   fmt.Sprintf("Token '%s' validated successfully for user %s (ID: %d)", tokenName, username, userID),
		TokenName: tokenName,
	})
}

// notifyUnauthorized records a 401 answered to a tool call.
func notifyUnauthorized(logger *log.Logger, toolName string) {
	SendNotification(logger, Notification{
		Level:   NotificationError,
		Title:   "Authentication Failed",
		Message: fmt.Sprintf("GitLab rejected the token used by %s (401). Update it with updateToken or reconfigure the server.", toolName),
	})
}
