package gitlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLevel(t *testing.T) {
	tests := []struct {
		level    NotificationLevel
		expected string
	}{
		{NotificationInfo, "INFO"},
		{NotificationWarning, "WARNING"},
		{NotificationError, "ERROR"},
		{NotificationLevel(99), "UNKNOWN"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.level.String())
	}

	data, err := json.Marshal(Notification{Level: NotificationWarning, Title: "t"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"WARNING"`)
}

func TestSendNotification(t *testing.T) {
	ClearNotifications()
	t.Cleanup(ClearNotifications)

	logger, hook := logtest.NewNullLogger()

	tests := []struct {
		level    NotificationLevel
		logLevel log.Level
	}{
		{NotificationInfo, log.InfoLevel},
		{NotificationWarning, log.WarnLevel},
		{NotificationError, log.ErrorLevel},
	}
	for _, tc := range tests {
		SendNotification(logger, Notification{Level: tc.level, Title: "Title", Message: "msg", TokenName: "work"})
		last := hook.LastEntry()
		require.NotNil(t, last)
		assert.Equal(t, tc.logLevel, last.Level)
		assert.Equal(t, "msg", last.Message)
		assert.Equal(t, "Title", last.Data["title"])
		assert.Equal(t, "work", last.Data["token"])
	}

	stored := GetNotifications()
	require.Len(t, stored, 3)
	assert.False(t, stored[0].Timestamp.IsZero())
	assert.Equal(t, NotificationInfo, stored[0].Level)
	assert.Equal(t, NotificationError, stored[2].Level)

	ClearNotifications()
	assert.Empty(t, GetNotifications())
}

func TestNotificationStoreLimit(t *testing.T) {
	s := NewNotificationStore()
	for i := range maxNotifications + 10 {
		s.Add(Notification{Title: fmt.Sprintf("n%d", i)})
	}

	items := s.List()
	require.Len(t, items, maxNotifications)
	assert.Equal(t, "n10", items[0].Title, "oldest entries are evicted")
	assert.Equal(t, fmt.Sprintf("n%d", maxNotifications+9), items[len(items)-1].Title)

	s.Clear()
	assert.Empty(t, s.List())
	s.Add(Notification{Title: "after clear"})
	assert.Equal(t, "after clear", s.List()[0].Title)
}

func TestNotificationStoreConcurrentAccess(t *testing.T) {
	s := NewNotificationStore()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(Notification{Title: fmt.Sprintf("n%d", i)})
			_ = s.List()
		}()
	}
	wg.Wait()
	assert.Len(t, s.List(), 50)
}

func TestTokenNotifications(t *testing.T) {
	ClearNotifications()
	t.Cleanup(ClearNotifications)
	logger := quietLogger()

	notifyTokenIssue(logger, "work", errors.New("connection refused"))
	notifyTokenExpiration(logger, "old")
	notifyTokenExpiringSoon(logger, "soon", 3)
	notifyTokenValidated(logger, "good", 42, "jane")
	notifyUnauthorized(logger, "getProjects")

	n := GetNotifications()
	require.Len(t, n, 5)

	assert.Equal(t, "Token Issue Detected", n[0].Title)
	assert.Contains(t, n[0].Message, "connection refused")
	assert.Equal(t, NotificationWarning, n[0].Level)

	assert.Equal(t, "Token Expired", n[1].Title)
	assert.Equal(t, NotificationError, n[1].Level)

	assert.Equal(t, "Token Expiring Soon", n[2].Title)
	assert.Contains(t, n[2].Message, "will expire in 3 days")

	assert.Equal(t, "Token Validated", n[3].Title)
	assert.Contains(t, n[3].Message, "user jane (ID: 42)")
	assert.Equal(t, NotificationInfo, n[3].Level)

	assert.Equal(t, "Authentication Failed", n[4].Title)
	assert.Contains(t, n[4].Message, "getProjects")
	assert.Empty(t, n[4].TokenName)
}
