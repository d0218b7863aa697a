package projects_testing

import (
	"sync"

	projects_models "matchme/internal/features/projects/models"

	"github.com/google/uuid"
)

// MapCache implements projects_interfaces.ProjectCache.
type MapCache struct {
	mu    sync.Mutex
	items map[string]projects_models.Project
}

func NewMapCache() *MapCache {
	return &MapCache{items: map[string]projects_models.Project{}}
}

func (c *MapCache) Get(key string) *projects_models.Project {
	c.mu.Lock()
	defer c.mu.Unlock()

	project, ok := c.items[key]
	if !ok {
		return nil
	}

	return &project
}

func (c *MapCache) Set(key string, project *projects_models.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = *project
}

func (c *MapCache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.items, key)
	}
}

type AuditLogRecorder struct {
	mu       sync.Mutex
	Messages []string
}

func (r *AuditLogRecorder) WriteAuditLog(message string, _ *uuid.UUID, _ *uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Messages = append(r.Messages, message)
}

type SentNotification struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Type        string
	ReferenceID *uuid.UUID
}

type NotificationRecorder struct {
	mu   sync.Mutex
	Sent []SentNotification
}

func (r *NotificationRecorder) SendNotification(
	senderID, recipientID uuid.UUID,
	notificationType string,
	referenceID *uuid.UUID,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sent = append(r.Sent, SentNotification{
		SenderID:    senderID,
		RecipientID: recipientID,
		Type:        notificationType,
		ReferenceID: referenceID,
	})

	return nil
}
