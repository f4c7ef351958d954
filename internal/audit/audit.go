package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// OperationType represents the type of operation performed
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
	OperationDelete OperationType = "DELETE"
	OperationRead   OperationType = "READ"
)

// ResourceType represents the type of resource being accessed
type ResourceType string

const (
	ResourceAppointment  ResourceType = "appointment"
	ResourceHealthMetric ResourceType = "health_metric"
	ResourceReport       ResourceType = "report"
	ResourceUser         ResourceType = "user"
)

// DefaultCapacity is the number of entries kept when NewLogger is given a non-positive capacity
const DefaultCapacity = 1000

// AuditLog represents an audit log entry
type AuditLog struct {
	UserID         string
	OperationType  OperationType
	ResourceType   ResourceType
	ResourceID     string
	Timestamp      time.Time
	IPAddress      string
	UserAgent      string
	AdditionalData map[string]interface{}
}

// Actor identifies who performed an operation
type Actor struct {
	UserID    string
	IPAddress string
	UserAgent string
}

type actorKey struct{}

// WithActor stores the actor of the current request in ctx
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor
func ActorFromContext(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}

// Logger writes audit entries to the structured log and keeps the most
// recent ones in a bounded in-memory ring
type Logger struct {
	logger *zap.Logger

	mu       sync.Mutex
	entries  []AuditLog
	next     int
	full     bool
	capacity int
}

// NewLogger creates a new audit logger
func NewLogger(capacity int, logger *zap.Logger) *Logger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Logger{
		logger:   logger,
		entries:  make([]AuditLog, capacity),
		capacity: capacity,
	}
}

// Log creates an audit log entry
func (l *Logger) Log(ctx context.Context, entry AuditLog) {
	// Set timestamp if not provided
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	l.logger.Info("Audit log entry",
		zap.String("user_id", entry.UserID),
		zap.String("operation", string(entry.OperationType)),
		zap.String("resource_type", string(entry.ResourceType)),
		zap.String("resource_id", entry.ResourceID),
		zap.Time("timestamp", entry.Timestamp),
		zap.String("ip_address", entry.IPAddress),
		zap.String("user_agent", entry.UserAgent),
	)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[l.next] = entry
	l.next = (l.next + 1) % l.capacity
	if l.next == 0 {
		l.full = true
	}
}

func (l *Logger) logOperation(ctx context.Context, op OperationType, resourceType ResourceType, resourceID string) {
	actor := ActorFromContext(ctx)
	l.Log(ctx, AuditLog{
		UserID:        actor.UserID,
		OperationType: op,
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		IPAddress:     actor.IPAddress,
		UserAgent:     actor.UserAgent,
	})
}

// LogCreate logs a CREATE operation by the actor in ctx
func (l *Logger) LogCreate(ctx context.Context, resourceType ResourceType, resourceID string) {
	l.logOperation(ctx, OperationCreate, resourceType, resourceID)
}

// LogUpdate logs an UPDATE operation by the actor in ctx
func (l *Logger) LogUpdate(ctx context.Context, resourceType ResourceType, resourceID string) {
	l.logOperation(ctx, OperationUpdate, resourceType, resourceID)
}

// LogDelete logs a DELETE operation by the actor in ctx
func (l *Logger) LogDelete(ctx context.Context, resourceType ResourceType, resourceID string) {
	l.logOperation(ctx, OperationDelete, resourceType, resourceID)
}

// Recent returns up to limit entries, newest first. A non-positive limit returns all retained entries.
func (l *Logger) Recent(limit int) []AuditLog {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := l.next
	if l.full {
		size = l.capacity
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]AuditLog, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (l.next - 1 - i + l.capacity) % l.capacity
		out = append(out, l.entries[idx])
	}
	return out
}
