package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Checklist() ChecklistRepository
	ChangeLog() ChangeLogRepository

	Close() error
}
