package memory

import (
	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	checklist *checklistRepository
	changeLog *changeLogRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		checklist: newChecklistRepository(),
		changeLog: newChangeLogRepository(),
	}
}

func (m *Memory) Checklist() interfaces.ChecklistRepository {
	return m.checklist
}

func (m *Memory) ChangeLog() interfaces.ChangeLogRepository {
	return m.changeLog
}

func (m *Memory) Close() error {
	return nil
}
