package formatter

import (
	"testing"
	"time"

	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimerStatus_Idle(t *testing.T) {
	out := FormatTimerStatus(&service.TimerStatus{}, "")
	assert.Contains(t, out, "No timer running")
	assert.Contains(t, out, "timetrack start")
}

func TestFormatTimerStatus_Running(t *testing.T) {
	entry := &domain.TimeEntry{
		ID:          "e1",
		TaskID:      "task-abcdef123",
		StartTime:   time.Now().Add(-90 * time.Minute),
		Description: "deep work",
	}
	status := &service.TimerStatus{Running: true, Entry: entry, ElapsedSec: 5430}

	out := FormatTimerStatus(status, "Design review")
	assert.Contains(t, out, "RUNNING")
	assert.Contains(t, out, "Design review")
	assert.Contains(t, out, "deep work")
	assert.Contains(t, out, "01:30:30")
}

func TestFormatTimerStatus_FallsBackToTaskID(t *testing.T) {
	entry := &domain.TimeEntry{ID: "e1", TaskID: "task-1", StartTime: time.Now()}
	out := FormatTimerStatus(&service.TimerStatus{Running: true, Entry: entry}, "")
	assert.Contains(t, out, "task-1")
}
