package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesRecord(t *testing.T) {
	buf, obs := logBuffer()

	observe(context.Background(), obs, "publish-lineup", time.Now(), map[string]any{"cards": 3}, nil)
	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=publish-lineup")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "cards=3")
}

func TestLogUseCaseObserver_ErrorsAndHints(t *testing.T) {
	buf, obs := logBuffer()

	observe(context.Background(), obs, "import-plan", time.Now(), nil, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")

	buf.Reset()
	observe(context.Background(), obs, "place-card", time.Now(), nil, domain.NewHint(domain.HintCapacity, "no room"))
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "hint=CAPACITY")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObservers_FanOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})

	observe(context.Background(), obs, "save-draft", time.Now(), nil, nil)
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
	assert.Equal(t, "save-draft", b.events[0].Name)

	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.Same(t, a, useCaseObserverOrNoop([]UseCaseObserver{nil, a}))
}
