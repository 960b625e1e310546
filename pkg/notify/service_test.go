package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_DisabledWithoutConfig(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{}))
	assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-x"}))
	assert.Nil(t, NewService(ServiceConfig{Channel: "C123"}))
	assert.NotNil(t, NewService(ServiceConfig{Token: "xoxb-x", Channel: "C123"}))
}

func TestNilServiceIsNoOp(t *testing.T) {
	var s *Service
	// Must not panic.
	s.NotifyJobFinished(context.Background(), JobFinishedInput{JobID: "j", Status: "completed"})
	s.NotifyJobWaiting(context.Background(), JobWaitingInput{JobID: "j", Question: "q"})
}

func TestNotifyJobFinished(t *testing.T) {
	var gotText, gotChannel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChannel = r.Form.Get("channel")
		gotText = r.Form.Get("text")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "channel": gotChannel, "ts": "1"})
	}))
	defer srv.Close()

	s := NewServiceWithAPIURL("xoxb-test", "C123", srv.URL+"/")
	s.NotifyJobFinished(context.Background(), JobFinishedInput{
		JobID:  "job-1",
		Status: "completed",
		Result: "all done",
	})

	assert.Equal(t, "C123", gotChannel)
	assert.Contains(t, gotText, "job-1")
	assert.Contains(t, gotText, "all done")
}

func TestNotifyJobWaiting_TruncatesLongQuestions(t *testing.T) {
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotText = r.Form.Get("text")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "ts": "1"})
	}))
	defer srv.Close()

	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'q'
	}

	s := NewServiceWithAPIURL("xoxb-test", "C123", srv.URL+"/")
	s.NotifyJobWaiting(context.Background(), JobWaitingInput{
		JobID:    "job-1",
		Question: string(long),
	})

	assert.Less(t, len(gotText), 800)
	assert.Contains(t, gotText, "job-1")
}
