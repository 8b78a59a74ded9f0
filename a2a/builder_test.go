package a2a

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
}

func TestBuilder_Success(t *testing.T) {
	b := NewBuilder(WithIDGenerator(sequentialIDs("id")), WithClock(fixedClock))

	inbound := NewMessage(MessageRoleUser, NewTextPart("apple"))
	inbound.MessageID = "m-in"
	inbound.TaskID = "t-in"

	resp := b.Success(SuccessParams{
		RequestID: json.RawMessage(`"req-1"`),
		Text:      "Nutrition information for apple",
		Data:      map[string]any{"foodName": "apple"},
		History:   []Message{inbound},
	})

	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, `"req-1"`, string(resp.ID))

	task := resp.Result
	assert.Equal(t, "task", task.Kind)
	assert.Equal(t, "id-1", task.ContextID)
	assert.Equal(t, "id-2", task.ID)
	assert.Equal(t, TaskStateCompleted, task.Status.State)
	assert.Equal(t, "2024-05-01T10:30:00Z", task.Status.Timestamp)
	require.NotNil(t, task.Status.Message)
	assert.Equal(t, MessageRoleAgent, task.Status.Message.Role)
	assert.Equal(t, []Part{NewTextPart("Nutrition information for apple")}, task.Status.Message.Parts)

	require.Len(t, task.Artifacts, 2)
	assert.Equal(t, DefaultTextArtifactName, task.Artifacts[0].Name)
	assert.Equal(t, []Part{NewTextPart("Nutrition information for apple")}, task.Artifacts[0].Parts)
	assert.Equal(t, DefaultDataArtifactName, task.Artifacts[1].Name)
	assert.Equal(t, []Part{NewDataPart(map[string]any{"foodName": "apple"})}, task.Artifacts[1].Parts)

	require.Len(t, task.History, 2)
	assert.Equal(t, inbound, task.History[0])
	last := task.History[1]
	assert.Equal(t, MessageRoleAgent, last.Role)
	assert.Equal(t, "id-2", last.TaskID)
	assert.Equal(t, "id-1", last.ContextID)
	assert.NotEqual(t, task.Status.Message.MessageID, last.MessageID)
}

func TestBuilder_Success_GeneratedIDsAreDistinct(t *testing.T) {
	b := NewBuilder()

	resp := b.Success(SuccessParams{RequestID: json.RawMessage(`1`), Text: "x"})

	task := resp.Result
	seen := map[string]bool{}
	for _, id := range []string{
		task.ID,
		task.ContextID,
		task.Status.Message.MessageID,
		task.Artifacts[0].ArtifactID,
		task.Artifacts[1].ArtifactID,
		task.History[0].MessageID,
	} {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "id %q reused", id)
		seen[id] = true
	}
}

func TestBuilder_Success_KeepsSuppliedIDs(t *testing.T) {
	b := NewBuilder(WithIDGenerator(sequentialIDs("id")))

	resp := b.Success(SuccessParams{
		RequestID:        json.RawMessage(`"r"`),
		ContextID:        "ctx",
		TaskID:           "task",
		Text:             "x",
		TextArtifactName: "Text",
		DataArtifactName: "Data",
	})

	assert.Equal(t, "task", resp.Result.ID)
	assert.Equal(t, "ctx", resp.Result.ContextID)
	assert.Equal(t, "Text", resp.Result.Artifacts[0].Name)
	assert.Equal(t, "Data", resp.Result.Artifacts[1].Name)
	assert.Equal(t, "id-2", resp.Result.Artifacts[0].ArtifactID)
}

func TestBuilder_Error(t *testing.T) {
	b := NewBuilder()

	t.Run("with details", func(t *testing.T) {
		out, err := json.Marshal(b.Error(json.RawMessage(`"r"`), CodeInternalError, "Internal error", "boom"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"jsonrpc":"2.0","id":"r","error":{"code":-32603,"message":"Internal error","data":{"details":"boom"}}}`, string(out))
	})

	t.Run("without details and null id", func(t *testing.T) {
		out, err := json.Marshal(b.Error(nil, CodeInvalidRequest, "Invalid Request", ""))
		require.NoError(t, err)
		assert.JSONEq(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32600,"message":"Invalid Request"}}`, string(out))
	})
}
