package web

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		res := Success(map[string]string{"name": "General"})
		require.True(t, res.OK)
		require.Empty(t, res.Message)

		body, err := json.Marshal(res)
		require.NoError(t, err)
		require.JSONEq(t, `{"ok":true,"data":{"name":"General"}}`, string(body))
	})

	t.Run("Info", func(t *testing.T) {
		res := Info("no cash accounts registered", []string{})
		require.True(t, res.OK)
		require.Equal(t, "no cash accounts registered", res.Message)
	})

	t.Run("Error", func(t *testing.T) {
		res := Error(errors.New("boom"))
		require.False(t, res.OK)
		require.Equal(t, "boom", res.Message)

		body, err := json.Marshal(res)
		require.NoError(t, err)
		require.JSONEq(t, `{"ok":false,"message":"boom"}`, string(body))
	})
}
