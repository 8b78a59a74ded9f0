package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spetersoncode/nutriagent"
	"github.com/spetersoncode/nutriagent/a2a"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  *struct {
		ID        string `json:"id"`
		Artifacts []struct {
			Name  string            `json:"name"`
			Parts []json.RawMessage `json:"parts"`
		} `json:"artifacts"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    *struct {
			Details string `json:"details"`
		} `json:"data"`
	} `json:"error"`
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, envelope) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestRouter(t *testing.T) {
	foods, _ := fakeFDC(t, appleFoods)
	srv := httptest.NewServer(NewRouter(passthroughHandler(t, foods)))
	defer srv.Close()

	body := string(requestBody(`"http-1"`, appleParams))

	for _, path := range []string{"/agents/nutrition-agent", "/agents/nutrition-agent/tasks/send"} {
		t.Run(path, func(t *testing.T) {
			resp, env := post(t, srv, path, body)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, a2a.JSONRPCVersion, env.JSONRPC)
			assert.JSONEq(t, `"http-1"`, string(env.ID))
			require.NotNil(t, env.Result)
			require.Len(t, env.Result.Artifacts, 2)
			assert.JSONEq(t, `{"kind":"data","data":{
				"foodName":"Apples, raw, with skin",
				"calories":52,
				"protein":"0.3 g",
				"fat":"0.2 g",
				"carbs":"13.8 g",
				"vitamins":["Vitamin C, total ascorbic acid: 4.6MG"],
				"minerals":["Potassium, K: 107MG"],
				"healthBenefits":["Rich in Vitamin C, supports immune system","Good source of Potassium, supports heart health"]
			}}`, string(env.Result.Artifacts[1].Parts[0]))
		})
	}

	t.Run("unknown agent", func(t *testing.T) {
		resp, env := post(t, srv, "/agents/other", body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		require.NotNil(t, env.Error)
		assert.Equal(t, a2a.CodeAgentNotFound, env.Error.Code)
	})

	t.Run("invalid envelope", func(t *testing.T) {
		resp, env := post(t, srv, "/agents/nutrition-agent", `{"jsonrpc":"2.0"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, a2a.CodeInvalidRequest, env.Error.Code)
		assert.Equal(t, "null", string(env.ID))
	})

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestRouter_SummaryWithoutVitaminsOmitsFields(t *testing.T) {
	foods, _ := fakeFDC(t, `{"foods":[{"description":"Water","foodNutrients":[
		{"nutrientName":"Energy","value":60,"unitName":"KCAL"}]}]}`)
	srv := httptest.NewServer(NewRouter(passthroughHandler(t, foods)))
	defer srv.Close()

	_, env := post(t, srv, "/agents/nutrition-agent", string(requestBody(`5`, appleParams)))
	require.NotNil(t, env.Result)

	var part struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(env.Result.Artifacts[1].Parts[0], &part))
	assert.NotContains(t, part.Data, "vitamins")
	assert.NotContains(t, part.Data, "minerals")
	assert.JSONEq(t, `["General source of nutrients and minerals"]`, string(part.Data["healthBenefits"]))
}

func TestFailureFor(t *testing.T) {
	tests := []struct {
		kind   nutriagent.ErrorKind
		code   int
		status int
	}{
		{nutriagent.KindInvalidEnvelope, a2a.CodeInvalidRequest, http.StatusBadRequest},
		{nutriagent.KindNotFound, a2a.CodeAgentNotFound, http.StatusNotFound},
		{nutriagent.KindUpstream, a2a.CodeInternalError, http.StatusInternalServerError},
		{nutriagent.KindInternal, a2a.CodeInternalError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		f := failureFor(tt.kind)
		assert.Equal(t, tt.code, f.code, tt.kind)
		assert.Equal(t, tt.status, f.status, tt.kind)
	}
}
