package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rskv-p/trie/pkg/x_trie"
	"github.com/rskv-p/trie/server"
)

func newTestServer(t *testing.T, words ...string) *httptest.Server {
	t.Helper()
	terminated := make([][]byte, 0, len(words))
	for _, w := range words {
		terminated = append(terminated, x_trie.Terminated(w))
	}
	tr, err := x_trie.Create(x_trie.KindArray, "", terminated...)
	require.NoError(t, err)

	ts := httptest.NewServer(server.New(tr).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postWord(t *testing.T, ts *httptest.Server, path, word string) *http.Response {
	t.Helper()
	body := `{"word": ` + quote(word) + `}`
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func result(t *testing.T, resp *http.Response) bool {
	t.Helper()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Result bool `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Result
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "array", out["variant"])
}

func TestInsertContainsDelete(t *testing.T) {
	ts := newTestServer(t)

	assert.True(t, result(t, postWord(t, ts, "/api/insert", "hello")))
	assert.False(t, result(t, postWord(t, ts, "/api/insert", "hello")))

	resp, err := http.Get(ts.URL + "/api/contains?word=hello")
	require.NoError(t, err)
	assert.True(t, result(t, resp))

	assert.True(t, result(t, postWord(t, ts, "/api/delete", "hello")))
	assert.False(t, result(t, postWord(t, ts, "/api/delete", "hello")))

	resp, err = http.Get(ts.URL + "/api/contains?word=hello")
	require.NoError(t, err)
	assert.False(t, result(t, resp))
}

func TestContainsMissingParam(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/contains")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestForeignCharacterRejected(t *testing.T) {
	ts := newTestServer(t)

	resp := postWord(t, ts, "/api/insert", "white space")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["error"], "alphabet")
}

func TestContainsEmptyWordIsTerminatorLookup(t *testing.T) {
	ts := newTestServer(t, "")

	resp, err := http.Get(ts.URL + "/api/contains?word=" + url.QueryEscape(""))
	require.NoError(t, err)
	assert.True(t, result(t, resp))
}

func TestDump(t *testing.T) {
	ts := newTestServer(t, "ab")

	resp, err := http.Get(ts.URL + "/api/dump")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "root")
	assert.Contains(t, string(body), "└──a")
	assert.Contains(t, string(body), "└──$")
}

func TestBadJSONBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/insert", "application/json", strings.NewReader("{oops"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
