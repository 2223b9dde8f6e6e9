package rosterapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// newTestClient serves handler under /api/test/players and returns a client for it
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/api/test/players/")
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListAllPreservesServerOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/test/players", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"error":null,"data":{"players":[
			{"id":7,"name":"Rex","breed":"Boxer","status":"field","imageUrl":"http://img/rex.png","teamId":null,"cohortId":3},
			{"id":2,"name":"Ace","breed":"Pug","status":"bench","imageUrl":"http://img/ace.png","teamId":4,"cohortId":3}
		]}}`)
	})

	players, err := client.ListAll(t.Context())
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, model.PlayerID("7"), players[0].ID)
	assert.Equal(t, "Rex", players[0].Name)
	assert.Equal(t, "Boxer", players[0].Breed)
	assert.Equal(t, "field", players[0].Status)
	assert.Equal(t, "http://img/rex.png", players[0].ImageURL)
	assert.Nil(t, players[0].TeamID)

	assert.Equal(t, model.PlayerID("2"), players[1].ID)
	require.NotNil(t, players[1].TeamID)
	assert.Equal(t, 4, *players[1].TeamID)
}

func TestListAllEmptyRoster(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"players":[]}}`)
	})

	players, err := client.ListAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestListAllMissingPlayers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{}}`)
	})

	_, err := client.ListAll(t.Context())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindMissingData, apiErr.Kind)
}

func TestListAllMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":tru`)
	})

	_, err := client.ListAll(t.Context())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindDecode, apiErr.Kind)
}

func TestListAllTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url + "/api/test/players")
	_, err := client.ListAll(t.Context())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
}

func TestGetOneAcceptsStringIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/test/players/abc-1", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"player":{"id":"abc-1","name":"Fido","breed":"Guard","status":"bench","imageUrl":"http://x/y.png"}}}`)
	})

	player, err := client.GetOne(t.Context(), "abc-1")
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID("abc-1"), player.ID)
	assert.Equal(t, "Fido", player.Name)
}

func TestGetOneNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"success":false,"error":{"name":"NotFoundError","message":"Player 9 not found"},"data":null}`)
	})

	_, err := client.GetOne(t.Context(), "9")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, "NotFoundError", apiErr.Name)
	assert.Contains(t, apiErr.Error(), "Player 9 not found")
}

func TestGetOneSuccessFalseWithOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false,"error":{"name":"ServerError","message":"boom"},"data":null}`)
	})

	_, err := client.GetOne(t.Context(), "1")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.NotErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestCreateSendsDraftAsBody(t *testing.T) {
	var received map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/test/players", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(w, http.StatusCreated, `{"success":true,"data":{"newPlayer":{"id":12,"name":"Fido","breed":"Guard","status":"bench","imageUrl":"http://x/y.png"}}}`)
	})

	player, err := client.Create(t.Context(), model.PlayerDraft{
		Name:     "Fido",
		Position: "Guard",
		ImageURL: "http://x/y.png",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"name": "Fido", "breed": "Guard", "imageUrl": "http://x/y.png"}, received)
	require.NotNil(t, player)
	assert.Equal(t, model.PlayerID("12"), player.ID)
	assert.Equal(t, "bench", player.Status)
}

func TestCreateWithoutEcho(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":null}`)
	})

	player, err := client.Create(t.Context(), model.PlayerDraft{Name: "Fido", Position: "Guard", ImageURL: "http://x/y.png"})
	require.NoError(t, err)
	assert.Nil(t, player)
}

func TestCreateValidationFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"success":false,"error":{"name":"ValidationError","message":"name is required"},"data":null}`)
	})

	player, err := client.Create(t.Context(), model.PlayerDraft{})
	assert.Nil(t, player)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "ValidationError", apiErr.Name)
}

func TestDelete(t *testing.T) {
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		writeJSON(w, http.StatusOK, `{"success":true,"error":null,"data":null}`)
	})

	err := client.Delete(t.Context(), "5")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/test/players/5", path)
}

func TestDeleteEmptyNoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.Delete(t.Context(), "5"))
}

func TestDeleteServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "upstream exploded")
	})

	err := client.Delete(t.Context(), "5")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestWithTimeoutLeavesSuppliedClientAlone(t *testing.T) {
	supplied := &http.Client{Timeout: time.Minute}

	before := NewClient("http://x/players", WithTimeout(time.Second), WithHTTPClient(supplied))
	after := NewClient("http://x/players", WithHTTPClient(supplied), WithTimeout(time.Second))

	assert.Equal(t, time.Minute, supplied.Timeout)
	assert.Equal(t, time.Second, before.httpClient.Timeout)
	assert.Equal(t, time.Second, after.httpClient.Timeout)
	assert.NotSame(t, supplied, after.httpClient)
}

func TestSuppliedClientTimeoutKeptWithoutOverride(t *testing.T) {
	client := NewClient("http://x/players", WithHTTPClient(&http.Client{Timeout: time.Minute}))
	assert.Equal(t, time.Minute, client.httpClient.Timeout)

	assert.Equal(t, DefaultTimeout, NewClient("http://x/players").httpClient.Timeout)
}

func TestTimeoutAppliesToRequests(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	client := NewClient(srv.URL+"/api/test/players", WithTimeout(50*time.Millisecond))
	_, err := client.ListAll(t.Context())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
}
