package factory

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/mcoot/puppybowl-roster/internal/api"
	"github.com/mcoot/puppybowl-roster/internal/dependencies/mocks"
	"github.com/mcoot/puppybowl-roster/internal/rosterapi"
	"github.com/mcoot/puppybowl-roster/internal/storage"
	"github.com/mcoot/puppybowl-roster/internal/storage/memory"
	"github.com/mcoot/puppybowl-roster/internal/testutil"
)

// TestCohort is the cohort the test Players API serves
const TestCohort = "test-cohort"

// TestApp extends App with a local Players API for the UI to talk to
type TestApp struct {
	*App

	// Server hosts the local Players API over Storage
	Server  *httptest.Server
	Storage storage.Storage
	// Requests records every call the UI makes to the Players API
	Requests *testutil.RequestRecorder

	MockClock *mocks.MockClock
}

// NewTestApp creates an App whose roster client talks to an in-process
// Players API backed by memory storage. Close shuts both down.
func NewTestApp() *TestApp {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	recorder := testutil.NewRequestRecorder(api.NewRouter(api.RouterConfig{
		Logger:  logger,
		Storage: store,
		Clock:   mockClock,
	}))
	server := httptest.NewServer(recorder)

	client := rosterapi.NewClient(PlayersURL(server.URL), rosterapi.WithLogger(logger))

	return &TestApp{
		App:       newWithDependencies(client, logger),
		Server:    server,
		Storage:   store,
		Requests:  recorder,
		MockClock: mockClock,
	}
}

// PlayersURL returns the players collection of the test cohort on a local API
func PlayersURL(serverURL string) string {
	return serverURL + "/api/" + TestCohort + "/players"
}

// Close shuts down the local Players API and the App
func (t *TestApp) Close() {
	t.Server.Close()
	t.App.Close()
}
