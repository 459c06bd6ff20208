package testserver

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/catalog"
	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/memstore"
	"github.com/mergington/activities/internal/transport"
)

// TestServer bundles an httptest server over a fresh in-memory registry
// seeded with the default catalog.
type TestServer struct {
	Server  *httptest.Server
	Store   *memstore.Store
	Service *activity.Service
}

// New builds a TestServer. Each call gets an isolated registry, so tests
// never need clear-and-reset semantics.
func New(t *testing.T) *TestServer {
	t.Helper()

	seed, err := catalog.Default()
	require.NoError(t, err)

	store := memstore.New(seed)
	svc := activity.NewService(store, nil)
	server := httptest.NewServer(transport.NewServer(svc, nil))

	t.Cleanup(server.Close)

	return &TestServer{
		Server:  server,
		Store:   store,
		Service: svc,
	}
}
