package integrationtests

import (
	"net/http/httptest"
	"sync"
	"testing"

	"auction-console/internal/api"
	"auction-console/internal/app"
	"auction-console/internal/stubserver"

	"github.com/gin-gonic/gin"
)

// startBackend serves a seeded stub backend and returns a client for it.
func startBackend(t *testing.T) (*api.Client, *stubserver.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := stubserver.NewStore()
	store.Seed()
	srv := httptest.NewServer(stubserver.SetupRouter(store))
	t.Cleanup(srv.Close)

	return api.NewClient(srv.URL), store
}

// recordingDisplay is a goroutine-safe display for end-to-end runs where
// the app's dispatcher renders from its own goroutine.
type recordingDisplay struct {
	mu      sync.Mutex
	regions map[app.Region]string
	dialogs int
	hides   int
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{regions: make(map[app.Region]string)}
}

func (d *recordingDisplay) SetRegion(region app.Region, fragment string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.regions[region] = fragment
}

func (d *recordingDisplay) ClearRegion(region app.Region) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.regions, region)
}

func (d *recordingDisplay) ShowSection(app.Section) {}

func (d *recordingDisplay) ShowDialog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dialogs++
}

func (d *recordingDisplay) HideDialog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hides++
}

func (d *recordingDisplay) region(region app.Region) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regions[region]
}

func (d *recordingDisplay) dialogCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dialogs
}

func (d *recordingDisplay) hideCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hides
}
