package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/config"
	"github.com/dmitrijs2005/photokeeper/internal/client/db"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/photokeeper/internal/client/services"
	"github.com/dmitrijs2005/photokeeper/internal/client/session"
	"github.com/dmitrijs2005/photokeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client and drives the REPL. All state lives in the
// services; the App itself only translates typed commands into service calls
// and renders the results.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session

	auth       services.AuthService
	library    services.LibraryService
	uploads    services.UploadService
	duplicates services.DuplicateService
	albums     services.AlbumService
	poller     *services.Poller

	reader *bufio.Reader
	out    io.Writer

	// lastGroups is the duplicate listing most recently shown; "resolve"
	// addresses groups by their position in it.
	lastGroups []models.DuplicateGroup
}

// NewApp initializes the cache database, restores the persisted session, and
// wires every service to a shared API client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	database, err := db.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sess := session.New(metadata.NewSQLiteRepository(database))
	client := api.NewHTTPClient(c.ServerEndpointAddr, sess, log)

	library := services.NewLibraryService(client, database, log)

	app := &App{
		config:     c,
		log:        log,
		session:    sess,
		auth:       services.NewAuthService(client, sess),
		library:    library,
		uploads:    services.NewUploadService(client, library, log),
		duplicates: services.NewDuplicateService(client, library, log),
		albums:     services.NewAlbumService(client),
		poller:     services.NewPoller(library, sess, c.PollInterval, log),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}

	if err := app.auth.Restore(ctx); err != nil {
		return nil, fmt.Errorf("error restoring session: %w", err)
	}
	return app, nil
}

// Run starts the background poller and blocks in the REPL until the user
// exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	go a.poller.Run(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Token()
	return ok
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return "(authenticated)"
}
