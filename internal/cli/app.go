package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/adcreativex/adcreativex/internal/adlink"
	"github.com/adcreativex/adcreativex/internal/adspend"
	"github.com/adcreativex/adcreativex/internal/config"
	"github.com/adcreativex/adcreativex/internal/creatives"
	"github.com/adcreativex/adcreativex/internal/logging"
	"github.com/adcreativex/adcreativex/internal/session"
	"github.com/adcreativex/adcreativex/internal/store"

	_ "modernc.org/sqlite"
)

// DemoAdAccountID is the sample ad account the bundled performance data
// belongs to. Linking this account makes the adspend command return data.
const DemoAdAccountID = "337724845982980"

type App struct {
	config    *config.Config
	db        *sql.DB
	sessions  *session.Manager
	link      *adlink.Machine
	spend     *adspend.Service
	creatives *creatives.Service
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(c.LogLevel),
	})))

	db, err := store.OpenDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := store.NewSQLiteStore(db)

	sessions := session.NewManager(st, log,
		session.WithNotifier(ConsoleNotifier{}),
		session.WithSimulatedLatency(c.SimulatedLatency),
	)
	if err := sessions.Initialize(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	secret := []byte(c.LinkTokenSecret)
	connector := adlink.NewSimulatedConnector(secret, c.LinkTokenValidity)
	link := adlink.NewMachine(connector, log)

	provider := adspend.NewStaticProvider(secret, adspend.DemoRecords(DemoAdAccountID))
	spend := adspend.NewService(provider, link, log)

	crt := creatives.NewService(creatives.NewSQLiteRepository(db), sessions, log)

	return &App{
		config:    c,
		db:        db,
		sessions:  sessions,
		link:      link,
		spend:     spend,
		creatives: crt,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func parseLogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (a *App) isLoggedIn() bool {
	return a.sessions.CurrentUser() != nil
}

func (a *App) getStatus() string {
	u := a.sessions.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Email
	if a.link.State() == adlink.StateConnected {
		s = s + " linked"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to AdCreativeX CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
