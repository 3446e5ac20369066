// ABOUTME: Wiring of catalog loader, store and theme manager plus the command bodies
// ABOUTME: Each command loads the catalog first; only pick tolerates a failed load

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nats-io/nats.go"

	"github.com/mauromedda/themeswitch/internal/catalog"
	"github.com/mauromedda/themeswitch/internal/config"
	xhttp "github.com/mauromedda/themeswitch/internal/http"
	"github.com/mauromedda/themeswitch/internal/log"
	"github.com/mauromedda/themeswitch/internal/picker"
	"github.com/mauromedda/themeswitch/internal/store"
	"github.com/mauromedda/themeswitch/internal/termfix"
	"github.com/mauromedda/themeswitch/internal/thememgr"
	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

type app struct {
	cfg     *config.Settings
	source  string
	loader  catalog.Loader
	mgr     *thememgr.Manager
	closers []func()
}

func newApp(ctx context.Context, cfg *config.Settings) (*app, error) {
	a := &app{cfg: cfg, source: catalogSource(cfg.Catalog)}

	loader, err := catalog.Open(a.source)
	if err != nil {
		return nil, err
	}
	a.loader = loader

	st, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.mgr = thememgr.New(thememgr.Options{
		DefaultThemeID: cfg.DefaultTheme,
		StorageKey:     cfg.StorageKey,
		Loader:         loader,
		Store:          st,
		Reporter:       log.Reporter("thememgr"),
	})
	a.closers = append(a.closers, a.mgr.Close)
	a.mgr.Subscribe(func(e thememgr.Event) {
		termfix.SetDark(!e.Found || e.Theme.IsDark)
	})
	return a, nil
}

// catalogSource falls back to ~/.themeswitch/themes when it exists, then to
// the built-in catalog.
func catalogSource(configured string) string {
	if configured != "" {
		return configured
	}
	if info, err := os.Stat(config.ThemesDir()); err == nil && info.IsDir() {
		return config.ThemesDir()
	}
	return "builtin"
}

func (a *app) openStore(ctx context.Context) (store.Store, error) {
	sc := a.cfg.Store
	switch sc.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendNATS:
		nc, err := nats.Connect(sc.NATSURL, nats.Name("themeswitch"), nats.Timeout(5*time.Second))
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %w", sc.NATSURL, err)
		}
		a.closers = append(a.closers, nc.Close)
		kv, err := store.OpenNATSKV(ctx, nc, sc.Bucket)
		if err != nil {
			return nil, err
		}
		log.Debug("store: nats bucket %q at %s", sc.Bucket, sc.NATSURL)
		return kv, nil
	default:
		log.Debug("store: file %s", sc.Path)
		return store.NewFile(sc.Path), nil
	}
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *app) pick(ctx context.Context, watch bool) error {
	// Logs would corrupt the alternate screen; send them to a file instead.
	if f, err := openLogFile(); err == nil {
		log.SetOutput(f)
		defer func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}()
	}

	model := picker.New(a.mgr, func() error { return a.mgr.LoadCatalog(ctx) })
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	bridge := picker.NewBridge(a.mgr, p)
	defer bridge.Stop()

	if watch {
		stopWatch := a.watch(ctx)
		defer stopWatch()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func openLogFile() (*os.File, error) {
	dir := config.GlobalDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "themeswitch.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// watch reloads the catalog whenever its files change.
func (a *app) watch(ctx context.Context) (stop func()) {
	if len(config.SourceFiles(a.source)) == 0 {
		log.Info("watch: nothing to watch for catalog %q", a.source)
		return func() {}
	}
	w := config.NewSourceWatcher(a.source, func() {
		log.Info("watch: catalog changed, reloading")
		a.mgr.LoadCatalogAsync(ctx)
	})
	w.Start()
	return w.Stop
}

func (a *app) list(ctx context.Context, out io.Writer, width int, tty bool) error {
	if err := a.mgr.LoadCatalog(ctx); err != nil {
		return err
	}
	if !tty {
		_, err := io.WriteString(out, picker.ListMarkdown(a.mgr.Catalog(), a.mgr.ActiveID()))
		return err
	}
	_, err := fmt.Fprintln(out, picker.RenderList(a.mgr.Catalog(), a.mgr.ActiveID(), width, a.mgr.IsDarkMode()))
	return err
}

func (a *app) current(ctx context.Context, out io.Writer) error {
	// A failed load still leaves a usable answer: the unresolved id.
	_ = a.mgr.LoadCatalog(ctx)
	return printActive(out, a.mgr)
}

func (a *app) step(ctx context.Context, out io.Writer, move func() bool) error {
	if err := a.mgr.LoadCatalog(ctx); err != nil {
		return err
	}
	if !move() {
		return errors.New("catalog is empty")
	}
	return printActive(out, a.mgr)
}

func (a *app) set(ctx context.Context, out io.Writer, id string) error {
	if err := a.mgr.LoadCatalog(ctx); err != nil {
		return err
	}
	if !a.mgr.Select(id) {
		return fmt.Errorf("%w: %q", thememgr.ErrUnknownTheme, id)
	}
	return printActive(out, a.mgr)
}

func printActive(out io.Writer, mgr *thememgr.Manager) error {
	t, ok := mgr.Current()
	if !ok {
		t = theme.Theme{ID: mgr.ActiveID(), IsDark: true}
	}
	suffix := ""
	if !ok {
		suffix = " (not in catalog)"
	}
	_, err := fmt.Fprintf(out, "%s\t%s\t%s%s\n", t.ID, t.Label(), t.Mode(), suffix)
	return err
}

func (a *app) serve(ctx context.Context, watch bool) error {
	if watch {
		stopWatch := a.watch(ctx)
		defer stopWatch()
	}

	srv := xhttp.SecureHTTPServer(catalog.Handler(a.loader), a.cfg.Listen)
	errCh := make(chan error, 1)
	go func() {
		log.Info("serving catalog %q on http://%s%s", a.source, a.cfg.Listen, catalog.DefaultPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
