package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/clarify"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Default window size for opened pages.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

var _ clarify.Fetcher = (*Browser)(nil)

// Browser owns a headless Chrome process and opens pages in it.
//
// Browser is safe for concurrent use. Documents opened from it are not:
// use one Document per page.
type Browser struct {
	width, height int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   atomic.Bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithViewport sets the window size of opened pages.
func WithViewport(width, height int) BrowserOption {
	return func(b *Browser) {
		if width > 0 {
			b.width = width
		}
		if height > 0 {
			b.height = height
		}
	}
}

// NewBrowser launches a headless Chrome browser.
// Close must be called when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{
		width:  DefaultViewportWidth,
		height: DefaultViewportHeight,
	}
	for _, opt := range opts {
		opt(b)
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = lnchr
	return b, nil
}

// Open navigates a new page to url, waits for it to load and returns it as
// a Document. The caller closes the Document.
func (b *Browser) Open(ctx context.Context, url string) (*Document, error) {
	page, err := b.load(ctx, url)
	if err != nil {
		return nil, err
	}
	return NewDocument(page), nil
}

// Fetch navigates to url and returns the rendered HTML.
func (b *Browser) Fetch(ctx context.Context, url string) (string, error) {
	page, err := b.load(ctx, url)
	if err != nil {
		return "", err
	}
	defer page.Close()

	html, err := page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("reading HTML: %w", err)
	}
	return html, nil
}

func (b *Browser) load(ctx context.Context, url string) (*rod.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	browser := b.browser
	b.mu.Unlock()
	if browser == nil {
		return nil, clarify.Errorf(clarify.EINVALID, "browser is closed")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	p := page.Context(ctx)
	err = p.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             b.width,
		Height:            b.height,
		DeviceScaleFactor: 1,
	})
	if err == nil {
		err = p.Navigate(url)
	}
	if err == nil {
		err = p.WaitLoad()
	}
	if err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("loading %s: %w", url, err)
	}
	return page, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}
