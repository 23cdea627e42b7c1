// Package fetch pulls raw chord sheets from song pages with a
// headless browser. Chord sites render the sheet inside a <pre>
// element; the fetcher grabs the longest one and falls back to the
// page body text when none exists.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/jvesely/go-songtex/internal/process"
)

// Sentinel errors for browser acquisition failures.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageLoad       = errors.New("failed to load page")
	ErrNoContent      = errors.New("page has no text content")
)

// consentButton is the cookie banner used by the chord sites; clicking
// it is best-effort since not every page shows one.
const consentButton = "#didomi-notice-agree-button"

// consentWait bounds how long we look for the cookie banner.
const consentWait = 3 * time.Second

// Fetcher abstracts chord sheet retrieval to allow testing without a browser.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// Compile-time interface check
var _ Fetcher = (*BrowserFetcher)(nil)

// BrowserFetcher fetches chord sheets with headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type BrowserFetcher struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// New creates a BrowserFetcher with the given page load timeout. The
// browser starts lazily on first Fetch.
func New(timeout time.Duration) *BrowserFetcher {
	return &BrowserFetcher{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (f *BrowserFetcher) ensureBrowser() error {
	if f.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	f.launcher = l
	f.browser = browser
	return nil
}

// Close releases browser resources, reaping leftover Chromium helpers.
func (f *BrowserFetcher) Close() error {
	if f.browser == nil {
		return nil
	}
	err := f.browser.Close()
	if f.launcher != nil {
		if pid := f.launcher.PID(); pid > 0 {
			process.KillProcessGroup(pid)
		}
		f.launcher.Kill()
		f.launcher = nil
	}
	f.browser = nil
	return err
}

// Fetch opens url and returns the raw chord sheet text.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := f.ensureBrowser(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer page.Close()

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	dismissConsent(page)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := extractSheet(page)
	if err != nil {
		return "", fmt.Errorf("%s: %w", url, err)
	}
	return text, nil
}

// dismissConsent clicks the cookie banner if one shows up.
func dismissConsent(page *rod.Page) {
	el, err := page.Timeout(consentWait).Element(consentButton)
	if err != nil {
		return
	}
	_ = el.Click(proto.InputMouseButtonLeft, 1)
}

// extractSheet returns the text of the longest <pre> element, or the
// body text when the page has none.
func extractSheet(page *rod.Page) (string, error) {
	pres, err := page.Elements("pre")
	if err == nil && len(pres) > 0 {
		best := ""
		for _, el := range pres {
			txt, err := el.Text()
			if err != nil {
				continue
			}
			if len(txt) > len(best) {
				best = txt
			}
		}
		if strings.TrimSpace(best) != "" {
			return best, nil
		}
	}

	body, err := page.Element("body")
	if err != nil {
		return "", ErrNoContent
	}
	txt, err := body.Text()
	if err != nil || strings.TrimSpace(txt) == "" {
		return "", ErrNoContent
	}
	return txt, nil
}
