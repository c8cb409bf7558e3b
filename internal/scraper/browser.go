package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	DefaultLoadMoreSelector = "a.fsLoadMoreButton, button.load-more, a.load-more"
	DefaultSettleDelay      = 2 * time.Second
	DefaultStepTimeout      = 30 * time.Second
)

// BrowserOptions configures a BrowserPager
type BrowserOptions struct {
	URL              string
	ExecPath         string // empty uses the Chrome found on PATH
	UserAgent        string
	LoadMoreSelector string
	SettleDelay      time.Duration // wait after each click for rows to render
	StepTimeout      time.Duration
}

// BrowserPager is a Pager backed by a headless Chrome session
type BrowserPager struct {
	opts BrowserOptions

	browserCtx context.Context
	cancel     context.CancelFunc
}

// NewBrowserPager creates a pager. No browser starts until Open.
func NewBrowserPager(opts BrowserOptions) *BrowserPager {
	if opts.LoadMoreSelector == "" {
		opts.LoadMoreSelector = DefaultLoadMoreSelector
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = DefaultStepTimeout
	}
	return &BrowserPager{opts: opts}
}

// Open launches the browser, loads the schedule page and returns its HTML
func (p *BrowserPager) Open(ctx context.Context) (string, error) {
	if p.browserCtx != nil {
		return "", errors.New("browser pager already open")
	}

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if p.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p.opts.ExecPath))
	}
	if p.opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(p.opts.UserAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	p.browserCtx = browserCtx
	p.cancel = func() {
		cancelBrowser()
		cancelAlloc()
	}

	// the browser lives as long as the context of the first Run, so start it
	// on browserCtx rather than on a step timeout
	if err := chromedp.Run(p.browserCtx); err != nil {
		return "", fmt.Errorf("starting browser: %w", err)
	}

	stepCtx, cancel := context.WithTimeout(p.browserCtx, p.opts.StepTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(stepCtx,
		chromedp.Navigate(p.opts.URL),
		chromedp.WaitReady("table", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("loading %s in browser: %w", p.opts.URL, err)
	}

	return html, nil
}

// LoadMore clicks the load-more control once and returns the expanded HTML.
// It reports false when the control is gone, hidden or disabled.
func (p *BrowserPager) LoadMore(ctx context.Context) (bool, string, error) {
	if p.browserCtx == nil {
		return false, "", errors.New("browser pager not open")
	}
	if err := ctx.Err(); err != nil {
		return false, "", err
	}

	stepCtx, cancel := context.WithTimeout(p.browserCtx, p.opts.StepTimeout+p.opts.SettleDelay)
	defer cancel()

	var clickable bool
	if err := chromedp.Run(stepCtx, chromedp.Evaluate(clickableScript(p.opts.LoadMoreSelector), &clickable)); err != nil {
		return false, "", fmt.Errorf("checking load more control: %w", err)
	}
	if !clickable {
		return false, "", nil
	}

	var html string
	err := chromedp.Run(stepCtx,
		chromedp.Click(p.opts.LoadMoreSelector, chromedp.ByQuery),
		chromedp.Sleep(p.opts.SettleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return false, "", fmt.Errorf("clicking load more: %w", err)
	}

	return true, html, nil
}

// Close shuts the browser down
func (p *BrowserPager) Close() error {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		p.browserCtx = nil
	}
	return nil
}

func clickableScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	return !!el && el.offsetParent !== null && !el.disabled && !el.classList.contains("disabled");
})()`, selector)
}
