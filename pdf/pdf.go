// Copyright 2025 The textkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pdf prints HTML and Markdown to PDF with a headless Chrome.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/textkit-dev/textkit/convert"
)

// ErrClosed is returned by conversions on a closed [Converter].
var ErrClosed = errors.New("pdf: converter is closed")

// Converter prints documents with a browser process that is started once and reused by all
// conversions. It is safe for concurrent use. Call [Converter.Close] to stop the browser.
type Converter struct {
	opts          options
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewConverter starts a headless browser.
func NewConverter(opts ...Option) (*Converter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if o.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(o.chromePath))
	}
	if o.noSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// The first Run starts the browser.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("pdf: starting browser: %w", err)
	}

	return &Converter{
		opts:          o,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close stops the browser. Conversions still in flight fail. Close is idempotent.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.browserCancel()
	c.allocCancel()
	return nil
}

// FromMarkdown renders src as a standalone HTML page and prints it, see [Converter.FromHTML].
func (c *Converter) FromMarkdown(ctx context.Context, src string, pg *Page) ([]byte, error) {
	doc, err := convert.MarkdownToDocument("Markdown Document", src)
	if err != nil {
		return nil, err
	}
	return c.FromHTML(ctx, doc, pg)
}

// FromHTML prints the HTML document src and returns the PDF. A nil page means [DefaultPage].
func (c *Converter) FromHTML(ctx context.Context, src string, pg *Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := DefaultPage
	if pg != nil {
		p = *pg
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	tabCtx, cancel, err := c.newTab(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	width, height := p.dimensions()
	margin := p.margin()

	var buf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, src).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(margin).
				WithMarginRight(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("pdf: printing: %w", err)
	}
	return buf, nil
}

// newTab opens a browser tab that is closed when ctx is done, the timeout expires or the
// returned cancel function is called.
func (c *Converter) newTab(ctx context.Context) (context.Context, context.CancelFunc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil, ErrClosed
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	cancel := tabCancel
	if c.opts.timeout > 0 {
		var timeoutCancel context.CancelFunc
		tabCtx, timeoutCancel = context.WithTimeout(tabCtx, c.opts.timeout)
		cancel = func() {
			timeoutCancel()
			tabCancel()
		}
	}
	stop := context.AfterFunc(ctx, cancel)
	return tabCtx, func() {
		stop()
		cancel()
	}, nil
}
