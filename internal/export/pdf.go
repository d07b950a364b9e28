package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-wizard/internal/render"
	"github.com/jonathan/resume-wizard/internal/types"
)

const pdfRenderTimeout = 60 * time.Second

// PDFSerializer prints the rendered document through headless Chrome.
type PDFSerializer struct {
	chromePath string
}

// NewPDFSerializer returns a serializer printing through headless Chrome.
// chromePath selects the browser binary; when empty the CHROME_PATH
// environment variable is consulted, then chromedp's own discovery.
func NewPDFSerializer(chromePath string) *PDFSerializer {
	return &PDFSerializer{chromePath: chromePath}
}

func (s *PDFSerializer) resolveChromePath() string {
	if s.chromePath != "" {
		return s.chromePath
	}
	return os.Getenv("CHROME_PATH")
}

func (s *PDFSerializer) Extension() string {
	return "pdf"
}

func (s *PDFSerializer) Serialize(ctx context.Context, draft *types.ResumeDraft, id types.TemplateID) ([]byte, error) {
	html, err := render.Document(id, draft)
	if err != nil {
		return nil, err
	}
	return printToPDF(ctx, html, s.resolveChromePath())
}

func printToPDF(ctx context.Context, html, chromePath string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, pdfRenderTimeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-wizard-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage document: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print document: %w", err)
	}
	return pdf, nil
}
