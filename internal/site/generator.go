package site

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
)

// SiteGenerator renders every page's initial view into a static HTML site.
type SiteGenerator struct {
	Env       pages.Env
	OutputDir string
	SiteTitle string

	// DataDir, when set, is copied to <output>/data so the built site keeps
	// its JSON resources next to the pages.
	DataDir string

	StaticDir     string
	StaticInclude []string
	StaticExclude []string

	Reporter progress.Reporter
	Logger   *zap.Logger
}

// Result summarises one build.
type Result struct {
	Pages         int
	DetailPages   int
	SearchEntries int
	Assets        int
	// Failed lists pages written with their error placeholder.
	Failed []string
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	SiteTitle   string
	Page        string
	Nav         []navItem
	Content     template.HTML
	BasePath    string
	Interactive bool
	Year        int
}

// Generate builds the full static site. A page whose data fails to load is
// still written, showing its error placeholder.
func (g *SiteGenerator) Generate(ctx context.Context) (*Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop()
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	all := pages.All()
	reporter.Start(len(all) + 1)

	res := &Result{}
	var index []SearchEntry
	for i, p := range all {
		tree, entries, err := g.openPage(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Error("page load failed", zap.String("page", p.Name), zap.Error(err))
			res.Failed = append(res.Failed, p.Name)
			tree = p.FailedTree()
		}
		index = append(index, BuildSearchIndex(p, entries)...)

		if err := g.writePage(tmpl, p.Path, p.Name, p.Title, p.Interactive, tree); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", p.Path, err)
		}
		res.Pages++
		reporter.Update(i+1, p.Title)
	}

	details, err := pages.ProjectDetails(ctx, g.Env)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("project detail pages skipped", zap.Error(err))
	}
	for _, d := range details {
		if err := g.writePage(tmpl, d.Path, "projects", d.Title, false, d.Tree); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", d.Path, err)
		}
		res.DetailPages++
	}
	reporter.Update(len(all)+1, "Project details")

	if err := WriteSearchIndex(index, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}
	res.SearchEntries = len(index)

	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return nil, err
	}

	if g.DataDir != "" {
		n, err := copyMatching(g.DataDir, filepath.Join(g.OutputDir, "data"), []string{"**/*.json"}, nil)
		if err != nil {
			return nil, fmt.Errorf("copying data: %w", err)
		}
		res.Assets += n
	}
	if g.StaticDir != "" {
		n, err := copyMatching(g.StaticDir, g.OutputDir, g.StaticInclude, g.StaticExclude)
		if err != nil {
			return nil, fmt.Errorf("copying static assets: %w", err)
		}
		res.Assets += n
	}

	reporter.Finish()
	logger.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("pages", res.Pages),
		zap.Int("detail_pages", res.DetailPages),
		zap.Int("assets", res.Assets),
		zap.Strings("failed", res.Failed))
	return res, nil
}

// openPage loads p and returns its initial tree and records.
func (g *SiteGenerator) openPage(ctx context.Context, p pages.Page) (*render.Node, []pages.Entry, error) {
	v, err := p.Open(ctx, g.Env)
	if err != nil {
		return nil, nil, err
	}
	return v.Tree(), v.All(), nil
}

// writePage renders tree into the page shell at rel under the output dir.
func (g *SiteGenerator) writePage(tmpl *template.Template, rel, page, title string, interactive bool, tree *render.Node) error {
	content, err := render.HTML(tree)
	if err != nil {
		return err
	}

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	basePath := basePathFor(rel)
	data := pageData{
		Title:       title,
		SiteTitle:   g.SiteTitle,
		Page:        page,
		Nav:         buildNav(page, basePath),
		Content:     template.HTML(content),
		BasePath:    basePath,
		Interactive: interactive,
		Year:        time.Now().Year(),
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}
