package materials_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	uierrors "github.com/eduardgagite/portfolio/internal/app/features/errors"
	"github.com/eduardgagite/portfolio/internal/app/features/materials"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/markdown"
	"github.com/eduardgagite/portfolio/internal/app/system/prefs"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

// fakeSource serves an in-memory index and content blobs.
type fakeSource struct {
	mu       sync.Mutex
	index    []byte
	indexErr error
	content  map[string][]byte
}

func (f *fakeSource) ReadIndex(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index, f.indexErr
}

func (f *fakeSource) ReadContent(ctx context.Context, p string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.content[p]
	if !ok {
		return nil, errors.Newf("not found: %s", p)
	}
	return data, nil
}

func (f *fakeSource) String() string { return "fake" }

func entry(cat, sec, slug string, lang models.Lang, title string, order int) models.MaterialMeta {
	rel := cat + "/" + sec + "/" + slug + "." + string(lang)
	return models.MaterialMeta{
		Frontmatter: models.Frontmatter{
			Title:         title,
			Category:      cat,
			CategoryTitle: strings.ToUpper(cat),
			Section:       sec,
			SectionTitle:  strings.ToUpper(sec),
			Level:         "beginner",
			Order:         models.IntPtr(order),
			Tags:          []string{cat},
		},
		ID:          models.MaterialID{Category: cat, Section: sec, Slug: slug, Lang: lang},
		Path:        "/content/materials/" + rel + ".md",
		ContentPath: "/materials-content/" + rel + ".json",
	}
}

func newSource(t *testing.T) *fakeSource {
	t.Helper()
	entries := []models.MaterialMeta{
		entry("redis", "basics", "intro", models.LangRU, "Введение", 1),
		entry("redis", "basics", "intro", models.LangEN, "Intro", 1),
		entry("redis", "basics", "keys", models.LangRU, "Ключи", 2),
		entry("docker", "images", "build", models.LangRU, "Сборка", 1),
	}
	index, err := json.Marshal(models.GeneratedIndex{Entries: entries})
	require.NoError(t, err)

	content := make(map[string][]byte)
	for _, e := range entries {
		blob, err := json.Marshal(models.ContentBlob{Content: "# " + e.Title + "\n\n![diagram](diagram.png)\n"})
		require.NoError(t, err)
		content[e.ContentPath] = blob
	}
	return &fakeSource{index: index, content: content}
}

type fixture struct {
	router http.Handler
	prefs  *prefs.Manager
	src    *fakeSource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	src := newSource(t)

	pm, err := prefs.NewManager(testKey, "", "", false, logger)
	require.NoError(t, err)

	site := seo.NewSite("https://example.test", "")
	h := materials.NewHandler(
		catalog.NewLoader(src, logger),
		pm,
		markdown.New(markdown.DefaultStyle),
		site,
		uierrors.NewErrorLogger(logger, site),
		logger,
	)

	r := chi.NewRouter()
	r.Use(i18n.Middleware(func(r *http.Request) models.Lang { return pm.Load(r).Lang }, models.LangRU))
	r.Get("/assets/highlight.css", h.ServeHighlightCSS)
	r.Get("/sitemap.xml", h.ServeSitemap)
	r.Mount("/materials", materials.Routes(h))
	return &fixture{router: r, prefs: pm, src: src}
}

// serve runs the request, tolerating the panic an unbooted template engine
// causes once the handler gets to rendering.
func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		f.router.ServeHTTP(rec, req)
	}()
	return rec
}

func withCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestServeArticle_ShorthandRedirectKeepsQuery(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis?lang=en&q=intro", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/materials/redis/basics/intro?lang=en&q=intro", rec.Header().Get("Location"))
}

func TestServeArticle_SectionRedirect(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/materials/docker/images", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/materials/docker/images/build", rec.Header().Get("Location"))
}

func TestServeArticle_UnknownPathIsNotFound(t *testing.T) {
	f := newFixture(t)

	for _, p := range []string{
		"/materials/nope",
		"/materials/redis/nope",
		"/materials/redis/basics/nope",
		"/materials/redis/basics/intro/extra",
	} {
		t.Run(p, func(t *testing.T) {
			rec := f.serve(httptest.NewRequest(http.MethodGet, p, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestServeArticle_IndexFailureIsUnavailable(t *testing.T) {
	f := newFixture(t)
	f.src.indexErr = errors.New("boom")

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis/basics/intro", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestServeArticle_RemembersPathAndOpensSidebar(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis/basics/keys", nil))
	require.NotEmpty(t, rec.Result().Cookies(), "article should persist preferences")

	p := f.prefs.Load(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.Equal(t, "/materials/redis/basics/keys", p.LastPathFor(models.LangRU))
	assert.Empty(t, p.LastPathFor(models.LangEN))
	assert.True(t, p.Sidebar.CategoryOpen("redis"))
	assert.True(t, p.Sidebar.SectionOpen("redis", "basics"))
	assert.False(t, p.Sidebar.CategoryOpen("docker"))
}

func TestServeArticle_ExplicitLangIsPersisted(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis/basics/intro?lang=en", nil))

	p := f.prefs.Load(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.Equal(t, models.LangEN, p.Lang)
	assert.Equal(t, "/materials/redis/basics/intro", p.LastPathFor(models.LangEN))
}

func TestServeLanding_RedirectsToLastPath(t *testing.T) {
	f := newFixture(t)
	visit := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis/basics/keys", nil))

	rec := f.serve(withCookies(httptest.NewRequest(http.MethodGet, "/materials", nil), visit))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/materials/redis/basics/keys?lang=ru", rec.Header().Get("Location"))
}

func TestServeLanding_FiltersSuppressRedirect(t *testing.T) {
	f := newFixture(t)
	visit := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis/basics/keys", nil))

	rec := f.serve(withCookies(httptest.NewRequest(http.MethodGet, "/materials?q=docker", nil), visit))

	assert.Empty(t, rec.Header().Get("Location"))
	assert.NotEqual(t, http.StatusFound, rec.Code)
}

func TestServeLanding_LastPathIsPerLanguage(t *testing.T) {
	f := newFixture(t)
	visit := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis/basics/keys", nil))

	rec := f.serve(withCookies(httptest.NewRequest(http.MethodGet, "/materials?lang=en", nil), visit))

	assert.Empty(t, rec.Header().Get("Location"), "ru history must not drive the en landing")
}

func TestServeLanding_StaleLastPathIgnored(t *testing.T) {
	f := newFixture(t)
	visit := f.serve(httptest.NewRequest(http.MethodGet, "/materials/redis/basics/keys", nil))

	// The article disappears from the catalog.
	f2 := newFixture(t)
	index, err := json.Marshal(models.GeneratedIndex{Entries: []models.MaterialMeta{
		entry("docker", "images", "build", models.LangRU, "Сборка", 1),
	}})
	require.NoError(t, err)
	f2.src.index = index

	rec := f2.serve(withCookies(httptest.NewRequest(http.MethodGet, "/materials", nil), visit))

	assert.Empty(t, rec.Header().Get("Location"))
}

func postToggle(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/materials/sidebar/toggle", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSidebarToggle_Category(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(postToggle(url.Values{
		"kind":     {"category"},
		"category": {"docker"},
		"return":   {"/materials/redis/basics/intro?lang=ru"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/materials/redis/basics/intro?lang=ru", rec.Header().Get("Location"))

	p := f.prefs.Load(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.True(t, p.Sidebar.CategoryOpen("docker"))

	// Toggling again collapses it.
	rec2 := f.serve(withCookies(postToggle(url.Values{"kind": {"category"}, "category": {"docker"}}), rec))
	p = f.prefs.Load(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec2))
	assert.False(t, p.Sidebar.CategoryOpen("docker"))
}

func TestSidebarToggle_Section(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(postToggle(url.Values{
		"kind":     {"section"},
		"category": {"redis"},
		"section":  {"basics"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	p := f.prefs.Load(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.True(t, p.Sidebar.SectionOpen("redis", "basics"))
	assert.False(t, p.Sidebar.CategoryOpen("redis"))
}

func TestSidebarToggle_ForeignReturnFallsBack(t *testing.T) {
	f := newFixture(t)

	for _, ret := range []string{"https://evil.example/", "//evil.example", "/admin"} {
		rec := f.serve(postToggle(url.Values{"kind": {"category"}, "category": {"redis"}, "return": {ret}}))
		assert.Equal(t, "/materials", rec.Header().Get("Location"), ret)
	}
}

func TestSidebarToggle_BadRequest(t *testing.T) {
	f := newFixture(t)

	for name, form := range map[string]url.Values{
		"unknown kind":    {"kind": {"tag"}, "category": {"redis"}},
		"no category":     {"kind": {"category"}},
		"section missing": {"kind": {"section"}, "category": {"redis"}},
	} {
		t.Run(name, func(t *testing.T) {
			rec := f.serve(postToggle(form))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServeHighlightCSS(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/assets/highlight.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), ".chroma")
}

func TestServeSitemap(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "https://example.test/materials/redis/basics/intro")
	assert.Equal(t, 1, strings.Count(body, "/materials/redis/basics/intro<"), "variants share one entry")
}

func TestServeSitemap_IndexFailure(t *testing.T) {
	f := newFixture(t)
	f.src.indexErr = errors.New("boom")

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
