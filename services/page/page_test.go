package page

import (
	"context"
	"testing"
	"time"

	pageRepo "pagecraft/database/repository/page"
	"pagecraft/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvalidator struct {
	scopes []string
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, scope string) error {
	f.scopes = append(f.scopes, scope)
	return nil
}

type fakeScheduler struct {
	pageID string
	at     time.Time
}

func (f *fakeScheduler) SchedulePublish(pageID string, at time.Time) error {
	f.pageID = pageID
	f.at = at
	return nil
}

func newPageService() (*DefaultPageService, *fakeInvalidator, *fakeScheduler) {
	cache := &fakeInvalidator{}
	scheduler := &fakeScheduler{}
	svc := &DefaultPageService{
		Repo:      pageRepo.NewMemoryPageRepo(),
		Cache:     cache,
		Scheduler: scheduler,
	}
	return svc, cache, scheduler
}

func TestCreatePageDefaults(t *testing.T) {
	svc, _, _ := newPageService()
	ctx := context.Background()

	created, err := svc.CreatePage(ctx, models.Page{
		Title: models.MultiLanguageContent{"pt-BR": "Página Inicial"},
	})
	require.NoError(t, err)

	assert.Equal(t, "pagina-inicial", created.Slug)
	assert.Equal(t, models.PageDraft, created.Settings.Status)
	assert.NotNil(t, created.Blocks)
	assert.NotEmpty(t, created.ID)
}

func TestCreatePageSlugCollisionGetsSuffix(t *testing.T) {
	svc, _, _ := newPageService()
	ctx := context.Background()

	first, err := svc.CreatePage(ctx, models.Page{Title: models.MultiLanguageContent{"pt-BR": "Sobre"}})
	require.NoError(t, err)
	second, err := svc.CreatePage(ctx, models.Page{Title: models.MultiLanguageContent{"pt-BR": "Sobre"}})
	require.NoError(t, err)

	assert.Equal(t, "sobre", first.Slug)
	assert.Equal(t, "sobre-2", second.Slug)
}

func TestCreatePageSanitizesHTMLContent(t *testing.T) {
	svc, _, _ := newPageService()
	ctx := context.Background()

	created, err := svc.CreatePage(ctx, models.Page{
		Title: models.MultiLanguageContent{"pt-BR": "Home"},
		Blocks: []models.Block{{
			ID:   "b1",
			Type: models.BlockContent,
			Content: []models.ContentItem{{
				Type:  models.ContentHTML,
				Value: models.MultiLanguageContent{"en": `<p>ok</p><script>alert(1)</script>`},
			}},
		}},
	})
	require.NoError(t, err)

	sanitized := created.Blocks[0].Content[0].Value["en"]
	assert.Contains(t, sanitized, "<p>ok</p>")
	assert.NotContains(t, sanitized, "<script>")
}

func TestCreatePageWithPublishAtSchedules(t *testing.T) {
	svc, _, scheduler := newPageService()
	ctx := context.Background()
	at := time.Now().Add(time.Hour).UTC()

	created, err := svc.CreatePage(ctx, models.Page{
		Title:     models.MultiLanguageContent{"pt-BR": "Lançamento"},
		PublishAt: &at,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, scheduler.pageID)
	assert.Equal(t, at, scheduler.at)
}

func TestGetPageBySlugAndVisibility(t *testing.T) {
	svc, _, _ := newPageService()
	ctx := context.Background()

	created, err := svc.CreatePage(ctx, models.Page{Title: models.MultiLanguageContent{"pt-BR": "Oculta"}})
	require.NoError(t, err)

	// Draft pages are hidden from the public path but visible in preview.
	_, err = svc.GetPage(ctx, created.Slug, false)
	assert.ErrorIs(t, err, ErrNotVisible)

	got, err := svc.GetPage(ctx, created.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// ID lookup works the same.
	got, err = svc.GetPage(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, created.Slug, got.Slug)
}

func TestGetPageNotFound(t *testing.T) {
	svc, _, _ := newPageService()
	_, err := svc.GetPage(context.Background(), "missing", true)
	assert.ErrorIs(t, err, pageRepo.ErrNotFound)
}

func TestPublishPageMakesItVisibleAndClearsSchedule(t *testing.T) {
	svc, cache, _ := newPageService()
	ctx := context.Background()
	at := time.Now().Add(time.Hour)

	created, err := svc.CreatePage(ctx, models.Page{
		Title:     models.MultiLanguageContent{"pt-BR": "Novidades"},
		PublishAt: &at,
	})
	require.NoError(t, err)

	published, err := svc.PublishPage(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PagePublished, published.Settings.Status)
	assert.Nil(t, published.PublishAt)
	assert.Contains(t, cache.scopes, created.ID)

	got, err := svc.GetPage(ctx, created.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestArchivePageHidesIt(t *testing.T) {
	svc, _, _ := newPageService()
	ctx := context.Background()

	created, err := svc.CreatePage(ctx, models.Page{Title: models.MultiLanguageContent{"pt-BR": "Antiga"}})
	require.NoError(t, err)
	_, err = svc.PublishPage(ctx, created.ID)
	require.NoError(t, err)

	archived, err := svc.ArchivePage(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PageArchived, archived.Settings.Status)

	_, err = svc.GetPage(ctx, created.ID, false)
	assert.ErrorIs(t, err, ErrNotVisible)
}

func TestUpdatePageKeepsSlugWhenUnchanged(t *testing.T) {
	svc, cache, _ := newPageService()
	ctx := context.Background()

	created, err := svc.CreatePage(ctx, models.Page{Title: models.MultiLanguageContent{"pt-BR": "Contato"}})
	require.NoError(t, err)

	updated, err := svc.UpdatePage(ctx, models.Page{
		ID:    created.ID,
		Title: models.MultiLanguageContent{"pt-BR": "Fale Conosco"},
		Slug:  created.Slug,
	})
	require.NoError(t, err)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Contains(t, cache.scopes, created.ID)
}

func TestSchedulePublishPersistsAndEnqueues(t *testing.T) {
	svc, _, scheduler := newPageService()
	ctx := context.Background()

	created, err := svc.CreatePage(ctx, models.Page{Title: models.MultiLanguageContent{"pt-BR": "Breve"}})
	require.NoError(t, err)

	at := time.Now().Add(2 * time.Hour).UTC()
	require.NoError(t, svc.SchedulePublish(ctx, created.ID, at))

	stored, err := svc.GetPage(ctx, created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, stored.PublishAt)
	assert.Equal(t, at, stored.PublishAt.UTC())
	assert.Equal(t, created.ID, scheduler.pageID)
}
