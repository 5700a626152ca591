package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "owner@example.com"

func newKnowledgeFixture(store *fakeStore) (IKnowledgeService, *fakeScraper, *fakeSummarizer, *fakePublisher) {
	scraper := &fakeScraper{markdown: "# Scraped Page"}
	summarizer := &fakeSummarizer{summary: "summarized content"}
	publisher := &fakePublisher{}
	svc := NewKnowledgeService(newFakeFactory(store), scraper, summarizer, publisher, nopLogger{})
	return svc, scraper, summarizer, publisher
}

func TestParseCSV(t *testing.T) {
	store := newFakeStore()
	svc, _, _, _ := newKnowledgeFixture(store)

	t.Run("header row becomes keys", func(t *testing.T) {
		data := []byte("name,price\nWidget,10\nGadget,20\n")
		res, err := svc.ParseCSV(data)
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalRows)
		assert.Equal(t, "Widget", res.Rows[0]["name"])
		assert.Equal(t, "20", res.Rows[1]["price"])
		assert.Len(t, res.FirstTen, 2)
	})

	t.Run("first ten rows capped", func(t *testing.T) {
		data := []byte("n\n")
		for i := 0; i < 15; i++ {
			data = append(data, 'x', '\n')
		}
		res, err := svc.ParseCSV(data)
		require.NoError(t, err)
		assert.Equal(t, 15, res.TotalRows)
		assert.Len(t, res.FirstTen, 10)
	})

	t.Run("empty file yields zero rows without error", func(t *testing.T) {
		res, err := svc.ParseCSV([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, 0, res.TotalRows)
		assert.Empty(t, res.Rows)
	})

	t.Run("ragged rows fail", func(t *testing.T) {
		_, err := svc.ParseCSV([]byte("a,b\n1\n"))
		assert.Error(t, err)
	})
}

func TestIngestUpload(t *testing.T) {
	store := newFakeStore()
	svc, _, summarizer, publisher := newKnowledgeFixture(store)

	res, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{
		Type:     "upload",
		FileName: "products.csv",
		CSVData:  []byte("name\nWidget\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, "products.csv", res.Name)
	assert.Equal(t, "upload", res.Type)
	assert.Equal(t, "active", res.Status)
	assert.Equal(t, "summarized content", res.Content)
	assert.Contains(t, summarizer.lastIn, "Widget")
	assert.Len(t, store.knowledge, 1)
	assert.Len(t, publisher.payloads, 1)
}

func TestIngestUploadWithoutFile(t *testing.T) {
	store := newFakeStore()
	svc, _, _, _ := newKnowledgeFixture(store)

	_, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{Type: "upload"})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, store.knowledge)
}

func TestIngestWebsite(t *testing.T) {
	store := newFakeStore()
	svc, scraper, _, _ := newKnowledgeFixture(store)

	res, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{
		Type: "website",
		Url:  "https://shop.example.com/faq",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, scraper.calls)
	assert.Equal(t, "shop.example.com", res.Name)
	require.NotNil(t, res.SourceUrl)
	assert.Equal(t, "https://shop.example.com/faq", *res.SourceUrl)
}

func TestIngestWebsiteScrapeFailureWritesNothing(t *testing.T) {
	store := newFakeStore()
	scraper := &fakeScraper{err: errors.New("zenrows: status 422")}
	svc := NewKnowledgeService(newFakeFactory(store), scraper, &fakeSummarizer{}, &fakePublisher{}, nopLogger{})

	_, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{
		Type: "website",
		Url:  "https://broken.example.com",
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
	assert.Empty(t, store.knowledge)
}

func TestIngestText(t *testing.T) {
	store := newFakeStore()
	svc, _, _, _ := newKnowledgeFixture(store)

	t.Run("title becomes the source name", func(t *testing.T) {
		res, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{
			Type:    "text",
			Title:   "Shipping policy",
			Content: "We ship worldwide within 5 days.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Shipping policy", res.Name)
		assert.Nil(t, res.SourceUrl)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		before := len(store.knowledge)
		_, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{
			Type:    "text",
			Content: "We ship worldwide within 5 days.",
		})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Len(t, store.knowledge, before)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		before := len(store.knowledge)
		_, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{
			Type:  "text",
			Title: "Shipping policy",
		})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Len(t, store.knowledge, before)
	})
}

func TestIngestUnknownType(t *testing.T) {
	store := newFakeStore()
	svc, _, _, _ := newKnowledgeFixture(store)

	_, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{Type: "audio"})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestIngestSummarizerFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewKnowledgeService(
		newFakeFactory(store),
		&fakeScraper{},
		&fakeSummarizer{err: errors.New("llm unavailable")},
		&fakePublisher{},
		nopLogger{},
	)

	_, err := svc.Ingest(context.Background(), testOwner, &dto.IngestKnowledgeInput{
		Type:    "text",
		Title:   "Shipping",
		Content: "details",
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
	assert.Empty(t, store.knowledge)
}

func TestFetchReturnsOwnRowsNewestFirst(t *testing.T) {
	store := newFakeStore()
	svc, _, _, _ := newKnowledgeFixture(store)

	now := time.Now()
	store.knowledge = []*entity.KnowledgeSource{
		{Id: uuid.New(), UserEmail: testOwner, Name: "older", CreatedAt: now.Add(-time.Hour)},
		{Id: uuid.New(), UserEmail: "other@example.com", Name: "foreign", CreatedAt: now},
		{Id: uuid.New(), UserEmail: testOwner, Name: "newer", CreatedAt: now},
	}

	res, err := svc.Fetch(context.Background(), testOwner)
	require.NoError(t, err)
	require.Len(t, res.Sources, 2)
	assert.Equal(t, "newer", res.Sources[0].Name)
	assert.Equal(t, "older", res.Sources[1].Name)
}

func TestDeleteScopedToOwner(t *testing.T) {
	store := newFakeStore()
	svc, _, _, _ := newKnowledgeFixture(store)

	foreignId := uuid.New()
	store.knowledge = []*entity.KnowledgeSource{
		{Id: foreignId, UserEmail: "other@example.com", Name: "foreign"},
	}

	err := svc.Delete(context.Background(), testOwner, foreignId)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
	assert.Len(t, store.knowledge, 1)
}

func TestDeleteOwnRow(t *testing.T) {
	store := newFakeStore()
	svc, _, _, _ := newKnowledgeFixture(store)

	id := uuid.New()
	store.knowledge = []*entity.KnowledgeSource{
		{Id: id, UserEmail: testOwner, Name: "mine"},
	}

	require.NoError(t, svc.Delete(context.Background(), testOwner, id))
	assert.Empty(t, store.knowledge)
}
