package service

import (
	"context"
	"testing"

	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotFetchConfig(t *testing.T) {
	store := newFakeStore()
	store.metadata = []*entity.Metadata{{
		Id:           uuid.New(),
		UserEmail:    testOwner,
		BusinessName: "Acme Ltd",
		WebsiteUrl:   "https://acme.example.com",
	}}
	store.sections = []*entity.Section{
		{Id: uuid.New(), UserEmail: testOwner, Name: "Active", Status: entity.SectionStatusActive},
		{Id: uuid.New(), UserEmail: testOwner, Name: "Draft", Status: entity.SectionStatusDraft},
		{Id: uuid.New(), UserEmail: "other@example.com", Name: "Foreign", Status: entity.SectionStatusActive},
	}
	svc := NewChatbotService(newFakeFactory(store))

	res, err := svc.FetchConfig(context.Background(), testOwner)
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltd", res.Metadata.BusinessName)
	require.Len(t, res.Sections, 1)
	assert.Equal(t, "Active", res.Sections[0].Name)
}

func TestChatbotFetchConfigWithoutMetadata(t *testing.T) {
	store := newFakeStore()
	svc := NewChatbotService(newFakeFactory(store))

	_, err := svc.FetchConfig(context.Background(), testOwner)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
