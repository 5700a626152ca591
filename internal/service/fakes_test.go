package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/repository/contract"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory stand-ins for the repository layer. They interpret the same
// specification values the GORM implementations translate to SQL.

type fakeStore struct {
	mu        sync.Mutex
	users     []*entity.User
	knowledge []*entity.KnowledgeSource
	sections  []*entity.Section
	metadata  []*entity.Metadata
	logs      []*entity.SystemLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) KnowledgeSourceRepository() contract.KnowledgeSourceRepository {
	return &fakeKnowledgeRepo{store: u.store}
}

func (u *fakeUow) SectionRepository() contract.SectionRepository {
	return &fakeSectionRepo{store: u.store}
}

func (u *fakeUow) MetadataRepository() contract.MetadataRepository {
	return &fakeMetadataRepo{store: u.store}
}

func (u *fakeUow) SystemLogRepository() contract.SystemLogRepository {
	return &fakeSystemLogRepo{store: u.store}
}

// specMatch interprets the query specifications against one row.
type specMatch struct {
	id        uuid.UUID
	userEmail string
	email     string
	fields    map[string]string
}

func matches(row specMatch, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if row.id != s.ID {
				return false
			}
		case specification.ByEmail:
			if row.email != s.Email {
				return false
			}
		case specification.OwnedBy:
			if row.userEmail != s.Email {
				return false
			}
		case specification.FilterBy:
			value, _ := s.Value.(string)
			if row.fields[s.Field] != value {
				return false
			}
		case specification.OrderBy, specification.Pagination:
			// Ordering and paging are applied by the caller, not per row.
		}
	}
	return true
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users = append(r.store.users, &copied)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.users {
		if existing.Id == user.Id {
			copied := *user
			r.store.users[i] = &copied
			return nil
		}
	}
	return errors.New("user not found")
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if matches(specMatch{id: user.Id, email: user.Email}, specs) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, user := range r.store.users {
		if matches(specMatch{id: user.Id, email: user.Email}, specs) {
			count++
		}
	}
	return count, nil
}

type fakeKnowledgeRepo struct {
	store *fakeStore
}

func knowledgeMatch(source *entity.KnowledgeSource) specMatch {
	return specMatch{
		id:        source.Id,
		userEmail: source.UserEmail,
		fields:    map[string]string{"status": string(source.Status), "type": string(source.Type)},
	}
}

func (r *fakeKnowledgeRepo) Create(ctx context.Context, source *entity.KnowledgeSource) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *source
	r.store.knowledge = append(r.store.knowledge, &copied)
	return nil
}

func (r *fakeKnowledgeRepo) Update(ctx context.Context, source *entity.KnowledgeSource) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.knowledge {
		if existing.Id == source.Id {
			copied := *source
			r.store.knowledge[i] = &copied
			return nil
		}
	}
	return errors.New("knowledge source not found")
}

func (r *fakeKnowledgeRepo) Delete(ctx context.Context, id uuid.UUID, ownerEmail string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.knowledge {
		if existing.Id == id && existing.UserEmail == ownerEmail {
			r.store.knowledge = append(r.store.knowledge[:i], r.store.knowledge[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeKnowledgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeSource, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, source := range r.store.knowledge {
		if matches(knowledgeMatch(source), specs) {
			copied := *source
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeSource, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*entity.KnowledgeSource, 0)
	for _, source := range r.store.knowledge {
		if matches(knowledgeMatch(source), specs) {
			copied := *source
			result = append(result, &copied)
		}
	}
	if hasDescCreatedAt(specs) {
		sort.Slice(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result, nil
}

func (r *fakeKnowledgeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeSectionRepo struct {
	store *fakeStore
}

func sectionMatch(section *entity.Section) specMatch {
	return specMatch{
		id:        section.Id,
		userEmail: section.UserEmail,
		fields:    map[string]string{"status": string(section.Status), "tone": string(section.Tone)},
	}
}

func (r *fakeSectionRepo) Create(ctx context.Context, section *entity.Section) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *section
	r.store.sections = append(r.store.sections, &copied)
	return nil
}

func (r *fakeSectionRepo) Update(ctx context.Context, section *entity.Section) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.sections {
		if existing.Id == section.Id {
			copied := *section
			r.store.sections[i] = &copied
			return nil
		}
	}
	return errors.New("section not found")
}

func (r *fakeSectionRepo) Delete(ctx context.Context, id uuid.UUID, ownerEmail string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.sections {
		if existing.Id == id && existing.UserEmail == ownerEmail {
			r.store.sections = append(r.store.sections[:i], r.store.sections[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeSectionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Section, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, section := range r.store.sections {
		if matches(sectionMatch(section), specs) {
			copied := *section
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSectionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*entity.Section, 0)
	for _, section := range r.store.sections {
		if matches(sectionMatch(section), specs) {
			copied := *section
			result = append(result, &copied)
		}
	}
	if hasDescCreatedAt(specs) {
		sort.Slice(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result, nil
}

func (r *fakeSectionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeMetadataRepo struct {
	store *fakeStore
}

func (r *fakeMetadataRepo) Create(ctx context.Context, metadata *entity.Metadata) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *metadata
	r.store.metadata = append(r.store.metadata, &copied)
	return nil
}

func (r *fakeMetadataRepo) Update(ctx context.Context, metadata *entity.Metadata) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.metadata {
		if existing.Id == metadata.Id {
			copied := *metadata
			r.store.metadata[i] = &copied
			return nil
		}
	}
	return errors.New("metadata not found")
}

func (r *fakeMetadataRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Metadata, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, metadata := range r.store.metadata {
		if matches(specMatch{id: metadata.Id, userEmail: metadata.UserEmail}, specs) {
			copied := *metadata
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeSystemLogRepo struct {
	store *fakeStore
}

func (r *fakeSystemLogRepo) Create(ctx context.Context, entry *entity.SystemLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *entry
	r.store.logs = append(r.store.logs, &copied)
	return nil
}

func (r *fakeSystemLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*entity.SystemLog, 0, len(r.store.logs))
	for _, entry := range r.store.logs {
		copied := *entry
		result = append(result, &copied)
	}
	return result, nil
}

func hasDescCreatedAt(specs []specification.Specification) bool {
	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok {
			return order.Field == "created_at" && order.Desc
		}
	}
	return false
}

// Collaborator doubles.

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type fakeScraper struct {
	markdown string
	err      error
	calls    int
}

func (s *fakeScraper) Scrape(ctx context.Context, target string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.markdown, nil
}

type fakeSummarizer struct {
	summary string
	err     error
	lastIn  string
}

func (s *fakeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.lastIn = text
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
