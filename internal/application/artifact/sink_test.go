package artifact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-architect-api/internal/domain/entity"
)

type fakeObjectStore struct {
	puts    []string
	objects map[string][]byte
	failOn  map[string]error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects: make(map[string][]byte),
		failOn:  make(map[string]error),
	}
}

func (s *fakeObjectStore) Put(_ context.Context, key string, _ string, data []byte) error {
	s.puts = append(s.puts, key)
	if err, ok := s.failOn[key]; ok {
		return err
	}
	s.objects[key] = append([]byte(nil), data...)
	return nil
}

func (s *fakeObjectStore) PresignedGetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://example.test/" + key, nil
}

type fakeProjectRepo struct {
	records   map[string]*entity.ProjectRecord
	upsertErr error
	upserts   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{records: make(map[string]*entity.ProjectRecord)}
}

func (r *fakeProjectRepo) Upsert(_ context.Context, record *entity.ProjectRecord) error {
	r.upserts++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	copied := *record
	r.records[record.ProjectID] = &copied
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, projectID string) (*entity.ProjectRecord, error) {
	return r.records[projectID], nil
}

func (r *fakeProjectRepo) ListByUser(_ context.Context, userID string) ([]*entity.ProjectRecord, error) {
	var out []*entity.ProjectRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func sinkDescriptor() *entity.ProjectDescriptor {
	return &entity.ProjectDescriptor{
		ProjectID:      "proj-123",
		UserID:         "user-1",
		Name:           "InventorySystem",
		Kind:           entity.ProjectKindQuickService,
		PrimaryService: "EC2",
	}
}

func fullArtifactSet(t *testing.T) entity.ArtifactSet {
	t.Helper()
	r := NewRegistry(nil)
	return r.GenerateAll(context.Background(), sinkDescriptor(), "Propuesta completa para EC2")
}

func TestPersistWritesInFixedOrder(t *testing.T) {
	store := newFakeObjectStore()
	repo := newFakeProjectRepo()
	sink := NewSink(store, repo)

	index, metadataOK := sink.Persist(context.Background(), sinkDescriptor(), fullArtifactSet(t))

	require.True(t, metadataOK)
	require.Len(t, index, len(entity.ArtifactKindsOrdered))
	require.Len(t, store.puts, len(entity.ArtifactKindsOrdered))

	for i, kind := range entity.ArtifactKindsOrdered {
		assert.Equal(t, kind, index[i].Kind)
		assert.True(t, strings.HasPrefix(store.puts[i], "projects/user-1/proj-123/"), store.puts[i])
	}
}

func TestPersistRecordsCompletedStatus(t *testing.T) {
	store := newFakeObjectStore()
	repo := newFakeProjectRepo()
	sink := NewSink(store, repo)

	_, _ = sink.Persist(context.Background(), sinkDescriptor(), fullArtifactSet(t))

	record := repo.records["proj-123"]
	require.NotNil(t, record)
	assert.Equal(t, entity.ProjectStatusCompleted, record.Status)
	assert.Equal(t, "projects/user-1/proj-123/", record.StoragePrefix)
	assert.Len(t, record.ArtifactIndex, len(entity.ArtifactKindsOrdered))
}

func TestPersistContinuesAfterSingleUploadFailure(t *testing.T) {
	store := newFakeObjectStore()
	failKey := "projects/user-1/proj-123/costos-ec2.csv"
	store.failOn[failKey] = errors.New("upload refused")
	repo := newFakeProjectRepo()
	sink := NewSink(store, repo)

	index, metadataOK := sink.Persist(context.Background(), sinkDescriptor(), fullArtifactSet(t))

	assert.True(t, metadataOK)
	assert.Equal(t, len(entity.ArtifactKindsOrdered)-1, index.Succeeded())
	// 失败后继续写入剩余文件
	assert.Len(t, store.puts, len(entity.ArtifactKindsOrdered))

	var failed *entity.ArtifactIndexEntry
	for i := range index {
		if index[i].Kind == entity.ArtifactCosts {
			failed = &index[i]
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, "upload refused", failed.Error)

	record := repo.records["proj-123"]
	require.NotNil(t, record)
	assert.Equal(t, entity.ProjectStatusCompleted, record.Status)
}

func TestPersistAllFailuresLeavesInProgress(t *testing.T) {
	store := newFakeObjectStore()
	set := fullArtifactSet(t)
	prefix := StoragePrefix("user-1", "proj-123")
	for _, a := range set {
		store.failOn[prefix+a.Filename] = errors.New("storage down")
	}
	repo := newFakeProjectRepo()
	sink := NewSink(store, repo)

	index, metadataOK := sink.Persist(context.Background(), sinkDescriptor(), set)

	assert.True(t, metadataOK)
	assert.Equal(t, 0, index.Succeeded())

	record := repo.records["proj-123"]
	require.NotNil(t, record)
	assert.Equal(t, entity.ProjectStatusInProgress, record.Status)
}

func TestPersistMetadataFailureIsReported(t *testing.T) {
	store := newFakeObjectStore()
	repo := newFakeProjectRepo()
	repo.upsertErr = errors.New("db down")
	sink := NewSink(store, repo)

	index, metadataOK := sink.Persist(context.Background(), sinkDescriptor(), fullArtifactSet(t))

	assert.False(t, metadataOK)
	// 对象写入不受元数据失败影响
	assert.Equal(t, len(entity.ArtifactKindsOrdered), index.Succeeded())
}

func TestPersistIsIdempotentOnRerun(t *testing.T) {
	store := newFakeObjectStore()
	repo := newFakeProjectRepo()
	sink := NewSink(store, repo)
	set := fullArtifactSet(t)

	first, _ := sink.Persist(context.Background(), sinkDescriptor(), set)
	second, _ := sink.Persist(context.Background(), sinkDescriptor(), set)

	// 相同 key 覆盖写，索引一致，元数据只有一行
	assert.Equal(t, first, second)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, 2, repo.upserts)
}

func TestStoragePrefix(t *testing.T) {
	assert.Equal(t, "projects/u/p/", StoragePrefix("u", "p"))
}
