package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-architect-api/internal/config"
	"aws-architect-api/internal/domain/entity"
)

type stubRow struct {
	indexJSON []byte
}

func (r *stubRow) Scan(dest ...interface{}) error {
	now := time.Now()
	*dest[0].(*string) = "proj-1"
	*dest[1].(*string) = "user-1"
	*dest[2].(*string) = "InventorySystem"
	*dest[3].(*string) = string(entity.ProjectKindQuickService)
	*dest[4].(*string) = "EC2"
	*dest[5].(*string) = string(entity.ProjectStatusCompleted)
	*dest[6].(*string) = "projects/user-1/proj-1/"
	*dest[7].(*[]byte) = r.indexJSON
	*dest[8].(*time.Time) = now
	*dest[9].(*time.Time) = now
	return nil
}

func TestScanProjectRecordDecodesArtifactIndex(t *testing.T) {
	row := &stubRow{indexJSON: []byte(`[{"kind":"costs","object_key":"k1","size_bytes":20,"error":"upload refused"}]`)}

	record, err := scanProjectRecord(row)

	require.NoError(t, err)
	assert.Equal(t, "proj-1", record.ProjectID)
	assert.Equal(t, entity.ProjectKindQuickService, record.Kind)
	assert.Equal(t, entity.ProjectStatusCompleted, record.Status)
	require.Len(t, record.ArtifactIndex, 1)
	assert.Equal(t, entity.ArtifactCosts, record.ArtifactIndex[0].Kind)
	assert.Equal(t, "upload refused", record.ArtifactIndex[0].Error)
}

func TestScanProjectRecordEmptyIndexIsValid(t *testing.T) {
	record, err := scanProjectRecord(&stubRow{indexJSON: nil})

	require.NoError(t, err)
	assert.Empty(t, record.ArtifactIndex)
}

func TestScanProjectRecordRejectsCorruptIndex(t *testing.T) {
	row := &stubRow{indexJSON: []byte(`{not json`)}

	record, err := scanProjectRecord(row)

	// 损坏的索引不能静默变成空索引
	require.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "artifact index")
}

func TestNewProjectRecordRepositoryTableOverride(t *testing.T) {
	defaultRepo := NewProjectRecordRepository(&Client{config: &config.PostgresConfig{}})
	assert.Equal(t, defaultProjectsTable, defaultRepo.table)

	custom := NewProjectRecordRepository(&Client{config: &config.PostgresConfig{ProjectsTable: "archive_projects"}})
	assert.Equal(t, "archive_projects", custom.table)
}
