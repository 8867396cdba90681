package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-architect-api/internal/application/interview"
	"aws-architect-api/internal/domain/entity"
)

func chatResult(ready bool, gen *interview.GenerationResult) *interview.Result {
	return &interview.Result{
		Reply: "Propuesta para EC2",
		Descriptor: &entity.ProjectDescriptor{
			ProjectID:      "proj-1",
			UserID:         "user-1",
			Name:           "InventorySystem",
			PrimaryService: "EC2",
		},
		Readiness: entity.ReadinessVerdict{
			HasProjectName:    ready,
			HasProjectKind:    ready,
			HasTechnicalTerms: ready,
			HasEnoughTurns:    ready,
			Score:             1.0,
			Ready:             ready,
		},
		Generation: gen,
	}
}

func TestNewChatResponseWithoutGeneration(t *testing.T) {
	resp := NewChatResponse("m-1", chatResult(false, nil))

	assert.Equal(t, "Propuesta para EC2", resp.Content)
	assert.Equal(t, "proj-1", resp.ProjectID)
	assert.False(t, resp.IsComplete)
	assert.Nil(t, resp.DocumentGeneration)
}

func TestNewChatResponseCarriesMetadataSaved(t *testing.T) {
	gen := &interview.GenerationResult{
		Generated:  true,
		Folder:     "projects/user-1/proj-1/",
		MetadataOK: true,
		Index: entity.ArtifactIndex{
			{Kind: entity.ArtifactExecutiveProposal, ObjectKey: "projects/user-1/proj-1/propuesta-ejecutiva-ec2.txt", SizeBytes: 10},
		},
	}

	resp := NewChatResponse("m-1", chatResult(true, gen))

	require.NotNil(t, resp.DocumentGeneration)
	assert.True(t, resp.DocumentGeneration.MetadataSaved)
	assert.True(t, resp.IsComplete)
}

func TestNewChatResponseSurfacesMetadataFailure(t *testing.T) {
	gen := &interview.GenerationResult{
		Generated:  true,
		Folder:     "projects/user-1/proj-1/",
		MetadataOK: false,
		Index: entity.ArtifactIndex{
			{Kind: entity.ArtifactExecutiveProposal, ObjectKey: "projects/user-1/proj-1/propuesta-ejecutiva-ec2.txt", SizeBytes: 10},
		},
	}

	resp := NewChatResponse("m-1", chatResult(true, gen))

	// 元数据写入失败必须体现在响应里，文件生成结果不受影响
	require.NotNil(t, resp.DocumentGeneration)
	assert.False(t, resp.DocumentGeneration.MetadataSaved)
	assert.True(t, resp.DocumentGeneration.Generated)
	assert.True(t, resp.IsComplete)
}

func TestNewChatResponseMapsDocumentsWithErrors(t *testing.T) {
	gen := &interview.GenerationResult{
		Generated:  true,
		Folder:     "projects/user-1/proj-1/",
		MetadataOK: true,
		Index: entity.ArtifactIndex{
			{Kind: entity.ArtifactExecutiveProposal, ObjectKey: "k1", SizeBytes: 10},
			{Kind: entity.ArtifactCosts, ObjectKey: "k2", SizeBytes: 20, Error: "upload refused"},
		},
	}

	resp := NewChatResponse("m-1", chatResult(true, gen))

	require.NotNil(t, resp.DocumentGeneration)
	require.Len(t, resp.DocumentGeneration.Documents, 2)
	assert.Empty(t, resp.DocumentGeneration.Documents[0].Error)
	assert.Equal(t, "upload refused", resp.DocumentGeneration.Documents[1].Error)
}

func TestNewChatResponseSpecificServiceNullForDefault(t *testing.T) {
	result := chatResult(false, nil)
	result.Descriptor.PrimaryService = entity.DefaultPrimaryService

	resp := NewChatResponse("m-1", result)

	assert.Nil(t, resp.SpecificService)

	result.Descriptor.PrimaryService = "EC2"
	resp = NewChatResponse("m-1", result)
	require.NotNil(t, resp.SpecificService)
	assert.Equal(t, "EC2", *resp.SpecificService)
}

func TestNewChatResponseIsCompleteRequiresGeneratedFiles(t *testing.T) {
	gen := &interview.GenerationResult{
		Generated:  false,
		Folder:     "projects/user-1/proj-1/",
		MetadataOK: true,
	}

	resp := NewChatResponse("m-1", chatResult(true, gen))

	assert.False(t, resp.IsComplete)
}
