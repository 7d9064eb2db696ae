package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scobrodev/logbook/pkg/types"
)

func TestProjectLifecycle(t *testing.T) {
	service := newTestService(t)

	created, err := service.CreateProject(types.CreateProjectRequest{Name: "platform"})
	require.NoError(t, err)
	assert.Equal(t, types.DefaultProjectColor, created.Color)

	description := "core services"
	updated, err := service.UpdateProject(types.UpdateProjectRequest{
		ID:          created.ID,
		Description: &description,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "core services", *updated.Description)

	projects, err := service.GetAllProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)

	require.NoError(t, service.DeleteProject(created.ID))

	projects, err = service.GetAllProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestUpdateProject_NotFound(t *testing.T) {
	service := newTestService(t)

	name := "x"
	_, err := service.UpdateProject(types.UpdateProjectRequest{ID: "no-such-project", Name: &name})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTagLifecycle(t *testing.T) {
	service := newTestService(t)

	color := "#FF0000"
	created, err := service.CreateTag(types.CreateTagRequest{Name: "oncall", Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", created.Color)

	category := "rotation"
	updated, err := service.UpdateTag(types.UpdateTagRequest{ID: created.ID, Category: &category})
	require.NoError(t, err)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "rotation", *updated.Category)

	tags, err := service.GetAllTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)

	require.NoError(t, service.DeleteTag(created.ID))

	tags, err = service.GetAllTags()
	require.NoError(t, err)
	assert.Empty(t, tags)
}
