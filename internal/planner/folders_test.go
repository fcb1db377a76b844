package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

func TestDeleteDefaultFolder(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddNote(f.code, types.Note{ID: "n1", Title: "x", FolderID: "folder_개인"})
	require.NoError(t, err)

	outcome, err := f.svc.DeleteFolder(f.code, "folder_개인")
	require.NoError(t, err)
	assert.Equal(t, types.Applied, outcome)

	doc := f.doc(t)
	assert.Equal(t, -1, doc.FolderIndex("folder_개인"))
	assert.Len(t, doc.Folders, 3)
	fi, _ := doc.FindNote("n1")
	assert.Equal(t, -1, fi, "notes go with their folder")
}

func TestDeleteDefaultFolderProtected(t *testing.T) {
	f := newFixture(t, WithDefaultFolderProtection(true))
	before := f.doc(t)

	outcome, err := f.svc.DeleteFolder(f.code, "folder_개인")
	assert.ErrorIs(t, err, types.ErrDefaultFolder)
	assert.Equal(t, types.NotFound, outcome)
	assert.Equal(t, before, f.doc(t))

	_, err = f.svc.AddFolder(f.code, types.Folder{ID: "folder_trip", Name: "Trip"})
	require.NoError(t, err)
	outcome, err = f.svc.DeleteFolder(f.code, "folder_trip")
	require.NoError(t, err)
	assert.Equal(t, types.Applied, outcome, "user folders stay deletable")
}

func TestFolderAddRename(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.svc.AddFolder(f.code, types.Folder{ID: "folder_trip", Name: "Trip"})
	require.NoError(t, err)
	assert.Equal(t, types.Applied, outcome)

	_, err = f.svc.AddFolder(f.code, types.Folder{ID: "folder_trip", Name: "Again"})
	assert.ErrorIs(t, err, types.ErrDuplicateID)

	_, err = f.svc.UpdateFolder(f.code, "folder_trip", types.FolderPatch{Name: types.Ptr("")})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	outcome, err = f.svc.UpdateFolder(f.code, "folder_trip", types.FolderPatch{Name: types.Ptr("Holiday")})
	require.NoError(t, err)
	assert.Equal(t, types.Applied, outcome)

	doc := f.doc(t)
	i := doc.FolderIndex("folder_trip")
	require.NotEqual(t, -1, i)
	assert.Equal(t, types.Folder{ID: "folder_trip", Name: "Holiday", Notes: []types.Note{}}, doc.Folders[i])
}

func TestDeleteMissingFolder(t *testing.T) {
	f := newFixture(t)
	outcome, err := f.svc.DeleteFolder(f.code, "folder_none")
	require.NoError(t, err)
	assert.Equal(t, types.NotFound, outcome)
}
