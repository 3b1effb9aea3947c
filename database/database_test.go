package database

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.Blog{},
		&models.Certification{},
		&models.Email{},
		&models.Category{},
	))

	return New(db)
}

func TestProjectRepoFindByIDMissingReturnsNil(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	project, err := repo.FindByID(404)
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestProjectRepoDeleteMissingRowIsNotFound(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	err := repo.Delete(404)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectRepoAddAssignsSequentialIDs(t *testing.T) {
	repo := newTestDB(t).ProjectRepo()

	first := models.Project{Title: "one", Technologies: models.StringList{}}
	second := models.Project{Title: "two", Technologies: models.StringList{}}
	require.NoError(t, repo.Add(&first))
	require.NoError(t, repo.Add(&second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestCategoryRepoAddIgnoresDuplicatePair(t *testing.T) {
	repo := newTestDB(t).CategoryRepo()

	require.NoError(t, repo.Add(&models.Category{Type: "projects", Name: "Robotics"}))
	require.NoError(t, repo.Add(&models.Category{Type: "projects", Name: "Robotics"}))

	// Same name under a different namespace is a distinct row.
	require.NoError(t, repo.Add(&models.Category{Type: "blogs", Name: "Robotics"}))

	projectNames, err := repo.FindByType("projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"Robotics"}, projectNames)

	blogNames, err := repo.FindByType("blogs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Robotics"}, blogNames)
}

func TestCategoryRepoFindByTypeSortsAlphabetically(t *testing.T) {
	repo := newTestDB(t).CategoryRepo()

	for _, name := range []string{"Streaming", "Batch", "Modeling"} {
		require.NoError(t, repo.Add(&models.Category{Type: "projects", Name: name}))
	}

	names, err := repo.FindByType("projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"Batch", "Modeling", "Streaming"}, names)
}
