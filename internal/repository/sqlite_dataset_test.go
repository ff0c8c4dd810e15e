package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/neuroguard/internal/domain"
	"github.com/alexanderramin/neuroguard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDatasetRepo_SaveAndGet(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	want := testutil.NewTestDataset("orbit")
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, "orbit")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteDatasetRepo_PreservesDeclarationOrder(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d := testutil.NewTestDataset("order",
		testutil.WithYears("C", "A", "B"),
		testutil.WithMilestones(
			testutil.NewTestMilestone("C", "third-letter first", 1),
			testutil.NewTestMilestone("A", "a", 0.75),
			testutil.NewTestMilestone("B", "b", 1),
		),
		testutil.WithInstitutions(
			domain.Institution{Name: "Zeta", Latitude: 1, Longitude: 1},
			domain.Institution{Name: "Alpha", Latitude: 2, Longitude: 2},
		),
	)
	require.NoError(t, repo.Save(ctx, d))

	got, err := repo.Get(ctx, "order")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, got.Years)
	assert.Equal(t, "C", got.Milestones[0].Year)
	assert.Equal(t, "B", got.Milestones[2].Year)
	assert.Equal(t, "Zeta", got.Institutions[0].Name)
}

func TestSQLiteDatasetRepo_SaveReplacesRecords(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("swap")))
	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("swap",
		testutil.WithInstitutions(domain.Institution{Name: "CERN", Latitude: 46.2338, Longitude: 6.0470}),
	)))

	got, err := repo.Get(ctx, "swap")
	require.NoError(t, err)
	require.Len(t, got.Institutions, 1)
	assert.Equal(t, "CERN", got.Institutions[0].Name)
	assert.Len(t, got.Milestones, 2)
}

func TestSQLiteDatasetRepo_SaveRollsBackOnConstraintViolation(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("keep")))

	bad := testutil.NewTestDataset("keep", testutil.WithInstitutions(
		domain.Institution{Name: "Nowhere", Latitude: 100, Longitude: 0},
	))
	require.Error(t, repo.Save(ctx, bad))

	got, err := repo.Get(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, testutil.NewTestDataset("keep"), got)
}

func TestSQLiteDatasetRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteDatasetRepo_List(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("zulu")))
	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("alpha", testutil.WithMilestones())))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, 0, list[0].MilestoneCount)
	assert.Equal(t, 2, list[0].InstitutionCount)
	assert.Equal(t, "zulu", list[1].Name)
	assert.Equal(t, 2, list[1].MilestoneCount)
	assert.WithinDuration(t, time.Now(), list[1].UpdatedAt, time.Minute)
}

func TestSQLiteDatasetRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDatasetRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("gone")))
	require.NoError(t, repo.Delete(ctx, "gone"))

	_, err := repo.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)

	var orphans int
	require.NoError(t, database.QueryRow(`SELECT
		(SELECT COUNT(*) FROM milestones) + (SELECT COUNT(*) FROM institutions)`).Scan(&orphans))
	assert.Zero(t, orphans)

	assert.ErrorIs(t, repo.Delete(ctx, "gone"), ErrNotFound)
}

func TestSQLiteSource_Load(t *testing.T) {
	repo := NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("live")))

	src := NewSQLiteSource(repo, "live")
	d, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "live", d.Name)

	require.NoError(t, repo.Save(ctx, testutil.NewTestDataset("live", testutil.WithMilestones())))
	d, err = src.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, d.Milestones)

	_, err = NewSQLiteSource(repo, "missing").Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
