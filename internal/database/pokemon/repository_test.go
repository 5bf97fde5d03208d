package pokemon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/pokescout/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "pokemon.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Pokemon{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func newPikachu() *entities.Pokemon {
	return &entities.Pokemon{
		Name:           "pikachu",
		Height:         4,
		Weight:         60,
		BaseExperience: 112,
		Types:          datatypes.JSONSlice[string]{"electric"},
		Abilities:      datatypes.JSONSlice[string]{"static", "lightning-rod"},
		Stats:          datatypes.NewJSONType(map[string]int{"speed": 90}),
		Moves:          datatypes.JSONSlice[string]{"thunder-shock"},
	}
}

func TestRepository_InsertAndFind(t *testing.T) {
	repo := setupTestDB(t)

	p := newPikachu()
	require.NoError(t, repo.Insert(p))
	assert.NotZero(t, p.ID)

	found, err := repo.FindByName("pikachu")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, 4, found.Height)
	assert.Equal(t, 60, found.Weight)
	assert.Equal(t, 112, found.BaseExperience)
	assert.Equal(t, []string{"electric"}, []string(found.Types))
	assert.Equal(t, []string{"static", "lightning-rod"}, []string(found.Abilities))
	assert.Equal(t, map[string]int{"speed": 90}, found.Stats.Data())
	assert.Equal(t, []string{"thunder-shock"}, []string(found.Moves))
	assert.False(t, found.CreatedAt.IsZero())
}

func TestRepository_FindByName_Miss(t *testing.T) {
	repo := setupTestDB(t)

	found, err := repo.FindByName("mewtwo")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_Insert_DuplicateName(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.Insert(newPikachu()))

	err := repo.Insert(newPikachu())
	assert.ErrorIs(t, err, ErrDuplicateName)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_FindAll(t *testing.T) {
	repo := setupTestDB(t)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, name := range []string{"pikachu", "charizard", "kingler"} {
		p := newPikachu()
		p.Name = name
		require.NoError(t, repo.Insert(p))
	}

	all, err = repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "pikachu", all[0].Name)
	assert.Equal(t, "charizard", all[1].Name)
	assert.Equal(t, "kingler", all[2].Name)
}

func TestRepository_Update(t *testing.T) {
	repo := setupTestDB(t)

	p := newPikachu()
	require.NoError(t, repo.Insert(p))
	id := p.ID

	p.Weight = 999
	p.Types = datatypes.JSONSlice[string]{"electric", "fairy"}
	require.NoError(t, repo.Update(p))

	found, err := repo.FindByName("pikachu")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, 999, found.Weight)
	assert.Equal(t, []string{"electric", "fairy"}, []string(found.Types))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_Update_RequiresID(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.Update(newPikachu())
	assert.Error(t, err)
}

func TestRepository_Update_AfterDelete(t *testing.T) {
	repo := setupTestDB(t)

	p := newPikachu()
	require.NoError(t, repo.Insert(p))

	removed, err := repo.DeleteByName("pikachu")
	require.NoError(t, err)
	require.True(t, removed)

	p.Height = 9
	err = repo.Update(p)
	assert.ErrorIs(t, err, ErrNotStored)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepository_Update_Unchanged(t *testing.T) {
	repo := setupTestDB(t)

	p := newPikachu()
	require.NoError(t, repo.Insert(p))
	assert.NoError(t, repo.Update(p))
}

func TestRepository_DeleteByName(t *testing.T) {
	repo := setupTestDB(t)
	require.NoError(t, repo.Insert(newPikachu()))

	removed, err := repo.DeleteByName("pikachu")
	require.NoError(t, err)
	assert.True(t, removed)

	found, err := repo.FindByName("pikachu")
	require.NoError(t, err)
	assert.Nil(t, found)

	removed, err = repo.DeleteByName("pikachu")
	require.NoError(t, err)
	assert.False(t, removed)
}
