package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Rakhulsr/go-catalog/app/db/seeders"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func resetCatalog(t *testing.T, db *gorm.DB, products int) {
	t.Helper()
	for _, table := range []string{"ProductColor", "Product", "Color", "ProductType"} {
		require.NoError(t, db.Exec(fmt.Sprintf("DELETE FROM `%s`", table)).Error)
	}
	require.NoError(t, seeders.DBSeed(context.Background(), db, products, testutil.DiscardLogger()))
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestProductRepository_CreateAndGet_RoundTrip(t *testing.T) {
	db := requireDB(t)
	resetCatalog(t, db, 0)
	ctx := context.Background()
	repo := repositories.NewProductRepository(db)

	product := &models.Product{
		Name:          "LANDSKRONA",
		Description:   "Three-seat sofa",
		ProductTypeID: 1,
		Colors:        []models.Color{seeders.Colors[1], seeders.Colors[0]},
	}
	require.NoError(t, repo.CreateProduct(ctx, product))
	require.NotZero(t, product.ID)

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)

	assert.Equal(t, "LANDSKRONA", got.Name)
	assert.Equal(t, "Three-seat sofa", got.Description)
	assert.Equal(t, "Sofa", got.ProductType.Name)
	require.Len(t, got.Colors, 2)
	assert.Equal(t, "Blue", got.Colors[0].Name)
	assert.Equal(t, "#0000FF", got.Colors[0].Hex)
	assert.Equal(t, "Red", got.Colors[1].Name)

	assert.Equal(t, int64(1), countRows(t, db, &models.Product{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.ProductColor{}))
	assert.Equal(t, int64(len(seeders.Colors)), countRows(t, db, &models.Color{}), "colors are referenced, not written")
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	db := requireDB(t)
	resetCatalog(t, db, 0)

	_, err := repositories.NewProductRepository(db).GetByID(context.Background(), 987654)

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestProductRepository_GetPaginated_PagesPartitionTheCatalog(t *testing.T) {
	db := requireDB(t)
	resetCatalog(t, db, 0)
	ctx := context.Background()
	repo := repositories.NewProductRepository(db)

	// Several products share a timestamp so the id tiebreak is exercised.
	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 11; i++ {
		p := &models.Product{
			Name:          fmt.Sprintf("P%02d", i),
			ProductTypeID: 2,
			CreatedAt:     base.Add(time.Duration(i/3) * time.Minute),
			Colors:        []models.Color{seeders.Colors[i%len(seeders.Colors)]},
		}
		require.NoError(t, repo.CreateProduct(ctx, p))
	}

	for _, pageSize := range []int{1, 3, 4, 11, 20} {
		t.Run(fmt.Sprintf("pageSize=%d", pageSize), func(t *testing.T) {
			seen := map[uint]bool{}
			var previous *models.Product

			for page := 1; page <= 12; page++ {
				products, total, err := repo.GetPaginated(ctx, pageSize, (page-1)*pageSize)
				require.NoError(t, err)
				assert.Equal(t, int64(11), total)
				assert.LessOrEqual(t, len(products), pageSize)

				for i := range products {
					p := products[i]
					assert.False(t, seen[p.ID], "product %d repeated", p.ID)
					seen[p.ID] = true
					assert.Equal(t, "Chair", p.ProductType.Name)
					assert.Len(t, p.Colors, 1)
					if previous != nil {
						assert.False(t, p.CreatedAt.After(previous.CreatedAt), "newest first")
					}
					previous = &p
				}
			}
			assert.Len(t, seen, 11, "no product skipped")
		})
	}
}

func TestProductRepository_GetPaginated_BeyondLastPage(t *testing.T) {
	db := requireDB(t)
	resetCatalog(t, db, 3)

	products, total, err := repositories.NewProductRepository(db).GetPaginated(context.Background(), 20, 40)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, products)
}

func TestColorRepository(t *testing.T) {
	db := requireDB(t)
	resetCatalog(t, db, 0)
	ctx := context.Background()
	repo := repositories.NewColorRepository(db)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(seeders.Colors))

	found, err := repo.FindByIDs(ctx, []uint{1, 2, 999})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductTypeRepository(t *testing.T) {
	db := requireDB(t)
	resetCatalog(t, db, 0)
	ctx := context.Background()
	repo := repositories.NewProductTypeRepository(db)

	types, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(seeders.ProductTypes))

	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDBSeed_IsIdempotent(t *testing.T) {
	db := requireDB(t)
	resetCatalog(t, db, 2)

	require.NoError(t, seeders.DBSeed(context.Background(), db, 0, testutil.DiscardLogger()))

	assert.Equal(t, int64(len(seeders.ProductTypes)), countRows(t, db, &models.ProductType{}))
	assert.Equal(t, int64(len(seeders.Colors)), countRows(t, db, &models.Color{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.Product{}))
}
