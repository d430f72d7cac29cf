package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/report"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/seed"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func sampleUseCase(t *testing.T) (*report.ReportUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Load(context.Background(), store.Categories(), store.Products(), seed.Sample()))
	uc := report.NewReportUseCase(store.Catalog(), report.Config{Timeout: 2 * time.Second}, report.NewMetrics(prometheus.NewRegistry()))
	return uc, store
}

// abcUseCase árbol A → B → C con P1 (10 × 2) en B y P2 (5 × 1) en C.
func abcUseCase(t *testing.T) *report.ReportUseCase {
	t.Helper()
	c := seed.Catalog{
		Categories: []seed.Category{
			{Code: "A", Name: "A"},
			{Code: "B", Name: "B", ParentCode: "A"},
			{Code: "C", Name: "C", ParentCode: "B"},
		},
		Products: []seed.Product{
			{Code: "P1", Name: "Uno", Price: decimal.NewFromInt(10), Quantity: 2, CategoryCode: "B"},
			{Code: "P2", Name: "Dos", Price: decimal.NewFromInt(5), Quantity: 1, CategoryCode: "C"},
		},
	}
	store := memory.NewStore()
	require.NoError(t, seed.Load(context.Background(), store.Categories(), store.Products(), c))
	return report.NewReportUseCase(store.Catalog(), report.Config{}, nil)
}

type countingReader struct {
	inner repository.CatalogSnapshotReader
	calls atomic.Int32
}

func (r *countingReader) ReadCatalog(ctx context.Context) ([]*entity.Category, []*entity.Product, error) {
	r.calls.Add(1)
	return r.inner.ReadCatalog(ctx)
}

type blockingReader struct{}

func (blockingReader) ReadCatalog(ctx context.Context) ([]*entity.Category, []*entity.Product, error) {
	<-ctx.Done()
	return nil, nil, ctx.Err()
}

// ── Reporte 2: jerarquía ─────────────────────────────────────────────────────

func TestHierarchy_EscenarioABC(t *testing.T) {
	uc := abcUseCase(t)

	rep, err := uc.Hierarchy(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Items, 1)

	a := rep.Items[0]
	assert.Equal(t, "A", a.CategoryID)
	assert.Equal(t, 2, a.TotalDescendants)
	assert.Equal(t, 2, a.TotalProductsInHierarchy)
	assert.Equal(t, "25", a.TotalHierarchyValue.String())
	assert.Equal(t, int64(3), a.HierarchyQuantity)
	assert.Equal(t, 0, a.DirectProductCount)
}

func TestHierarchy_RaicesOrdenadasPorProductos(t *testing.T) {
	uc, _ := sampleUseCase(t)

	rep, err := uc.Hierarchy(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Items, 3)

	assert.Equal(t, "CAT001", rep.Items[0].CategoryID)
	assert.Equal(t, 18, rep.Items[0].TotalProductsInHierarchy)
	assert.Equal(t, 7, rep.Items[0].TotalDescendants)
	assert.Equal(t, "CAT002", rep.Items[1].CategoryID)
	assert.Equal(t, 6, rep.Items[1].TotalProductsInHierarchy)
	assert.Equal(t, "CAT003", rep.Items[2].CategoryID)
	assert.Equal(t, 2, rep.Items[2].TotalProductsInHierarchy)
}

// ── Reporte 1: estadísticas planas ───────────────────────────────────────────

func TestCategoryStats_CategoriaVaciaConNulos(t *testing.T) {
	uc := abcUseCase(t)

	rep, err := uc.CategoryStats(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Items, 3)

	a := rep.Items[0]
	assert.Equal(t, "A", a.CategoryID)
	assert.False(t, a.HasProducts)
	assert.False(t, a.AveragePrice.Valid)
	assert.False(t, a.PriceStatistics.Min.Valid)
	assert.Nil(t, a.ParentCategoryID)

	b := rep.Items[1]
	require.NotNil(t, b.ParentCategoryID)
	assert.Equal(t, "A", *b.ParentCategoryID)
	assert.Equal(t, "20", b.TotalInventoryValue.String())
}

func TestCategoryStats_NivelCoherenteConPadre(t *testing.T) {
	uc, store := sampleUseCase(t)

	rep, err := uc.CategoryStats(context.Background())
	require.NoError(t, err)
	for _, item := range rep.Items {
		if item.ParentCategoryID == nil {
			assert.Equal(t, 0, item.Level, item.CategoryID)
			continue
		}
		parent, err := store.Categories().GetByCode(context.Background(), *item.ParentCategoryID)
		require.NoError(t, err)
		assert.Equal(t, parent.Level+1, item.Level, item.CategoryID)
	}
}

// Una categoría activa cuyo padre fue desactivado queda fuera del bosque: no tiene padre
// en el snapshot pero tampoco es raíz. Sus productos siguen en los reportes planos.
func TestHierarchy_PadreInactivoExcluyeSubarbol(t *testing.T) {
	ctx := context.Background()
	c := seed.Catalog{
		Categories: []seed.Category{
			{Code: "A", Name: "A"},
			{Code: "B", Name: "B", ParentCode: "A"},
		},
		Products: []seed.Product{
			{Code: "P1", Name: "Uno", Price: decimal.NewFromInt(10), Quantity: 2, CategoryCode: "B"},
		},
	}
	store := memory.NewStore()
	require.NoError(t, seed.Load(ctx, store.Categories(), store.Products(), c))
	a, err := store.Categories().GetByCode(ctx, "A")
	require.NoError(t, err)
	require.NoError(t, store.Categories().SoftDelete(ctx, a.ID))
	uc := report.NewReportUseCase(store.Catalog(), report.Config{}, nil)

	hier, err := uc.Hierarchy(ctx)
	require.NoError(t, err)
	assert.Empty(t, hier.Items)

	tree, err := uc.CategoryTree(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, tree.Roots)

	stats, err := uc.CategoryStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.Items, 1)
	assert.Equal(t, "B", stats.Items[0].CategoryID)
	assert.Equal(t, 1, stats.Items[0].TotalProducts)
	assert.Nil(t, stats.Items[0].ParentCategoryName)

	top, err := uc.TopProducts(ctx)
	require.NoError(t, err)
	require.Len(t, top.Items, 1)
	assert.Nil(t, top.Items[0].ParentCategoryName)
}

// ── Reporte 3: top-N ─────────────────────────────────────────────────────────

func TestTopProducts_LimiteYOrden(t *testing.T) {
	uc, _ := sampleUseCase(t)

	rep, err := uc.TopProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, rep.TopN)

	for _, item := range rep.Items {
		assert.LessOrEqual(t, len(item.TopProducts), 5)
		assert.NotEmpty(t, item.TopProducts)
		for i := 1; i < len(item.TopProducts); i++ {
			prev, cur := item.TopProducts[i-1].InventoryValue, item.TopProducts[i].InventoryValue
			assert.False(t, cur.GreaterThan(prev), "orden descendente en %s", item.CategoryID)
		}
	}
	// Las raíces sin productos directos no aparecen.
	for _, item := range rep.Items {
		assert.NotEqual(t, "CAT001", item.CategoryID)
	}
}

func TestTopProducts_NombreDelPadre(t *testing.T) {
	uc, _ := sampleUseCase(t)

	rep, err := uc.TopProducts(context.Background())
	require.NoError(t, err)

	byCode := make(map[string]dto.TopProductsItem, len(rep.Items))
	for _, item := range rep.Items {
		byCode[item.CategoryID] = item
	}

	accessories, ok := byCode["CAT103"]
	require.True(t, ok)
	require.NotNil(t, accessories.ParentCategoryName)
	assert.Equal(t, "Electronics", *accessories.ParentCategoryName)

	laptops, ok := byCode["CAT1011"]
	require.True(t, ok)
	require.NotNil(t, laptops.ParentCategoryName)
	assert.Equal(t, "Computers", *laptops.ParentCategoryName)

	sports, ok := byCode["CAT003"]
	require.True(t, ok)
	assert.Nil(t, sports.ParentCategoryName)

	raw, err := json.Marshal(sports)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"parent_category_name":null`)
}

func TestProductAggregation_NombreDelPadre(t *testing.T) {
	uc, _ := sampleUseCase(t)

	res, err := uc.ProductAggregation(context.Background())
	require.NoError(t, err)

	parents := make(map[string]*string, len(res.ProductsByCategoryStats))
	for _, item := range res.ProductsByCategoryStats {
		parents[item.CategoryID] = item.ParentCategoryName
	}
	require.Contains(t, parents, "CAT1022")
	require.NotNil(t, parents["CAT1022"])
	assert.Equal(t, "Mobile Devices", *parents["CAT1022"])
	require.Contains(t, parents, "CAT003")
	assert.Nil(t, parents["CAT003"])
}

// ── Reporte 4: distribución ──────────────────────────────────────────────────

func TestDistribution_ParticionesCompletas(t *testing.T) {
	uc, _ := sampleUseCase(t)

	rep, err := uc.Distribution(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.PriceRanges, 8)
	total := 0
	for _, r := range rep.PriceRanges {
		total += r.Count
	}
	assert.Equal(t, 26, total)

	require.Len(t, rep.StockLevels, 4)
	assert.Equal(t, "Low Stock (≤10)", rep.StockLevels[0].Label)
	assert.Equal(t, "High Stock (>100)", rep.StockLevels[3].Label)
	stock := 0
	for _, s := range rep.StockLevels {
		stock += s.Count
	}
	assert.Equal(t, 26, stock)

	levels := 0
	for _, l := range rep.ByLevel {
		levels += l.ProductCount
	}
	assert.Equal(t, 26, levels)
}

// ── Compuestos ───────────────────────────────────────────────────────────────

func TestAll_UnSoloSnapshot(t *testing.T) {
	_, store := sampleUseCase(t)
	reader := &countingReader{inner: store.Catalog()}
	uc := report.NewReportUseCase(reader, report.Config{}, nil)

	bundle, err := uc.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), reader.calls.Load())
	assert.Len(t, bundle.CategoryStats, 12)
	assert.Len(t, bundle.Hierarchy, 3)
	assert.Len(t, bundle.Distribution.PriceRanges, 8)
}

func TestCategoryAggregation_Resumen(t *testing.T) {
	uc, _ := sampleUseCase(t)

	res, err := uc.CategoryAggregation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, res.Summary.TotalCategories)
	assert.Equal(t, 8, res.Summary.CategoriesWithProducts)
	assert.Equal(t, 4, res.Summary.EmptyCategories)
	assert.Len(t, res.PerformanceMetrics, 8)
}

func TestProductStatistics_Global(t *testing.T) {
	uc := abcUseCase(t)

	res, err := uc.ProductStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Overall.TotalProducts)
	assert.Equal(t, "25", res.Overall.TotalInventoryValue.String())
	assert.Equal(t, "7.5", res.Overall.AvgPrice.Decimal.String())
	assert.Len(t, res.ByCategory, 2)
}

func TestCategoryTree_Bosque(t *testing.T) {
	uc, _ := sampleUseCase(t)

	tree, err := uc.CategoryTree(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 3, tree.TotalRoots)
	assert.Equal(t, "Electronics", tree.Roots[0].CategoryName)
	assert.Equal(t, 7, tree.Roots[0].ChildrenCount)
	assert.Len(t, tree.Roots[0].Children, 3)

	sub, err := uc.CategoryTree(context.Background(), "CAT102")
	require.NoError(t, err)
	require.Len(t, sub.Roots, 1)
	assert.Equal(t, 2, sub.Roots[0].ChildrenCount)
}

func TestCategoryTree_Errores(t *testing.T) {
	uc, _ := sampleUseCase(t)

	_, err := uc.CategoryTree(context.Background(), "CAT099")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CategoryTree(context.Background(), "CAT 1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Catálogo vacío y fallos ──────────────────────────────────────────────────

func TestReportes_CatalogoVacio(t *testing.T) {
	uc := report.NewReportUseCase(memory.NewStore().Catalog(), report.Config{}, nil)

	bundle, err := uc.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bundle.CategoryStats)
	assert.Empty(t, bundle.Hierarchy)
	assert.Empty(t, bundle.TopProducts)
	assert.Len(t, bundle.Distribution.PriceRanges, 8)
	for _, r := range bundle.Distribution.PriceRanges {
		assert.Zero(t, r.Count)
	}

	stats, err := uc.ProductStatistics(context.Background())
	require.NoError(t, err)
	assert.False(t, stats.Overall.AvgPrice.Valid)
}

func TestReportes_AlmacenCaido(t *testing.T) {
	uc, store := sampleUseCase(t)
	store.SetFailure(errors.New("conexión rechazada"))

	_, err := uc.CategoryAggregation(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestReportes_Timeout(t *testing.T) {
	uc := report.NewReportUseCase(blockingReader{}, report.Config{Timeout: 20 * time.Millisecond}, nil)

	res, err := uc.Hierarchy(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}
