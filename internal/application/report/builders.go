package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Los builders son funciones puras sobre un Snapshot: no tocan el almacén y pueden
// ejecutarse en paralelo sobre el mismo snapshot.

const statisticsTopCategories = 10

// BuildCategoryStats reporte 1: estadísticas planas por categoría con sus productos directos.
// Orden: nivel asc, total de productos desc, código asc.
func BuildCategoryStats(snap *catalog.Snapshot) []dto.CategoryStatsItem {
	items := make([]dto.CategoryStatsItem, 0, len(snap.Categories()))
	for _, c := range snap.Categories() {
		r := catalog.RollupOf(snap.DirectProducts(c.ID)).Rounded()
		item := dto.CategoryStatsItem{
			CategoryID:          c.Code,
			CategoryName:        c.Name,
			CategoryDescription: c.Description,
			Level:               c.Level,
			TotalProducts:       r.Count,
			TotalInventoryValue: r.TotalValue,
			AveragePrice:        r.AvgPrice,
			PriceStatistics: dto.PriceStatistics{
				Average: r.AvgPrice,
				Min:     r.MinPrice,
				Max:     r.MaxPrice,
			},
			TotalQuantity: r.TotalQuantity,
			HasProducts:   r.Count > 0,
		}
		if parent := snap.Parent(c); parent != nil {
			name, code := parent.Name, parent.Code
			item.ParentCategoryName = &name
			item.ParentCategoryID = &code
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.TotalProducts != b.TotalProducts {
			return a.TotalProducts > b.TotalProducts
		}
		return a.CategoryID < b.CategoryID
	})
	return items
}

// BuildHierarchyStats reporte 2: rollup de cada categoría sobre su jerarquía completa.
// Con rootsOnly=true solo se evalúan las raíces (orden: productos en jerarquía desc);
// si no, todas las categorías activas (orden: nivel asc, valor de jerarquía desc).
func BuildHierarchyStats(ctx context.Context, snap *catalog.Snapshot, resolver *catalog.Resolver, maxDepth int, rootsOnly bool) ([]dto.HierarchyStatsItem, error) {
	list := snap.Categories()
	if rootsOnly {
		list = snap.Roots()
	}

	type row struct {
		item  dto.HierarchyStatsItem
		value decimal.Decimal
	}
	rows := make([]row, 0, len(list))
	for _, c := range list {
		desc, err := resolver.DescendantsOf(ctx, c, maxDepth, true)
		if err != nil {
			return nil, fmt.Errorf("jerarquía de %s: %w", c.Code, err)
		}
		total := catalog.RollupOf(snap.ProductsIn(catalog.NewIDSet(desc)))
		direct := catalog.RollupOf(snap.DirectProducts(c.ID))
		rows = append(rows, row{
			value: total.TotalValue,
			item: dto.HierarchyStatsItem{
				CategoryID:               c.Code,
				CategoryName:             c.Name,
				Level:                    c.Level,
				DirectProductCount:       direct.Count,
				TotalDescendants:         len(desc) - 1,
				TotalProductsInHierarchy: total.Count,
				DirectInventoryValue:     direct.TotalValue.Round(2),
				TotalHierarchyValue:      total.TotalValue.Round(2),
				DirectQuantity:           direct.TotalQuantity,
				HierarchyQuantity:        total.TotalQuantity,
			},
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if rootsOnly {
			if a.item.TotalProductsInHierarchy != b.item.TotalProductsInHierarchy {
				return a.item.TotalProductsInHierarchy > b.item.TotalProductsInHierarchy
			}
		} else {
			if a.item.Level != b.item.Level {
				return a.item.Level < b.item.Level
			}
			if !a.value.Equal(b.value) {
				return a.value.GreaterThan(b.value)
			}
		}
		return a.item.CategoryID < b.item.CategoryID
	})

	items := make([]dto.HierarchyStatsItem, len(rows))
	for i, r := range rows {
		items[i] = r.item
	}
	return items, nil
}

// BuildTopProducts reporte 3: top-N por valor de inventario en cada categoría con productos.
// Orden: nivel asc, nombre asc, código asc.
func BuildTopProducts(snap *catalog.Snapshot, n int) []dto.TopProductsItem {
	items := make([]dto.TopProductsItem, 0)
	for _, c := range snap.Categories() {
		direct := snap.DirectProducts(c.ID)
		if len(direct) == 0 {
			continue
		}
		top := catalog.TopByInventoryValue(direct, n)
		list := make([]dto.TopProduct, 0, len(top))
		for _, p := range top {
			list = append(list, dto.TopProduct{
				ProductID:      p.Code,
				ProductName:    p.Name,
				Price:          p.Price.Round(2),
				Quantity:       p.Quantity,
				InventoryValue: p.InventoryValue().Round(2),
			})
		}
		items = append(items, dto.TopProductsItem{
			CategoryID:         c.Code,
			CategoryName:       c.Name,
			Level:              c.Level,
			ParentCategoryName: parentName(snap, c),
			ProductCount:       len(direct),
			TopProducts:        list,
		})
	}
	return items
}

// parentName nombre del padre directo; nil para las raíces.
func parentName(snap *catalog.Snapshot, c *entity.Category) *string {
	parent := snap.Parent(c)
	if parent == nil {
		return nil
	}
	name := parent.Name
	return &name
}

// BuildDistribution reporte 4: distribución por nivel, rango de precio y nivel de stock.
func BuildDistribution(snap *catalog.Snapshot) dto.DistributionReport {
	categoryName := func(id string) string {
		if c, ok := snap.Category(id); ok {
			return c.Name
		}
		return ""
	}

	// Por nivel de la categoría dueña.
	type levelAgg struct {
		rollup     catalog.Rollup
		categories map[string]struct{}
	}
	levels := make(map[int]*levelAgg)
	stock := make(map[catalog.StockLevel]*dto.StockLevelGroup, len(catalog.StockLevels))
	stockCats := make(map[catalog.StockLevel]map[string]struct{}, len(catalog.StockLevels))
	for _, lvl := range catalog.StockLevels {
		stock[lvl] = &dto.StockLevelGroup{Label: lvl.Label(), Categories: []string{}}
		stockCats[lvl] = make(map[string]struct{})
	}

	for _, p := range snap.Products() {
		c, ok := snap.Category(p.CategoryID)
		if !ok {
			continue
		}
		agg, ok := levels[c.Level]
		if !ok {
			agg = &levelAgg{categories: make(map[string]struct{})}
			levels[c.Level] = agg
		}
		agg.rollup.Add(p)
		agg.categories[c.ID] = struct{}{}

		lvl := catalog.ClassifyStock(p.Quantity)
		stock[lvl].Count++
		stockCats[lvl][c.Name] = struct{}{}
	}

	byLevel := make([]dto.LevelDistribution, 0, len(levels))
	for level, agg := range levels {
		r := agg.rollup.Rounded()
		byLevel = append(byLevel, dto.LevelDistribution{
			Level:            level,
			UniqueCategories: len(agg.categories),
			ProductCount:     r.Count,
			TotalValue:       r.TotalValue,
			AvgPrice:         r.AvgPrice,
		})
	}
	sort.Slice(byLevel, func(i, j int) bool { return byLevel[i].Level < byLevel[j].Level })

	hist := catalog.Histogram(snap.Products(), categoryName)
	ranges := make([]dto.PriceRange, 0, len(hist))
	for _, b := range hist {
		products := make([]dto.PriceRangeProduct, 0, len(b.Products))
		for _, p := range b.Products {
			products = append(products, dto.PriceRangeProduct{
				ProductID: p.ProductCode,
				Name:      p.Name,
				Price:     p.Price.Round(2),
				Category:  p.CategoryName,
			})
		}
		ranges = append(ranges, dto.PriceRange{
			Bucket:     b.Label,
			LowerBound: b.Lower,
			UpperBound: b.Upper,
			Count:      b.Count,
			Products:   products,
		})
	}

	stockLevels := make([]dto.StockLevelGroup, 0, len(catalog.StockLevels))
	for _, lvl := range catalog.StockLevels {
		g := stock[lvl]
		for name := range stockCats[lvl] {
			g.Categories = append(g.Categories, name)
		}
		sort.Strings(g.Categories)
		stockLevels = append(stockLevels, *g)
	}

	return dto.DistributionReport{
		ByLevel:     byLevel,
		PriceRanges: ranges,
		StockLevels: stockLevels,
	}
}

// BuildPerformanceMetrics rendimiento de las categorías con productos directos.
// Orden: valor total desc, código asc.
func BuildPerformanceMetrics(snap *catalog.Snapshot) []dto.PerformanceMetric {
	type row struct {
		item  dto.PerformanceMetric
		value decimal.Decimal
	}
	var rows []row
	for _, c := range snap.Categories() {
		r := catalog.RollupOf(snap.DirectProducts(c.ID))
		if r.Count == 0 {
			continue
		}
		rounded := r.Rounded()
		rows = append(rows, row{
			value: r.TotalValue,
			item: dto.PerformanceMetric{
				CategoryID:   c.Code,
				CategoryName: c.Name,
				ProductCount: r.Count,
				PriceRange: dto.PriceRangeStats{
					Min: rounded.MinPrice,
					Max: rounded.MaxPrice,
					Avg: rounded.AvgPrice,
				},
				TotalValue:         rounded.TotalValue,
				TotalStock:         r.TotalQuantity,
				AvgValuePerProduct: r.AvgValue().Round(2),
			},
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].value.Equal(rows[j].value) {
			return rows[i].value.GreaterThan(rows[j].value)
		}
		return rows[i].item.CategoryID < rows[j].item.CategoryID
	})
	items := make([]dto.PerformanceMetric, len(rows))
	for i, r := range rows {
		items[i] = r.item
	}
	return items
}

// BuildProductsByCategory categorías con productos directos, con su lista de productos.
// Orden: nivel asc, valor total desc, código asc.
func BuildProductsByCategory(snap *catalog.Snapshot) []dto.ProductsByCategoryItem {
	type row struct {
		item  dto.ProductsByCategoryItem
		value decimal.Decimal
	}
	var rows []row
	for _, c := range snap.Categories() {
		direct := snap.DirectProducts(c.ID)
		if len(direct) == 0 {
			continue
		}
		r := catalog.RollupOf(direct)
		rounded := r.Rounded()
		products := make([]dto.ProductBrief, 0, len(direct))
		for _, p := range direct {
			products = append(products, dto.ProductBrief{
				ProductID: p.Code,
				Name:      p.Name,
				Price:     p.Price.Round(2),
				Quantity:  p.Quantity,
			})
		}
		rows = append(rows, row{
			value: r.TotalValue,
			item: dto.ProductsByCategoryItem{
				CategoryID:         c.Code,
				CategoryName:       c.Name,
				Level:              c.Level,
				ParentCategoryName: parentName(snap, c),
				ProductCount:       r.Count,
				TotalValue:         rounded.TotalValue,
				TotalQuantity:      r.TotalQuantity,
				PriceStatistics: dto.PriceStatistics{
					Average: rounded.AvgPrice,
					Min:     rounded.MinPrice,
					Max:     rounded.MaxPrice,
				},
				AverageQuantityPerProduct: catalog.RoundNull(r.AvgQuantity()),
				Products:                  products,
			},
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.item.Level != b.item.Level {
			return a.item.Level < b.item.Level
		}
		if !a.value.Equal(b.value) {
			return a.value.GreaterThan(b.value)
		}
		return a.item.CategoryID < b.item.CategoryID
	})
	items := make([]dto.ProductsByCategoryItem, len(rows))
	for i, r := range rows {
		items[i] = r.item
	}
	return items
}

// BuildProductStatistics estadísticas globales y las 10 categorías con más productos
// (empates por nombre y código).
func BuildProductStatistics(snap *catalog.Snapshot) dto.ProductStatisticsResponse {
	r := catalog.RollupOf(snap.Products())
	rounded := r.Rounded()
	out := dto.ProductStatisticsResponse{
		Overall: dto.OverallStats{
			TotalProducts:       r.Count,
			TotalInventoryValue: rounded.TotalValue,
			TotalQuantity:       r.TotalQuantity,
			AvgPrice:            rounded.AvgPrice,
			AvgQuantity:         catalog.RoundNull(r.AvgQuantity()),
			MinPrice:            rounded.MinPrice,
			MaxPrice:            rounded.MaxPrice,
		},
		ByCategory: make([]dto.CategoryCount, 0),
	}

	var cats []*entity.Category
	for _, c := range snap.Categories() {
		if len(snap.DirectProducts(c.ID)) > 0 {
			cats = append(cats, c)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool {
		ni, nj := len(snap.DirectProducts(cats[i].ID)), len(snap.DirectProducts(cats[j].ID))
		if ni != nj {
			return ni > nj
		}
		if cats[i].Name != cats[j].Name {
			return cats[i].Name < cats[j].Name
		}
		return cats[i].Code < cats[j].Code
	})
	if len(cats) > statisticsTopCategories {
		cats = cats[:statisticsTopCategories]
	}
	for _, c := range cats {
		cr := catalog.RollupOf(snap.DirectProducts(c.ID)).Rounded()
		out.ByCategory = append(out.ByCategory, dto.CategoryCount{
			CategoryID:   c.Code,
			CategoryName: c.Name,
			ProductCount: cr.Count,
			TotalValue:   cr.TotalValue,
			AvgPrice:     cr.AvgPrice,
		})
	}
	return out
}

// BuildTree bosque de categorías activas ordenado por nombre. Con rootCode no vacío el
// árbol parte de esa categoría. ChildrenCount es el total de descendientes hasta maxDepth.
func BuildTree(ctx context.Context, snap *catalog.Snapshot, resolver *catalog.Resolver, maxDepth int, rootCode string) ([]dto.CategoryTreeNode, error) {
	roots := snap.Roots()
	if rootCode != "" {
		if !catalog.ValidCode(rootCode) {
			return nil, fmt.Errorf("código de categoría %q: %w", rootCode, domain.ErrInvalidInput)
		}
		root, _ := snap.GetByCode(ctx, rootCode)
		if root == nil {
			return nil, fmt.Errorf("categoría %s: %w", rootCode, domain.ErrNotFound)
		}
		roots = []*entity.Category{root}
	}

	nodes := make([]dto.CategoryTreeNode, 0, len(roots))
	for _, r := range roots {
		visited := map[string]struct{}{r.ID: {}}
		node, err := buildNode(ctx, snap, resolver, r, maxDepth, visited)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// buildNode anida hijos directos mientras queden niveles; visited corta ciclos.
func buildNode(ctx context.Context, snap *catalog.Snapshot, resolver *catalog.Resolver, c *entity.Category, depthLeft int, visited map[string]struct{}) (dto.CategoryTreeNode, error) {
	node := dto.CategoryTreeNode{
		ID:                  c.ID,
		CategoryID:          c.Code,
		CategoryName:        c.Name,
		CategoryDescription: c.Description,
		Level:               c.Level,
		Children:            []dto.CategoryTreeNode{},
	}
	if depthLeft <= 0 {
		return node, nil
	}
	desc, err := resolver.DescendantsOf(ctx, c, depthLeft, false)
	if err != nil {
		return node, err
	}
	node.ChildrenCount = len(desc)

	for _, child := range snap.Children(c.ID) {
		if _, seen := visited[child.ID]; seen {
			continue
		}
		visited[child.ID] = struct{}{}
		n, err := buildNode(ctx, snap, resolver, child, depthLeft-1, visited)
		if err != nil {
			return node, err
		}
		node.Children = append(node.Children, n)
	}
	return node, nil
}
