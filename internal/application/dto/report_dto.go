package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los agregados de precio usan decimal.NullDecimal: null en JSON cuando el conjunto está vacío.

// PriceStatistics media, mínimo y máximo de precio.
type PriceStatistics struct {
	Average decimal.NullDecimal `json:"average"`
	Min     decimal.NullDecimal `json:"min"`
	Max     decimal.NullDecimal `json:"max"`
}

// CategoryStatsItem estadísticas planas de una categoría (solo productos directos).
type CategoryStatsItem struct {
	CategoryID          string              `json:"category_id"`
	CategoryName        string              `json:"category_name"`
	CategoryDescription string              `json:"category_description"`
	Level               int                 `json:"level"`
	ParentCategoryName  *string             `json:"parent_category_name"`
	ParentCategoryID    *string             `json:"parent_category_id"`
	TotalProducts       int                 `json:"total_products"`
	TotalInventoryValue decimal.Decimal     `json:"total_inventory_value"`
	AveragePrice        decimal.NullDecimal `json:"average_price"`
	PriceStatistics     PriceStatistics     `json:"price_statistics"`
	TotalQuantity       int64               `json:"total_quantity"`
	HasProducts         bool                `json:"has_products"`
}

// CategoryStatsReport reporte 1.
type CategoryStatsReport struct {
	Items       []CategoryStatsItem `json:"items"`
	Total       int                 `json:"total"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// HierarchyStatsItem rollup de una categoría sobre toda su jerarquía (ella incluida).
type HierarchyStatsItem struct {
	CategoryID               string          `json:"category_id"`
	CategoryName             string          `json:"category_name"`
	Level                    int             `json:"level"`
	DirectProductCount       int             `json:"direct_product_count"`
	TotalDescendants         int             `json:"total_descendants"`
	TotalProductsInHierarchy int             `json:"total_products_in_hierarchy"`
	DirectInventoryValue     decimal.Decimal `json:"direct_inventory_value"`
	TotalHierarchyValue      decimal.Decimal `json:"total_hierarchy_value"`
	DirectQuantity           int64           `json:"direct_quantity"`
	HierarchyQuantity        int64           `json:"hierarchy_quantity"`
}

// HierarchyReport reporte 2.
type HierarchyReport struct {
	Items       []HierarchyStatsItem `json:"items"`
	Total       int                  `json:"total"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// TopProduct producto dentro del top-N de su categoría.
type TopProduct struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// TopProductsItem top-N de una categoría con productos.
type TopProductsItem struct {
	CategoryID         string       `json:"category_id"`
	CategoryName       string       `json:"category_name"`
	Level              int          `json:"level"`
	ParentCategoryName *string      `json:"parent_category_name"`
	ProductCount       int          `json:"product_count"`
	TopProducts        []TopProduct `json:"top_products"`
}

// TopProductsReport reporte 3.
type TopProductsReport struct {
	Items       []TopProductsItem `json:"items"`
	Total       int               `json:"total"`
	TopN        int               `json:"top_n"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// LevelDistribution productos agrupados por nivel de su categoría.
type LevelDistribution struct {
	Level            int                 `json:"level"`
	UniqueCategories int                 `json:"unique_categories"`
	ProductCount     int                 `json:"product_count"`
	TotalValue       decimal.Decimal     `json:"total_value"`
	AvgPrice         decimal.NullDecimal `json:"avg_price"`
}

// PriceRangeProduct producto dentro de un rango de precio.
type PriceRangeProduct struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
}

// PriceRange cubo [lower_bound, upper_bound); upper_bound null en el cubo de desborde.
type PriceRange struct {
	Bucket     string              `json:"bucket"`
	LowerBound decimal.Decimal     `json:"lower_bound"`
	UpperBound decimal.NullDecimal `json:"upper_bound"`
	Count      int                 `json:"count"`
	Products   []PriceRangeProduct `json:"products"`
}

// StockLevelGroup productos en un nivel de stock y los nombres de sus categorías.
type StockLevelGroup struct {
	Label      string   `json:"label"`
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

// DistributionReport reporte 4: distribución facetada.
type DistributionReport struct {
	ByLevel     []LevelDistribution `json:"by_level"`
	PriceRanges []PriceRange        `json:"price_ranges"`
	StockLevels []StockLevelGroup   `json:"stock_levels"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// PerformanceMetric rendimiento de una categoría con productos.
type PerformanceMetric struct {
	CategoryID         string          `json:"category_id"`
	CategoryName       string          `json:"category_name"`
	ProductCount       int             `json:"product_count"`
	PriceRange         PriceRangeStats `json:"price_range"`
	TotalValue         decimal.Decimal `json:"total_value"`
	TotalStock         int64           `json:"total_stock"`
	AvgValuePerProduct decimal.Decimal `json:"avg_value_per_product"`
}

// PriceRangeStats mínimo, máximo y media de precio.
type PriceRangeStats struct {
	Min decimal.NullDecimal `json:"min"`
	Max decimal.NullDecimal `json:"max"`
	Avg decimal.NullDecimal `json:"avg"`
}

// AggregationSummary resumen de la agregación de categorías.
type AggregationSummary struct {
	TotalCategories        int `json:"total_categories"`
	CategoriesWithProducts int `json:"categories_with_products"`
	EmptyCategories        int `json:"empty_categories"`
}

// CategoryAggregationResponse agregación completa de categorías.
type CategoryAggregationResponse struct {
	CategoriesWithProducts []CategoryStatsItem  `json:"categories_with_products"`
	HierarchyStats         []HierarchyStatsItem `json:"hierarchy_stats"`
	PerformanceMetrics     []PerformanceMetric  `json:"performance_metrics"`
	Summary                AggregationSummary   `json:"summary"`
	GeneratedAt            time.Time            `json:"generated_at"`
}

// ProductBrief producto resumido dentro de una categoría.
type ProductBrief struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"product_name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// ProductsByCategoryItem productos y estadísticas de una categoría con productos.
type ProductsByCategoryItem struct {
	CategoryID                string              `json:"category_id"`
	CategoryName              string              `json:"category_name"`
	Level                     int                 `json:"level"`
	ParentCategoryName        *string             `json:"parent_category_name"`
	ProductCount              int                 `json:"product_count"`
	TotalValue                decimal.Decimal     `json:"total_value"`
	TotalQuantity             int64               `json:"total_quantity"`
	PriceStatistics           PriceStatistics     `json:"price_statistics"`
	AverageQuantityPerProduct decimal.NullDecimal `json:"average_quantity_per_product"`
	Products                  []ProductBrief      `json:"products"`
}

// ProductAggregationSummary resumen de la agregación de productos.
type ProductAggregationSummary struct {
	TotalProductsAnalyzed  int             `json:"total_products_analyzed"`
	CategoriesWithProducts int             `json:"categories_with_products"`
	TotalInventoryValue    decimal.Decimal `json:"total_inventory_value"`
}

// ProductAggregationResponse agregación completa de productos por categoría.
type ProductAggregationResponse struct {
	ProductsByCategoryStats []ProductsByCategoryItem  `json:"products_by_category_stats"`
	HierarchicalAnalysis    []HierarchyStatsItem      `json:"hierarchical_analysis"`
	TopProductsByCategory   []TopProductsItem         `json:"top_products_by_category"`
	CategoryDistribution    DistributionReport        `json:"category_distribution"`
	Summary                 ProductAggregationSummary `json:"summary"`
	GeneratedAt             time.Time                 `json:"generated_at"`
}

// OverallStats estadísticas globales del catálogo activo.
type OverallStats struct {
	TotalProducts       int                 `json:"total_products"`
	TotalInventoryValue decimal.Decimal     `json:"total_inventory_value"`
	TotalQuantity       int64               `json:"total_quantity"`
	AvgPrice            decimal.NullDecimal `json:"avg_price"`
	AvgQuantity         decimal.NullDecimal `json:"avg_quantity"`
	MinPrice            decimal.NullDecimal `json:"min_price"`
	MaxPrice            decimal.NullDecimal `json:"max_price"`
}

// CategoryCount conteo de productos de una categoría.
type CategoryCount struct {
	CategoryID   string              `json:"category_id"`
	CategoryName string              `json:"category_name"`
	ProductCount int                 `json:"product_count"`
	TotalValue   decimal.Decimal     `json:"total_value"`
	AvgPrice     decimal.NullDecimal `json:"avg_price"`
}

// ProductStatisticsResponse estadísticas globales y top 10 de categorías por número de productos.
type ProductStatisticsResponse struct {
	Overall     OverallStats    `json:"overall"`
	ByCategory  []CategoryCount `json:"by_category"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// ReportBundle los cuatro reportes calculados sobre el mismo snapshot.
type ReportBundle struct {
	CategoryStats []CategoryStatsItem  `json:"category_stats"`
	Hierarchy     []HierarchyStatsItem `json:"hierarchy"`
	TopProducts   []TopProductsItem    `json:"top_products"`
	Distribution  DistributionReport   `json:"distribution"`
	GeneratedAt   time.Time            `json:"generated_at"`
}
