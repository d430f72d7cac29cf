// Package report ensambla los reportes de agregación del catálogo. Cada petición lee un
// único snapshot y todos los reportes de esa petición se calculan sobre él.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

const defaultTimeout = 15 * time.Second

// Config parámetros del ensamblador.
type Config struct {
	MaxDepth int
	TopN     int
	Timeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = catalog.DefaultMaxDepth
	}
	if c.TopN <= 0 {
		c.TopN = catalog.DefaultTopN
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// ReportUseCase construye los reportes. No guarda estado por petición: es seguro usarlo
// de forma concurrente.
type ReportUseCase struct {
	reader  repository.CatalogSnapshotReader
	cfg     Config
	metrics *Metrics
	now     func() time.Time
}

// NewReportUseCase construye el caso de uso. metrics puede ser nil.
func NewReportUseCase(reader repository.CatalogSnapshotReader, cfg Config, metrics *Metrics) *ReportUseCase {
	return &ReportUseCase{
		reader:  reader,
		cfg:     cfg.withDefaults(),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// run lee el snapshot bajo el timeout configurado y ejecuta fn sobre él. Si el plazo
// vence, el resultado es domain.ErrTimeout y no se devuelve nada parcial.
func (uc *ReportUseCase) run(ctx context.Context, name string, fn func(ctx context.Context, snap *catalog.Snapshot) error) error {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()
	start := time.Now()

	err := func() error {
		categories, products, err := uc.reader.ReadCatalog(ctx)
		if err != nil {
			return fmt.Errorf("report.%s: leer catálogo: %w", name, err)
		}
		snap := catalog.NewSnapshot(categories, products, uc.now())
		return fn(ctx, snap)
	}()
	if err != nil && ctx.Err() != nil && !errors.Is(err, domain.ErrTimeout) {
		err = fmt.Errorf("report.%s: %w: %w", name, domain.ErrTimeout, err)
	}

	uc.metrics.observe(name, start, err)
	log := logger.FromContext(ctx)
	if err != nil {
		log.Warn().Err(err).Str("report", name).Dur("elapsed", time.Since(start)).Msg("reporte fallido")
	} else {
		log.Debug().Str("report", name).Dur("elapsed", time.Since(start)).Msg("reporte generado")
	}
	return err
}

func (uc *ReportUseCase) resolver(snap *catalog.Snapshot) *catalog.Resolver {
	return catalog.NewResolver(snap)
}

// CategoryStats reporte 1.
func (uc *ReportUseCase) CategoryStats(ctx context.Context) (*dto.CategoryStatsReport, error) {
	var out *dto.CategoryStatsReport
	err := uc.run(ctx, "category_stats", func(ctx context.Context, snap *catalog.Snapshot) error {
		items := BuildCategoryStats(snap)
		out = &dto.CategoryStatsReport{Items: items, Total: len(items), GeneratedAt: snap.TakenAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Hierarchy reporte 2 sobre las raíces.
func (uc *ReportUseCase) Hierarchy(ctx context.Context) (*dto.HierarchyReport, error) {
	var out *dto.HierarchyReport
	err := uc.run(ctx, "hierarchy", func(ctx context.Context, snap *catalog.Snapshot) error {
		items, err := BuildHierarchyStats(ctx, snap, uc.resolver(snap), uc.cfg.MaxDepth, true)
		if err != nil {
			return err
		}
		out = &dto.HierarchyReport{Items: items, Total: len(items), GeneratedAt: snap.TakenAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TopProducts reporte 3.
func (uc *ReportUseCase) TopProducts(ctx context.Context) (*dto.TopProductsReport, error) {
	var out *dto.TopProductsReport
	err := uc.run(ctx, "top_products", func(ctx context.Context, snap *catalog.Snapshot) error {
		items := BuildTopProducts(snap, uc.cfg.TopN)
		out = &dto.TopProductsReport{Items: items, Total: len(items), TopN: uc.cfg.TopN, GeneratedAt: snap.TakenAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Distribution reporte 4.
func (uc *ReportUseCase) Distribution(ctx context.Context) (*dto.DistributionReport, error) {
	var out *dto.DistributionReport
	err := uc.run(ctx, "distribution", func(ctx context.Context, snap *catalog.Snapshot) error {
		d := BuildDistribution(snap)
		d.GeneratedAt = snap.TakenAt
		out = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// All calcula los cuatro reportes en paralelo sobre un mismo snapshot.
func (uc *ReportUseCase) All(ctx context.Context) (*dto.ReportBundle, error) {
	var out *dto.ReportBundle
	err := uc.run(ctx, "all", func(ctx context.Context, snap *catalog.Snapshot) error {
		b := dto.ReportBundle{GeneratedAt: snap.TakenAt}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			b.CategoryStats = BuildCategoryStats(snap)
			return nil
		})
		g.Go(func() error {
			items, err := BuildHierarchyStats(gctx, snap, uc.resolver(snap), uc.cfg.MaxDepth, true)
			b.Hierarchy = items
			return err
		})
		g.Go(func() error {
			b.TopProducts = BuildTopProducts(snap, uc.cfg.TopN)
			return nil
		})
		g.Go(func() error {
			b.Distribution = BuildDistribution(snap)
			b.Distribution.GeneratedAt = snap.TakenAt
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}
		out = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryAggregation estadísticas por categoría, jerarquía de raíces, métricas de
// rendimiento y resumen.
func (uc *ReportUseCase) CategoryAggregation(ctx context.Context) (*dto.CategoryAggregationResponse, error) {
	var out *dto.CategoryAggregationResponse
	err := uc.run(ctx, "category_aggregation", func(ctx context.Context, snap *catalog.Snapshot) error {
		res := dto.CategoryAggregationResponse{GeneratedAt: snap.TakenAt}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			res.CategoriesWithProducts = BuildCategoryStats(snap)
			return nil
		})
		g.Go(func() error {
			items, err := BuildHierarchyStats(gctx, snap, uc.resolver(snap), uc.cfg.MaxDepth, true)
			res.HierarchyStats = items
			return err
		})
		g.Go(func() error {
			res.PerformanceMetrics = BuildPerformanceMetrics(snap)
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}
		withProducts := 0
		for _, c := range res.CategoriesWithProducts {
			if c.HasProducts {
				withProducts++
			}
		}
		res.Summary = dto.AggregationSummary{
			TotalCategories:        len(res.CategoriesWithProducts),
			CategoriesWithProducts: withProducts,
			EmptyCategories:        len(res.CategoriesWithProducts) - withProducts,
		}
		out = &res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProductAggregation productos por categoría, análisis jerárquico de todas las
// categorías, top-N y distribución.
func (uc *ReportUseCase) ProductAggregation(ctx context.Context) (*dto.ProductAggregationResponse, error) {
	var out *dto.ProductAggregationResponse
	err := uc.run(ctx, "product_aggregation", func(ctx context.Context, snap *catalog.Snapshot) error {
		res := dto.ProductAggregationResponse{GeneratedAt: snap.TakenAt}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			res.ProductsByCategoryStats = BuildProductsByCategory(snap)
			return nil
		})
		g.Go(func() error {
			items, err := BuildHierarchyStats(gctx, snap, uc.resolver(snap), uc.cfg.MaxDepth, false)
			res.HierarchicalAnalysis = items
			return err
		})
		g.Go(func() error {
			res.TopProductsByCategory = BuildTopProducts(snap, uc.cfg.TopN)
			return nil
		})
		g.Go(func() error {
			res.CategoryDistribution = BuildDistribution(snap)
			res.CategoryDistribution.GeneratedAt = snap.TakenAt
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}
		total := catalog.RollupOf(snap.Products())
		res.Summary = dto.ProductAggregationSummary{
			TotalProductsAnalyzed:  total.Count,
			CategoriesWithProducts: len(res.ProductsByCategoryStats),
			TotalInventoryValue:    total.TotalValue.Round(2),
		}
		out = &res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProductStatistics estadísticas globales y top de categorías por número de productos.
func (uc *ReportUseCase) ProductStatistics(ctx context.Context) (*dto.ProductStatisticsResponse, error) {
	var out *dto.ProductStatisticsResponse
	err := uc.run(ctx, "product_statistics", func(ctx context.Context, snap *catalog.Snapshot) error {
		s := BuildProductStatistics(snap)
		s.GeneratedAt = snap.TakenAt
		out = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryTree árbol de categorías; rootCode vacío devuelve el bosque completo.
func (uc *ReportUseCase) CategoryTree(ctx context.Context, rootCode string) (*dto.CategoryTreeResponse, error) {
	if rootCode != "" && !catalog.ValidCode(rootCode) {
		return nil, fmt.Errorf("código de categoría %q: %w", rootCode, domain.ErrInvalidInput)
	}
	var out *dto.CategoryTreeResponse
	err := uc.run(ctx, "category_tree", func(ctx context.Context, snap *catalog.Snapshot) error {
		roots, err := BuildTree(ctx, snap, uc.resolver(snap), uc.cfg.MaxDepth, rootCode)
		if err != nil {
			return err
		}
		out = &dto.CategoryTreeResponse{Roots: roots, TotalRoots: len(roots), GeneratedAt: snap.TakenAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
