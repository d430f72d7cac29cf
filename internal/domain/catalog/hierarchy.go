package catalog

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// DefaultMaxDepth límite de saltos bajo la categoría inicial. Es una cota de seguridad
// contra grafos cíclicos o muy profundos, no una regla de negocio.
const DefaultMaxDepth = 10

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidCode indica si un identificador externo tiene formato válido.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// CategoryFinder puerto mínimo que necesita el resolver. Lo implementan el repositorio de
// categorías y el Snapshot, de modo que el mismo recorrido sirve contra el almacén o en memoria.
type CategoryFinder interface {
	// GetByCode devuelve (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Category, error)
	// ListByParents devuelve los hijos activos directos de los padres dados.
	ListByParents(ctx context.Context, parentIDs []string) ([]*entity.Category, error)
}

// Resolver calcula el cierre de descendientes de una categoría.
// No tiene estado mutable: es seguro usarlo de forma concurrente.
type Resolver struct {
	finder CategoryFinder
}

// NewResolver construye el resolver sobre el puerto dado.
func NewResolver(finder CategoryFinder) *Resolver {
	return &Resolver{finder: finder}
}

// Descendants resuelve la categoría por código externo y devuelve sus descendientes.
// Errores: domain.ErrInvalidInput si el código o maxDepth son inválidos (antes de tocar el
// almacén), domain.ErrNotFound si la categoría no existe.
func (r *Resolver) Descendants(ctx context.Context, code string, maxDepth int, inclusive bool) ([]*entity.Category, error) {
	if !ValidCode(code) {
		return nil, fmt.Errorf("código de categoría %q: %w", code, domain.ErrInvalidInput)
	}
	if maxDepth <= 0 {
		return nil, fmt.Errorf("max_depth debe ser mayor que 0: %w", domain.ErrInvalidInput)
	}
	root, err := r.finder.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("categoría %s: %w", code, domain.ErrNotFound)
	}
	return r.DescendantsOf(ctx, root, maxDepth, inclusive)
}

// DescendantsOf recorre en anchura los hijos de root, nivel por nivel, hasta maxDepth
// saltos. El conjunto de visitados evita ciclos y duplicados; root nunca aparece dos veces.
// Con inclusive=true el resultado empieza por root.
func (r *Resolver) DescendantsOf(ctx context.Context, root *entity.Category, maxDepth int, inclusive bool) ([]*entity.Category, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("max_depth debe ser mayor que 0: %w", domain.ErrInvalidInput)
	}
	visited := map[string]struct{}{root.ID: {}}
	var out []*entity.Category
	if inclusive {
		out = append(out, root)
	}

	frontier := []string{root.ID}
	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("descendientes de %s: %w: %w", root.Code, domain.ErrTimeout, err)
		}
		children, err := r.finder.ListByParents(ctx, frontier)
		if err != nil {
			return nil, err
		}
		sortCategoriesByName(children)

		next := make([]string, 0, len(children))
		for _, c := range children {
			if _, seen := visited[c.ID]; seen {
				continue
			}
			visited[c.ID] = struct{}{}
			out = append(out, c)
			next = append(next, c.ID)
		}
		frontier = next
	}
	return out, nil
}
