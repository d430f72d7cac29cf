package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func codes(list []*entity.Category) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Code)
	}
	return out
}

func TestDescendants_InclusiveYExclusivo(t *testing.T) {
	cats, prods := scenarioABC()
	snap := catalog.NewSnapshot(cats, prods, testNow)
	r := catalog.NewResolver(snap)

	incl, err := r.Descendants(context.Background(), "CAT001", catalog.DefaultMaxDepth, true)
	require.NoError(t, err)
	excl, err := r.Descendants(context.Background(), "CAT001", catalog.DefaultMaxDepth, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"CAT001", "CAT101", "CAT1011"}, codes(incl))
	assert.Equal(t, []string{"CAT101", "CAT1011"}, codes(excl))
	// inclusive == exclusivo ∪ {raíz}
	assert.Equal(t, append([]string{"CAT001"}, codes(excl)...), codes(incl))
}

func TestDescendants_CategoriaInexistente_NotFound(t *testing.T) {
	cats, prods := scenarioABC()
	r := catalog.NewResolver(catalog.NewSnapshot(cats, prods, testNow))

	_, err := r.Descendants(context.Background(), "CAT099", catalog.DefaultMaxDepth, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDescendants_ArgumentosInvalidos(t *testing.T) {
	cats, prods := scenarioABC()
	r := catalog.NewResolver(catalog.NewSnapshot(cats, prods, testNow))

	_, err := r.Descendants(context.Background(), "CAT001", 0, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "max_depth 0 debe rechazarse")

	_, err = r.Descendants(context.Background(), "CAT 001; drop", 10, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "código malformado debe rechazarse")
}

func TestDescendants_RespetaMaxDepth(t *testing.T) {
	cats, prods := scenarioABC()
	r := catalog.NewResolver(catalog.NewSnapshot(cats, prods, testNow))

	out, err := r.Descendants(context.Background(), "CAT001", 1, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT101"}, codes(out), "con max_depth 1 solo se incluyen hijos directos")
}

func TestDescendants_CicloTermina(t *testing.T) {
	// X → Y → Z → X: ninguno es raíz, el recorrido debe terminar sin duplicados.
	cats := []*entity.Category{
		cat("x", "X", "X", "z", 1),
		cat("y", "Y", "Y", "x", 2),
		cat("z", "Z", "Z", "y", 3),
	}
	r := catalog.NewResolver(catalog.NewSnapshot(cats, nil, testNow))

	out, err := r.Descendants(context.Background(), "X", catalog.DefaultMaxDepth, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, codes(out))
}

func TestDescendants_CadenaMasProfundaQueElLimite(t *testing.T) {
	var cats []*entity.Category
	parent := ""
	for i := 0; i < 15; i++ {
		id := string(rune('a' + i))
		cats = append(cats, cat(id, "L"+id, "L"+id, parent, i))
		parent = id
	}
	r := catalog.NewResolver(catalog.NewSnapshot(cats, nil, testNow))

	out, err := r.Descendants(context.Background(), "La", catalog.DefaultMaxDepth, false)
	require.NoError(t, err)
	assert.Len(t, out, catalog.DefaultMaxDepth)
}

func TestDescendants_IgnoraInactivas(t *testing.T) {
	cats, prods := scenarioABC()
	cats[1].IsActive = false // B inactiva: C queda inalcanzable
	r := catalog.NewResolver(catalog.NewSnapshot(cats, prods, testNow))

	out, err := r.Descendants(context.Background(), "CAT001", catalog.DefaultMaxDepth, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT001"}, codes(out))
}

func TestDescendants_ContextoCancelado(t *testing.T) {
	cats, prods := scenarioABC()
	r := catalog.NewResolver(catalog.NewSnapshot(cats, prods, testNow))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Descendants(ctx, "CAT001", catalog.DefaultMaxDepth, true)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}
