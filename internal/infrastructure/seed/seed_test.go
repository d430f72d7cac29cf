package seed_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/seed"
)

func TestSample_NivelesDerivados(t *testing.T) {
	levels, err := seed.Sample().Levels()
	require.NoError(t, err)

	assert.Len(t, levels, 12)
	assert.Equal(t, 0, levels["CAT001"])
	assert.Equal(t, 1, levels["CAT101"])
	assert.Equal(t, 2, levels["CAT1022"])
}

func TestLevels_PadreInexistente(t *testing.T) {
	c := seed.Catalog{Categories: []seed.Category{{Code: "A", Name: "A", ParentCode: "NOPE"}}}
	_, err := c.Levels()
	assert.Error(t, err)
}

func TestLevels_Ciclo(t *testing.T) {
	c := seed.Catalog{Categories: []seed.Category{
		{Code: "A", Name: "A", ParentCode: "B"},
		{Code: "B", Name: "B", ParentCode: "A"},
	}}
	_, err := c.Levels()
	assert.Error(t, err)
}

func TestLoad_EnMemoria(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, seed.Load(ctx, store.Categories(), store.Products(), seed.Sample()))

	cats, prods, err := store.Catalog().ReadCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 12)
	assert.Len(t, prods, 26)

	laptops, err := store.Categories().GetByCode(ctx, "CAT1011")
	require.NoError(t, err)
	require.NotNil(t, laptops)
	computers, err := store.Categories().GetByID(ctx, laptops.ParentID)
	require.NoError(t, err)
	assert.Equal(t, "CAT101", computers.Code)
	assert.Equal(t, computers.Level+1, laptops.Level)
}

func TestReadCSV_Latin1(t *testing.T) {
	src := "# tipo,código,...\n" +
		"category,CAT9,Jardinería,Plantas,\n" +
		"product,P9,Maceta cerámica,Barro,CAT9,12.50,7\n"
	enc, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	c, err := seed.ReadCSV(strings.NewReader(enc), true)
	require.NoError(t, err)
	require.Len(t, c.Categories, 1)
	require.Len(t, c.Products, 1)
	assert.Equal(t, "Jardinería", c.Categories[0].Name)
	assert.Equal(t, "Maceta cerámica", c.Products[0].Name)
	assert.Equal(t, "12.5", c.Products[0].Price.String())
	assert.Equal(t, 7, c.Products[0].Quantity)
}

func TestReadCSV_PrecioNegativo(t *testing.T) {
	_, err := seed.ReadCSV(strings.NewReader("product,P1,X,,CAT1,-3,1\n"), false)
	assert.Error(t, err)
}

func TestWriteSQL_EscapaComillas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, seed.WriteSQL(&buf, seed.Sample()))

	out := buf.String()
	assert.Contains(t, out, "INSERT INTO categories")
	assert.Contains(t, out, "'MacBook Pro 16\"'")
	assert.Contains(t, out, "(SELECT id FROM categories WHERE code = 'CAT101')")

	var c seed.Catalog
	c.Categories = []seed.Category{{Code: "C1", Name: "O'Brien"}}
	buf.Reset()
	require.NoError(t, seed.WriteSQL(&buf, c))
	assert.Contains(t, buf.String(), "'O''Brien'")
}

func TestWriteAdminSQL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, seed.WriteAdminSQL(&buf, " Admin@Catalogo.Local ", "$2a$10$hash"))

	out := buf.String()
	assert.Contains(t, out, "'admin@catalogo.local'")
	assert.Contains(t, out, "'$2a$10$hash'")
	assert.Contains(t, out, "TRUE")
	assert.Contains(t, out, "ON CONFLICT DO NOTHING")
}
