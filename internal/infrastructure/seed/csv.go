package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadCSV lee un catálogo con filas de dos tipos:
//
//	category,<código>,<nombre>,<descripción>,<código padre>
//	product,<código>,<nombre>,<descripción>,<código categoría>,<precio>,<cantidad>
//
// Las líneas vacías y las que empiezan por # se ignoran. Con latin1=true la entrada se
// decodifica desde ISO-8859-1 (exportaciones de hojas de cálculo antiguas).
func ReadCSV(r io.Reader, latin1 bool) (Catalog, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var c Catalog
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Catalog{}, fmt.Errorf("seed.ReadCSV: %w", err)
		}
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		line, _ := cr.FieldPos(0)
		switch strings.ToLower(strings.TrimSpace(rec[0])) {
		case "category":
			if len(rec) < 4 {
				return Catalog{}, fmt.Errorf("seed.ReadCSV línea %d: categoría incompleta", line)
			}
			cat := Category{Code: trim(rec, 1), Name: trim(rec, 2), Description: trim(rec, 3), ParentCode: trim(rec, 4)}
			c.Categories = append(c.Categories, cat)
		case "product":
			if len(rec) < 7 {
				return Catalog{}, fmt.Errorf("seed.ReadCSV línea %d: producto incompleto", line)
			}
			price, err := decimal.NewFromString(trim(rec, 5))
			if err != nil || price.IsNegative() {
				return Catalog{}, fmt.Errorf("seed.ReadCSV línea %d: precio inválido %q", line, trim(rec, 5))
			}
			qty, err := strconv.Atoi(trim(rec, 6))
			if err != nil || qty < 0 {
				return Catalog{}, fmt.Errorf("seed.ReadCSV línea %d: cantidad inválida %q", line, trim(rec, 6))
			}
			c.Products = append(c.Products, Product{
				Code:         trim(rec, 1),
				Name:         trim(rec, 2),
				Description:  trim(rec, 3),
				CategoryCode: trim(rec, 4),
				Price:        price,
				Quantity:     qty,
			})
		default:
			return Catalog{}, fmt.Errorf("seed.ReadCSV línea %d: tipo de fila desconocido %q", line, rec[0])
		}
	}
	return c, nil
}

func trim(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
