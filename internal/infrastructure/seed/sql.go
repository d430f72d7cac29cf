package seed

import (
	"fmt"
	"io"
	"strings"
)

// WriteSQL escribe el catálogo como INSERT idempotentes. Los padres y categorías se
// resuelven por código con subconsultas, así que el script no depende de los UUID.
func WriteSQL(w io.Writer, c Catalog) error {
	ordered, levels, err := c.Ordered()
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("-- Catálogo de ejemplo (generado por seed_catalog)\n\n")
	b.WriteString("-- 1. Categorías (padres primero)\n")
	for _, cat := range ordered {
		parent := "NULL"
		if cat.ParentCode != "" {
			parent = fmt.Sprintf("(SELECT id FROM categories WHERE code = '%s')", escapeSQL(cat.ParentCode))
		}
		fmt.Fprintf(&b, "INSERT INTO categories (code, name, description, parent_id, level)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', %s, %d)\n",
			escapeSQL(cat.Code), escapeSQL(cat.Name), escapeSQL(cat.Description), parent, levels[cat.Code])
		b.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description;\n")
	}
	b.WriteString("\n-- 2. Productos\n")
	for _, p := range c.Products {
		if _, ok := levels[p.CategoryCode]; !ok {
			return fmt.Errorf("seed: categoría %s del producto %s no existe", p.CategoryCode, p.Code)
		}
		fmt.Fprintf(&b, "INSERT INTO products (code, name, description, price, quantity, category_id)\n")
		fmt.Fprintf(&b, "SELECT '%s', '%s', '%s', %s, %d, id FROM categories WHERE code = '%s'\n",
			escapeSQL(p.Code), escapeSQL(p.Name), escapeSQL(p.Description), p.Price.String(), p.Quantity, escapeSQL(p.CategoryCode))
		b.WriteString("ON CONFLICT (code) DO UPDATE SET price = EXCLUDED.price, quantity = EXCLUDED.quantity;\n")
	}
	_, err = io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// WriteAdminSQL escribe el INSERT idempotente del administrador inicial. passwordHash
// debe ser un hash bcrypt ya calculado.
func WriteAdminSQL(w io.Writer, email, passwordHash string) error {
	_, err := fmt.Fprintf(w, "\n-- 3. Administrador inicial\n"+
		"INSERT INTO users (email, password_hash, name, age, is_admin)\n"+
		"VALUES ('%s', '%s', 'Administrador', 18, TRUE)\n"+
		"ON CONFLICT DO NOTHING;\n",
		escapeSQL(strings.ToLower(strings.TrimSpace(email))), escapeSQL(passwordHash))
	return err
}
