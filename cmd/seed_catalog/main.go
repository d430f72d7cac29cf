// seed_catalog genera un script SQL idempotente para poblar categorías y productos.
//
// Uso: go run ./cmd/seed_catalog [-csv catalogo.csv] [-latin1] [-out seed_catalog.sql]
//
//	[-admin-email admin@ejemplo.com -admin-password secreto]
//
// Sin -csv usa el catálogo de ejemplo incluido. Con -out - escribe en stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-api/internal/infrastructure/seed"
)

func main() {
	csvPath := flag.String("csv", "", "CSV con filas category/product (vacío: catálogo de ejemplo)")
	latin1 := flag.Bool("latin1", false, "el CSV está codificado en ISO-8859-1")
	outPath := flag.String("out", "seed_catalog.sql", "archivo de salida (- para stdout)")
	adminEmail := flag.String("admin-email", "", "email del administrador inicial (opcional)")
	adminPassword := flag.String("admin-password", "", "password del administrador inicial")
	flag.Parse()

	catalog, err := loadCatalog(*csvPath, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := seed.WriteSQL(w, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	if *adminEmail != "" {
		if len(*adminPassword) < 8 {
			fmt.Fprintln(os.Stderr, "-admin-password debe tener al menos 8 caracteres")
			os.Exit(1)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hash de password: %v\n", err)
			os.Exit(1)
		}
		if err := seed.WriteAdminSQL(w, *adminEmail, string(hash)); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
			os.Exit(1)
		}
	}

	if *outPath != "-" {
		fmt.Printf("Generado %s: %d categorías, %d productos\n", *outPath, len(catalog.Categories), len(catalog.Products))
	}
}

func loadCatalog(path string, latin1 bool) (seed.Catalog, error) {
	if path == "" {
		return seed.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return seed.Catalog{}, err
	}
	defer f.Close()
	return seed.ReadCSV(f, latin1)
}
