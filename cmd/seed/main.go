// seed genera un script SQL para poblar las listas de referencia (lotes,
// formas, tamaños, descripciones, calidades) a partir de un CSV exportado
// del sistema anterior (separado por ';', codificado en ISO-8859-1).
//
// Formato del CSV: lista;nombre — una fila por valor, ej:
//
//	shapes;Oval
//	grades;AAA
//
// Uso: go run ./cmd/seed [ruta/listas.csv]
// Por defecto busca listas.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_lists.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Gemas-api/internal/domain/entity"
)

func main() {
	csvPath := "listas.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export viene de una herramienta vieja en ISO-8859-1
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 2

	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Valores únicos por lista; filas con lista desconocida se descartan
	values := make(map[string]map[string]struct{})
	skipped := 0
	for _, row := range rows {
		list := strings.TrimSpace(strings.ToLower(row[0]))
		name := strings.TrimSpace(row[1])
		if name == "" || !entity.IsReferenceList(list) {
			skipped++
			continue
		}
		if values[list] == nil {
			values[list] = make(map[string]struct{})
		}
		values[list][name] = struct{}{}
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_lists.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Listas de referencia (lotes, formas, tamaños, descripciones, calidades)\n")
	out.WriteString("-- Generado desde el export del sistema anterior\n\n")

	total := 0
	for _, list := range entity.ReferenceLists {
		names := values[list]
		if len(names) == 0 {
			continue
		}
		var sorted []string
		for n := range names {
			sorted = append(sorted, n)
		}
		sort.Strings(sorted)

		fmt.Fprintf(out, "-- %s\n", list)
		fmt.Fprintf(out, "INSERT INTO %s (name) VALUES\n", list)
		for i, n := range sorted {
			sep := ","
			if i == len(sorted)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "  ('%s')%s\n", escapeSQL(n), sep)
		}
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
		total += len(sorted)
	}

	fmt.Printf("Generado %s: %d valores (%d filas descartadas)\n", outPath, total, skipped)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
