// seed_materials genera un script SQL para poblar el catálogo de materiales a
// partir del CSV exportado del ERP anterior (separado por ';', normalmente en
// ISO-8859-1 por venir de Excel).
//
// Columnas esperadas: sku;nombre;uom;tipo;vida_util_dias
// tipo: RAW, PACKAGING o FINISHED (se acepta MP/ME/PT como alias del ERP viejo).
//
// Uso: go run ./cmd/seed_materials [ruta/materiales.csv]
// Por defecto busca materiales.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/006_seed_materials.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type material struct {
	sku           string
	name          string
	uom           string
	typ           string
	shelfLifeDays int
}

func main() {
	csvPath := "materiales.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Excel en español exporta ISO-8859-1; si los bytes no son UTF-8 válido,
	// decodificar como latin-1 para no perder tildes y eñes.
	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decodificar ISO-8859-1: %v\n", err)
			os.Exit(1)
		}
		raw = decoded
	}

	r := csv.NewReader(strings.NewReader(string(raw)))
	r.Comma = ';'
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear CSV: %v\n", err)
		os.Exit(1)
	}

	var materials []material
	var skipped int
	for i, row := range rows {
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "sku") {
			continue // encabezado
		}
		m, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}
		materials = append(materials, m)
	}
	if len(materials) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene filas válidas")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "006_seed_materials.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de materiales migrado del ERP anterior\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + " con cmd/seed_materials\n\n")
	out.WriteString("INSERT INTO products (id, sku, name, uom, type, shelf_life_days) VALUES\n")
	for i, m := range materials {
		sep := ","
		if i == len(materials)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (gen_random_uuid()::text, '%s', '%s', '%s', '%s', %d)%s\n",
			escapeSQL(m.sku), escapeSQL(m.name), escapeSQL(m.uom), m.typ, m.shelfLifeDays, sep)
	}
	out.WriteString("ON CONFLICT (sku) DO UPDATE SET\n")
	out.WriteString("  name = EXCLUDED.name,\n")
	out.WriteString("  uom = EXCLUDED.uom,\n")
	out.WriteString("  type = EXCLUDED.type,\n")
	out.WriteString("  shelf_life_days = EXCLUDED.shelf_life_days,\n")
	out.WriteString("  updated_at = now();\n")

	fmt.Printf("Generado %s: %d materiales (%d filas descartadas)\n", outPath, len(materials), skipped)
}

// parseRow valida y normaliza una fila del CSV.
func parseRow(row []string) (material, bool) {
	if len(row) < 4 {
		return material{}, false
	}
	m := material{
		sku:  strings.TrimSpace(row[0]),
		name: strings.TrimSpace(row[1]),
		uom:  strings.TrimSpace(row[2]),
		typ:  normalizeType(row[3]),
	}
	if m.sku == "" || m.name == "" || m.uom == "" || m.typ == "" {
		return material{}, false
	}
	if len(row) > 4 {
		days, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil || days < 0 {
			return material{}, false
		}
		m.shelfLifeDays = days
	}
	return m, true
}

// normalizeType acepta los tipos propios y los alias del ERP viejo
// (MP = materia prima, ME = material de empaque, PT = producto terminado).
func normalizeType(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RAW", "MP":
		return "RAW"
	case "PACKAGING", "ME":
		return "PACKAGING"
	case "FINISHED", "PT":
		return "FINISHED"
	default:
		return ""
	}
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
