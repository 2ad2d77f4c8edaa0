package db

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/eczema-tracker/migrations"
	"gorm.io/gorm"
)

// schemaMigration is one NNN_name.sql file, already split into statements.
type schemaMigration struct {
	Version    int
	Name       string
	Statements []string
}

// schemaMigrationRecord is a row of schema_migrations.
type schemaMigrationRecord struct {
	Version int    `gorm:"column:version;primaryKey"`
	Name    string `gorm:"column:name"`
}

func (schemaMigrationRecord) TableName() string {
	return "schema_migrations"
}

var errEmptyMigration = errors.New("migration has no SQL statements")

// migrateJournalSchema brings the journal tables up to the newest embedded
// version. Journal databases created before schema_migrations existed are
// upgraded in place: tables are created with IF NOT EXISTS and columns that
// are already present are not added twice.
func migrateJournalSchema(database *gorm.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := loadSchemaMigrations(embeddedmigrations.Files)
	if err != nil {
		return err
	}
	applied, err := appliedSchemaVersions(database)
	if err != nil {
		return err
	}

	for _, migration := range pending {
		if _, done := applied[migration.Version]; done {
			continue
		}
		if err := database.Transaction(func(tx *gorm.DB) error {
			return runSchemaMigration(tx, migration)
		}); err != nil {
			return err
		}
	}
	return nil
}

func loadSchemaMigrations(files fs.FS) ([]schemaMigration, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]schemaMigration, 0, len(names))
	byVersion := make(map[int]string, len(names))
	for _, name := range names {
		prefix, _, found := strings.Cut(path.Base(name), "_")
		if !found {
			continue
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if previous, exists := byVersion[version]; exists {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", prefix, previous, name)
		}
		byVersion[version] = name

		raw, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		statements := splitSQLStatements(string(raw))
		if len(statements) == 0 {
			return nil, fmt.Errorf("%s: %w", name, errEmptyMigration)
		}
		migrations = append(migrations, schemaMigration{Version: version, Name: name, Statements: statements})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func appliedSchemaVersions(database *gorm.DB) (map[int]struct{}, error) {
	var versions []int
	if err := database.Model(&schemaMigrationRecord{}).Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := make(map[int]struct{}, len(versions))
	for _, version := range versions {
		applied[version] = struct{}{}
	}
	return applied, nil
}

func runSchemaMigration(tx *gorm.DB, migration schemaMigration) error {
	for _, statement := range migration.Statements {
		if table, column, ok := addedColumn(statement); ok {
			exists, err := tableColumnExists(tx, table, column)
			if err != nil {
				return fmt.Errorf("inspect migration %s: %w", migration.Name, err)
			}
			if exists {
				continue
			}
		}
		if err := tx.Exec(statement).Error; err != nil {
			return fmt.Errorf("execute migration %s statement %q: %w", migration.Name, statement, err)
		}
	}

	record := schemaMigrationRecord{Version: migration.Version, Name: migration.Name}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("record migration %s: %w", migration.Name, err)
	}
	return nil
}

func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0, 4)
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// addedColumn recognizes "ALTER TABLE t ADD COLUMN c ...". sqlite has no
// ADD COLUMN IF NOT EXISTS.
func addedColumn(statement string) (table string, column string, ok bool) {
	fields := strings.Fields(statement)
	if len(fields) < 6 {
		return "", "", false
	}
	if !strings.EqualFold(fields[0], "ALTER") || !strings.EqualFold(fields[1], "TABLE") ||
		!strings.EqualFold(fields[3], "ADD") || !strings.EqualFold(fields[4], "COLUMN") {
		return "", "", false
	}
	return unquoteIdentifier(fields[2]), unquoteIdentifier(fields[5]), true
}

type pragmaTableColumn struct {
	Name string `gorm:"column:name"`
}

func tableColumnExists(database *gorm.DB, table string, column string) (bool, error) {
	var columns []pragmaTableColumn
	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(table, `"`, `""`))
	if err := database.Raw(query).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, existing := range columns {
		if strings.EqualFold(existing.Name, column) {
			return true, nil
		}
	}
	return false, nil
}

func unquoteIdentifier(identifier string) string {
	return strings.Trim(identifier, "\"`[]")
}
