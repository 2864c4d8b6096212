package migration

import "folios/internal/infrastructure/database"

// tableSpec describes one required table: its per-dialect DDL plus the
// indexes that must exist alongside it. Tables are created in dependency
// order so foreign keys always resolve.
type tableSpec struct {
	name    string
	ddl     map[string]string
	indexes []indexSpec
}

type indexSpec struct {
	name string
	ddl  string
}

var requiredTables = []tableSpec{
	{
		name: "roles",
		ddl: map[string]string{
			database.DialectSQLite: `
				CREATE TABLE roles (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL UNIQUE
				)`,
			database.DialectPostgres: `
				CREATE TABLE roles (
					id SERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL UNIQUE
				)`,
		},
	},
	{
		name: "users",
		ddl: map[string]string{
			database.DialectSQLite: `
				CREATE TABLE users (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					full_name TEXT NOT NULL,
					login_name TEXT NOT NULL UNIQUE,
					email TEXT NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					role_id INTEGER REFERENCES roles(id),
					plant_id INTEGER,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
			database.DialectPostgres: `
				CREATE TABLE users (
					id SERIAL PRIMARY KEY,
					full_name VARCHAR(255) NOT NULL,
					login_name VARCHAR(100) NOT NULL UNIQUE,
					email VARCHAR(255) NOT NULL UNIQUE,
					password_hash VARCHAR(255) NOT NULL,
					role_id INTEGER REFERENCES roles(id),
					plant_id INTEGER,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
		},
	},
	{
		name: "folios",
		ddl: map[string]string{
			database.DialectSQLite: `
				CREATE TABLE folios (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					created_at TIMESTAMP NOT NULL,
					requester_name TEXT NOT NULL,
					employee_code INTEGER NOT NULL,
					plant TEXT NOT NULL,
					pay_scheme TEXT NOT NULL,
					request_type TEXT NOT NULL,
					description TEXT NOT NULL,
					priority TEXT NOT NULL,
					record_created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
			database.DialectPostgres: `
				CREATE TABLE folios (
					id SERIAL PRIMARY KEY,
					created_at TIMESTAMP NOT NULL,
					requester_name VARCHAR(255) NOT NULL,
					employee_code INTEGER NOT NULL,
					plant VARCHAR(255) NOT NULL,
					pay_scheme VARCHAR(255) NOT NULL,
					request_type VARCHAR(255) NOT NULL,
					description TEXT NOT NULL,
					priority VARCHAR(50) NOT NULL,
					record_created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
		},
		indexes: []indexSpec{
			{name: "idx_folios_created_at", ddl: `CREATE INDEX IF NOT EXISTS idx_folios_created_at ON folios (created_at)`},
			{name: "idx_folios_employee_code", ddl: `CREATE INDEX IF NOT EXISTS idx_folios_employee_code ON folios (employee_code)`},
		},
	},
	{
		name: "folio_assignments",
		ddl: map[string]string{
			database.DialectSQLite: `
				CREATE TABLE folio_assignments (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					folio_id INTEGER NOT NULL REFERENCES folios(id) ON DELETE CASCADE,
					user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					assigned_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					UNIQUE (folio_id, user_id)
				)`,
			database.DialectPostgres: `
				CREATE TABLE folio_assignments (
					id SERIAL PRIMARY KEY,
					folio_id INTEGER NOT NULL REFERENCES folios(id) ON DELETE CASCADE,
					user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					assigned_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					UNIQUE (folio_id, user_id)
				)`,
		},
		indexes: []indexSpec{
			{name: "idx_folio_assignments_folio_id", ddl: `CREATE INDEX IF NOT EXISTS idx_folio_assignments_folio_id ON folio_assignments (folio_id)`},
		},
	},
	{
		name: "folio_responses",
		ddl: map[string]string{
			database.DialectSQLite: `
				CREATE TABLE folio_responses (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					folio_id INTEGER NOT NULL REFERENCES folios(id) ON DELETE CASCADE,
					body TEXT NOT NULL,
					responded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					author_user_id INTEGER REFERENCES users(id) ON DELETE SET NULL
				)`,
			database.DialectPostgres: `
				CREATE TABLE folio_responses (
					id SERIAL PRIMARY KEY,
					folio_id INTEGER NOT NULL REFERENCES folios(id) ON DELETE CASCADE,
					body TEXT NOT NULL,
					responded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					author_user_id INTEGER REFERENCES users(id) ON DELETE SET NULL
				)`,
		},
		indexes: []indexSpec{
			{name: "idx_folio_responses_folio_id", ddl: `CREATE INDEX IF NOT EXISTS idx_folio_responses_folio_id ON folio_responses (folio_id)`},
		},
	},
}
