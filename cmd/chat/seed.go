package main

import (
	"database/sql"
	"fmt"
)

// Demo schema and sample rows for the sqlite engine. Tables are created if
// missing; rows are inserted only into empty tables so a reused database
// file keeps whatever the user has loaded into it.

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS subscribers (
		user_id TEXT PRIMARY KEY,
		region TEXT NOT NULL,
		plan_type TEXT NOT NULL,
		join_date TEXT NOT NULL,
		status TEXT NOT NULL,
		monthly_spend REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		payment_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount REAL NOT NULL,
		currency TEXT NOT NULL,
		payment_date TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS logins (
		login_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		login_date TEXT NOT NULL,
		login_count INTEGER NOT NULL,
		device_type TEXT NOT NULL,
		region TEXT NOT NULL,
		plan_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		ticket_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		opened_at TEXT NOT NULL,
		resolved_at TEXT,
		category TEXT NOT NULL,
		severity TEXT NOT NULL,
		status TEXT NOT NULL,
		response_time_hours REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS business_units (
		unit_id TEXT PRIMARY KEY,
		unit_name TEXT NOT NULL,
		region TEXT NOT NULL,
		revenue REAL NOT NULL,
		headcount INTEGER NOT NULL
	)`,
}

type seedTable struct {
	name   string
	insert string
	rows   [][]any
}

var seedTables = []seedTable{
	{
		name:   "subscribers",
		insert: "INSERT INTO subscribers (user_id, region, plan_type, join_date, status, monthly_spend) VALUES (?, ?, ?, ?, ?, ?)",
		rows: [][]any{
			{"user-001", "North America", "Premium", "2025-08-15", "active", 129.0},
			{"user-002", "Europe", "Standard", "2025-07-02", "active", 79.0},
			{"user-003", "India", "Premium", "2025-09-20", "paused", 119.0},
			{"user-004", "Latin America", "Basic", "2025-01-12", "churned", 39.0},
			{"user-005", "North America", "Premium", "2025-03-05", "active", 149.0},
		},
	},
	{
		name:   "payments",
		insert: "INSERT INTO payments (payment_id, user_id, amount, currency, payment_date, status) VALUES (?, ?, ?, ?, ?, ?)",
		rows: [][]any{
			{"pay-1001", "user-001", 129.0, "USD", "2025-10-01", "settled"},
			{"pay-1002", "user-002", 79.0, "EUR", "2025-10-03", "settled"},
			{"pay-1003", "user-003", 119.0, "INR", "2025-09-28", "pending"},
			{"pay-1004", "user-004", 39.0, "MXN", "2025-08-17", "refunded"},
			{"pay-1005", "user-005", 298.0, "USD", "2025-10-05", "settled"},
		},
	},
	{
		name:   "logins",
		insert: "INSERT INTO logins (login_id, user_id, login_date, login_count, device_type, region, plan_type) VALUES (?, ?, ?, ?, ?, ?, ?)",
		rows: [][]any{
			{"login-2001", "user-001", "2025-10-01", 12, "web", "North America", "Premium"},
			{"login-2002", "user-001", "2025-10-02", 7, "mobile", "North America", "Premium"},
			{"login-2003", "user-002", "2025-10-03", 5, "web", "Europe", "Standard"},
			{"login-2004", "user-003", "2025-10-01", 9, "mobile", "India", "Premium"},
			{"login-2005", "user-004", "2025-09-15", 1, "web", "Latin America", "Basic"},
			{"login-2006", "user-005", "2025-10-04", 15, "mobile", "North America", "Premium"},
		},
	},
	{
		name:   "tickets",
		insert: "INSERT INTO tickets (ticket_id, user_id, opened_at, resolved_at, category, severity, status, response_time_hours) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		rows: [][]any{
			{"ticket-3001", "user-002", "2025-10-01T08:15:00", "2025-10-01T12:45:00", "Billing", "High", "resolved", 4.5},
			{"ticket-3002", "user-003", "2025-09-28T10:05:00", nil, "Technical", "Critical", "open", 12.0},
			{"ticket-3003", "user-001", "2025-10-02T14:30:00", "2025-10-02T18:55:00", "Onboarding", "Medium", "resolved", 4.4},
			{"ticket-3004", "user-005", "2025-09-10T09:00:00", "2025-09-10T11:30:00", "Billing", "Low", "resolved", 2.5},
		},
	},
	{
		name:   "business_units",
		insert: "INSERT INTO business_units (unit_id, unit_name, region, revenue, headcount) VALUES (?, ?, ?, ?, ?)",
		rows: [][]any{
			{"unit-4001", "Consumer", "North America", 2500000.0, 120},
			{"unit-4002", "Enterprise", "Europe", 4200000.0, 80},
			{"unit-4003", "SMB", "India", 1750000.0, 65},
			{"unit-4004", "Partnerships", "Latin America", 950000.0, 40},
		},
	},
}

// seedDemoData bootstraps the demo schema and fills empty tables with
// sample rows.
func seedDemoData(db *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create: %w", err)
		}
	}
	for _, table := range seedTables {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table.name).Scan(&count); err != nil {
			return fmt.Errorf("count %s: %w", table.name, err)
		}
		if count > 0 {
			continue
		}
		for _, row := range table.rows {
			if _, err := db.Exec(table.insert, row...); err != nil {
				return fmt.Errorf("seed %s: %w", table.name, err)
			}
		}
	}
	return nil
}
