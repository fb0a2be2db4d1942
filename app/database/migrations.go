package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			code TEXT UNIQUE NOT NULL,
			quarterly_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			admission_number TEXT UNIQUE NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			section VARCHAR(10),
			guardian_name TEXT,
			guardian_phone VARCHAR(20),
			guardian_email TEXT,
			concession_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			concession_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS quarters (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			academic_year TEXT NOT NULL,
			name TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			due_date DATE NOT NULL,
			late_fee_type VARCHAR(20),
			late_fee_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			late_fee_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
			late_fee_grace_days INTEGER NOT NULL DEFAULT 0,
			late_fee_apply_daily BOOLEAN NOT NULL DEFAULT false,
			late_fee_max NUMERIC(12,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (academic_year, name)
		)`,

		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_id UUID NOT NULL REFERENCES classes(id),
			quarter_id UUID NOT NULL REFERENCES quarters(id),
			tuition_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			transport_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			activity_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			examination_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			other_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_fee NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS extra_charges (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			quarter_id UUID NOT NULL REFERENCES quarters(id),
			student_id UUID REFERENCES students(id),
			class_id UUID REFERENCES classes(id),
			title TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			mandatory BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			CHECK (student_id IS NULL OR class_id IS NULL)
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			quarter_id UUID NOT NULL REFERENCES quarters(id),
			amount_paid NUMERIC(12,2) NOT NULL,
			mode VARCHAR(20) NOT NULL,
			receipt_number TEXT UNIQUE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'completed',
			payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			cheque_number VARCHAR(50),
			cheque_date DATE,
			cheque_bank TEXT,
			gateway_reference TEXT,
			refund_of UUID REFERENCES transactions(id),
			notes TEXT,
			collected_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_students_class ON students(class_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_structures_pair ON fee_structures(class_id, quarter_id)`,
		`CREATE INDEX IF NOT EXISTS idx_extra_charges_quarter ON extra_charges(quarter_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_student_quarter ON transactions(student_id, quarter_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	if err := seedRoles(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func seedRoles(db *sql.DB) error {
	for _, name := range []string{"admin", "cashier", "parent"} {
		_, err := db.Exec(`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			log.Printf("Failed to seed role %s: %v", name, err)
			return err
		}
	}
	return nil
}
