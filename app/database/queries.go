package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search    string
	Status    string
	ClassID   string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, nil
}

func CreateSession(db *sql.DB, sessionID string, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// GetActiveClassesSimple retrieves a simple list of active classes
func GetActiveClassesSimple(db *sql.DB) ([]models.Class, error) {
	query := `SELECT id, name, code, quarterly_fee FROM classes WHERE is_active = true AND deleted_at IS NULL ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.QuarterlyFee); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, nil
}

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, name, code, quarterly_fee, is_active, created_at, updated_at
			  FROM classes WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Code, &c.QuarterlyFee, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, code, quarterly_fee, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, true, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, class.Name, class.Code, class.QuarterlyFee).Scan(
		&class.ID, &class.CreatedAt, &class.UpdatedAt,
	)
}

func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes SET name = $1, code = $2, quarterly_fee = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`
	result, err := db.Exec(query, class.Name, class.Code, class.QuarterlyFee, class.IsActive, class.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanStudent(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Student, error) {
	s := &models.Student{}
	err := scanner.Scan(
		&s.ID, &s.AdmissionNumber, &s.FirstName, &s.LastName, &s.ClassID,
		&s.Section, &s.GuardianName, &s.GuardianPhone, &s.GuardianEmail,
		&s.ConcessionAmount, &s.ConcessionPercent, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

const studentColumns = `id, admission_number, first_name, last_name, class_id,
	section, guardian_name, guardian_phone, guardian_email,
	concession_amount, concession_percent, is_active, created_at, updated_at`

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1 AND deleted_at IS NULL`, studentColumns)
	return scanStudent(db.QueryRow(query, id))
}

func GetStudentByAdmissionNumber(db *sql.DB, admissionNumber string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students
			  WHERE admission_number = $1 AND is_active = true AND deleted_at IS NULL`, studentColumns)
	return scanStudent(db.QueryRow(query, admissionNumber))
}

// GetStudentsWithFilters returns students matching the filters with a
// total count for pagination.
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	conditions := []string{"deleted_at IS NULL"}
	var args []interface{}
	argIndex := 1

	switch filters.Status {
	case "inactive":
		conditions = append(conditions, "is_active = false")
	case "all":
	default:
		conditions = append(conditions, "is_active = true")
	}

	if filters.ClassID != "" {
		conditions = append(conditions, fmt.Sprintf("class_id = $%d", argIndex))
		args = append(args, filters.ClassID)
		argIndex++
	}

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(
			`(LOWER(admission_number) LIKE $%d OR LOWER(first_name) LIKE $%d OR LOWER(last_name) LIKE $%d
			  OR LOWER(first_name || ' ' || last_name) LIKE $%d)`,
			argIndex, argIndex+1, argIndex+2, argIndex+3))
		args = append(args, pattern, pattern, pattern, pattern)
		argIndex += 4
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM students WHERE %s`, where)
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "first_name"
	switch filters.SortBy {
	case "admission_number", "created_at", "last_name":
		sortBy = filters.SortBy
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM students WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		studentColumns, where, sortBy, sortOrder, argIndex, argIndex+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (admission_number, first_name, last_name, class_id, section,
			  guardian_name, guardian_phone, guardian_email, concession_amount, concession_percent,
			  is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		student.AdmissionNumber, student.FirstName, student.LastName, student.ClassID,
		student.Section, student.GuardianName, student.GuardianPhone, student.GuardianEmail,
		student.ConcessionAmount, student.ConcessionPercent,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET first_name = $1, last_name = $2, class_id = $3, section = $4,
			  guardian_name = $5, guardian_phone = $6, guardian_email = $7,
			  concession_amount = $8, concession_percent = $9, updated_at = NOW()
			  WHERE id = $10 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		student.FirstName, student.LastName, student.ClassID, student.Section,
		student.GuardianName, student.GuardianPhone, student.GuardianEmail,
		student.ConcessionAmount, student.ConcessionPercent, student.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeactivateStudent soft-deactivates a student so transaction history
// stays intact.
func DeactivateStudent(db *sql.DB, id string) error {
	query := `UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetGuardianContactsForStudents returns guardian name/email pairs for the
// given students, skipping students without an email on file.
func GetGuardianContactsForStudents(db *sql.DB, studentIDs []string) (map[string]string, error) {
	contacts := make(map[string]string)
	if len(studentIDs) == 0 {
		return contacts, nil
	}

	placeholders := make([]string, len(studentIDs))
	args := make([]interface{}, len(studentIDs))
	for i, id := range studentIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT id, guardian_email FROM students
			WHERE id IN (%s) AND guardian_email IS NOT NULL AND is_active = true`,
		strings.Join(placeholders, ","))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, email string
		if err := rows.Scan(&id, &email); err != nil {
			return nil, err
		}
		contacts[id] = email
	}
	return contacts, rows.Err()
}
