package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/biz-records/models"
)

var (
	userColumns     = []string{"id", "username", "password", "email", "first_name", "last_name", "is_active", "is_staff", "is_superuser", "date_created"}
	tokenColumns    = []string{"key", "user_id", "date_created"}
	clientColumns   = []string{"id", "name", "date_created"}
	databaseColumns = []string{"id", "name", "description", "owned_by", "created_by", "date_created"}
	projectColumns  = []string{"id", "name", "description", "database_id", "client_id", "created_by", "date_created"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) sq.InsertBuilder {
	return b.Insert(models.User{}.TableName()).
		Columns("username", "password", "email", "first_name", "last_name", "is_active", "is_staff", "is_superuser", "date_created").
		Values(u.Username, u.Password, u.Email, u.FirstName, u.LastName, u.IsActive, u.IsStaff, u.IsSuperuser, u.DateCreated).
		Suffix(returning(userColumns))
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) sq.SelectBuilder {
	return b.Select(userColumns...).From(models.User{}.TableName()).Where(where)
}

func buildListUsersQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From(models.User{}.TableName()).OrderBy("id ASC")
}

func buildUpdateUserQuery(b sq.StatementBuilderType, u models.User) sq.UpdateBuilder {
	return b.Update(models.User{}.TableName()).
		SetMap(map[string]any{
			"username":     u.Username,
			"password":     u.Password,
			"email":        u.Email,
			"first_name":   u.FirstName,
			"last_name":    u.LastName,
			"is_active":    u.IsActive,
			"is_staff":     u.IsStaff,
			"is_superuser": u.IsSuperuser,
		}).
		Where(sq.Eq{"id": u.ID}).
		Suffix(returning(userColumns))
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.FirstName, &u.LastName,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser, timeScanner{&u.DateCreated})
	return u, err
}

// ── tokens ────────────────────────────────────────────────────────────────────

func buildInsertTokenQuery(b sq.StatementBuilderType, t models.AuthToken) sq.InsertBuilder {
	return b.Insert(models.AuthToken{}.TableName()).
		Columns("key", "user_id", "date_created").
		Values(t.Key, t.UserID, t.DateCreated).
		Suffix(returning(tokenColumns))
}

func buildSelectTokenQuery(b sq.StatementBuilderType, where sq.Eq) sq.SelectBuilder {
	return b.Select(tokenColumns...).From(models.AuthToken{}.TableName()).Where(where)
}

func buildDeleteTokenQuery(b sq.StatementBuilderType, userID int64) sq.DeleteBuilder {
	return b.Delete(models.AuthToken{}.TableName()).Where(sq.Eq{"user_id": userID})
}

func scanToken(row rowScanner) (models.AuthToken, error) {
	var t models.AuthToken
	err := row.Scan(&t.Key, &t.UserID, timeScanner{&t.DateCreated})
	return t, err
}

// ── business clients ──────────────────────────────────────────────────────────

func buildInsertClientQuery(b sq.StatementBuilderType, c models.BusinessClient) sq.InsertBuilder {
	return b.Insert(models.BusinessClient{}.TableName()).
		Columns("name", "date_created").
		Values(c.Name, c.DateCreated).
		Suffix(returning(clientColumns))
}

func buildSelectClientQuery(b sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return b.Select(clientColumns...).From(models.BusinessClient{}.TableName()).Where(sq.Eq{"id": id})
}

// buildListClientsQuery lists clients newest first.
func buildListClientsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(clientColumns...).From(models.BusinessClient{}.TableName()).OrderBy("id DESC")
}

func buildUpdateClientQuery(b sq.StatementBuilderType, c models.BusinessClient) sq.UpdateBuilder {
	return b.Update(models.BusinessClient{}.TableName()).
		Set("name", c.Name).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returning(clientColumns))
}

func scanClient(row rowScanner) (models.BusinessClient, error) {
	var c models.BusinessClient
	err := row.Scan(&c.ID, &c.Name, timeScanner{&c.DateCreated})
	return c, err
}

// ── databases ─────────────────────────────────────────────────────────────────

func buildInsertDatabaseQuery(b sq.StatementBuilderType, d models.Database) sq.InsertBuilder {
	return b.Insert(models.Database{}.TableName()).
		Columns("name", "description", "owned_by", "created_by", "date_created").
		Values(d.Name, d.Description, d.OwnedBy, d.CreatedBy, d.DateCreated).
		Suffix(returning(databaseColumns))
}

func buildSelectDatabaseQuery(b sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return b.Select(databaseColumns...).From(models.Database{}.TableName()).Where(sq.Eq{"id": id})
}

func buildListDatabasesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(databaseColumns...).From(models.Database{}.TableName()).OrderBy("id ASC")
}

func buildUpdateDatabaseQuery(b sq.StatementBuilderType, d models.Database) sq.UpdateBuilder {
	return b.Update(models.Database{}.TableName()).
		SetMap(map[string]any{
			"name":        d.Name,
			"description": d.Description,
			"owned_by":    d.OwnedBy,
		}).
		Where(sq.Eq{"id": d.ID}).
		Suffix(returning(databaseColumns))
}

func scanDatabase(row rowScanner) (models.Database, error) {
	var d models.Database
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.OwnedBy, &d.CreatedBy, timeScanner{&d.DateCreated})
	return d, err
}

// ── projects ──────────────────────────────────────────────────────────────────

func buildInsertProjectQuery(b sq.StatementBuilderType, p models.Project) sq.InsertBuilder {
	return b.Insert(models.Project{}.TableName()).
		Columns("name", "description", "database_id", "client_id", "created_by", "date_created").
		Values(p.Name, p.Description, p.Database, p.Client, p.CreatedBy, p.DateCreated).
		Suffix(returning(projectColumns))
}

func buildSelectProjectQuery(b sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return b.Select(projectColumns...).From(models.Project{}.TableName()).Where(sq.Eq{"id": id})
}

func buildListProjectsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(projectColumns...).From(models.Project{}.TableName()).OrderBy("id ASC")
}

func buildUpdateProjectQuery(b sq.StatementBuilderType, p models.Project) sq.UpdateBuilder {
	return b.Update(models.Project{}.TableName()).
		SetMap(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"database_id": p.Database,
			"client_id":   p.Client,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning(projectColumns))
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Database, &p.Client, &p.CreatedBy, timeScanner{&p.DateCreated})
	return p, err
}

// ── shared ────────────────────────────────────────────────────────────────────

func buildDeleteByIDQuery(b sq.StatementBuilderType, table string, id int64) sq.DeleteBuilder {
	return b.Delete(table).Where(sq.Eq{"id": id})
}

// sqliteTimeLayouts are the layouts go-sqlite3 and CURRENT_TIMESTAMP produce
// when a column value is returned as text.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// timeScanner accepts timestamps as time.Time (pgx, typed SQLite columns)
// or as text (SQLite RETURNING clauses).
type timeScanner struct {
	t *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s timeScanner) parse(value string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			*s.t = t
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp %q", value)
}
