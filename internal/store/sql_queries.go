package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/sheetcharts/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, role, google_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at;`

	selectUser = `SELECT id, name, email, password_hash, role, COALESCE(google_id, ''), created_at
    FROM users `

	findUserByEmail    = selectUser + `WHERE email = $1;`
	findUserByID       = selectUser + `WHERE id = $1;`
	findUserByGoogleID = selectUser + `WHERE google_id = $1;`

	linkGoogleID = `UPDATE users SET google_id = $1 WHERE id = $2;`

	usersEmailConstraint = "users_email_key"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var historyColumns = []string{
	"id", "user_id", "file_name", "stored_name", "upload_date",
	"row_count", "file_size", "x_axis", "y_axis", "chart_type",
}

var analysisColumns = []string{
	"a.id", "a.user_id", "a.history_id", "a.name", "a.x_axis", "a.y_axis",
	"a.chart_type", "a.created_at", "h.file_name", "h.upload_date",
}

func buildInsertHistoryQuery(h models.History) (string, []any, error) {
	query, args, err := psql.Insert(h.TableName()).
		Columns("user_id", "file_name", "stored_name", "row_count", "file_size", "x_axis", "y_axis", "chart_type").
		Values(h.UserID, h.FileName, h.StoredName, h.Rows, h.FileSize, h.XAxis, h.YAxis, string(h.ChartType)).
		Suffix("RETURNING id, upload_date").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectHistoryQuery(historyID, userID int64) (string, []any, error) {
	query, args, err := psql.Select(historyColumns...).
		From(models.History{}.TableName()).
		Where(sq.Eq{"id": historyID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListHistoriesQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Select(historyColumns...).
		From(models.History{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("upload_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteHistoryQuery(historyID, userID int64) (string, []any, error) {
	query, args, err := psql.Delete(models.History{}.TableName()).
		Where(sq.Eq{"id": historyID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(historyColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildReferencedStoredNamesQuery(names []string) (string, []any, error) {
	query, args, err := psql.Select("DISTINCT stored_name").
		From(models.History{}.TableName()).
		Where(sq.Eq{"stored_name": names}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertAnalysisQuery(a models.Analysis) (string, []any, error) {
	query, args, err := psql.Insert(a.TableName()).
		Columns("user_id", "history_id", "name", "x_axis", "y_axis", "chart_type").
		Values(a.UserID, a.HistoryID.ID, a.Name, a.XAxis, a.YAxis, string(a.ChartType)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// selectAnalyses joins the owning user's histories so that list responses
// can expose the file name and upload date of the referenced upload.
func selectAnalyses() sq.SelectBuilder {
	return psql.Select(analysisColumns...).
		From("analyses a").
		LeftJoin("histories h ON h.id = a.history_id AND h.user_id = a.user_id")
}

func buildSelectAnalysisQuery(analysisID, userID int64) (string, []any, error) {
	query, args, err := selectAnalyses().
		Where(sq.Eq{"a.id": analysisID, "a.user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListAnalysesQuery(userID int64) (string, []any, error) {
	query, args, err := selectAnalyses().
		Where(sq.Eq{"a.user_id": userID}).
		OrderBy("a.created_at DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRenameAnalysisQuery(analysisID, userID int64, name string) (string, []any, error) {
	query, args, err := psql.Update(models.Analysis{}.TableName()).
		Set("name", name).
		Where(sq.Eq{"id": analysisID, "user_id": userID}).
		Suffix("RETURNING id, user_id, history_id, name, x_axis, y_axis, chart_type, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAnalysisQuery(analysisID, userID int64) (string, []any, error) {
	query, args, err := psql.Delete(models.Analysis{}.TableName()).
		Where(sq.Eq{"id": analysisID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
