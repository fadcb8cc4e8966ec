package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/models"
)

var (
	usersTable    = models.User{}.TableName()
	contactsTable = models.Contact{}.TableName()

	userColumns    = []string{"id", "username", "password", "name", "token"}
	contactColumns = []string{"id", "user_id", "first_name", "last_name", "email", "phone"}

	returningUser    = "RETURNING " + strings.Join(userColumns, ", ")
	returningContact = "RETURNING " + strings.Join(contactColumns, ", ")

	now = sq.Expr("CURRENT_TIMESTAMP")
)

func createUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password", "name").
		Values(user.Username, user.Password, user.Name).
		Suffix(returningUser).
		ToSql()
}

func findUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func updateTokenQuery(b sq.StatementBuilderType, userID int64, token *string) (string, []any, error) {
	return b.Update(usersTable).
		Set("token", token).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func updateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	query := b.Update(usersTable)
	if update.Password != nil {
		query = query.Set("password", *update.Password)
	}
	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}

	return query.
		Set("updated_at", now).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returningUser).
		ToSql()
}

func createContactQuery(b sq.StatementBuilderType, contact models.Contact) (string, []any, error) {
	return b.Insert(contactsTable).
		Columns("user_id", "first_name", "last_name", "email", "phone").
		Values(contact.UserID, contact.FirstName, contact.LastName, contact.Email, contact.Phone).
		Suffix(returningContact).
		ToSql()
}

func findContactQuery(b sq.StatementBuilderType, userID, contactID int64) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		ToSql()
}

func updateContactQuery(b sq.StatementBuilderType, contact models.Contact) (string, []any, error) {
	return b.Update(contactsTable).
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("email", contact.Email).
		Set("phone", contact.Phone).
		Set("updated_at", now).
		Where(sq.Eq{"id": contact.ID, "user_id": contact.UserID}).
		Suffix(returningContact).
		ToSql()
}

func deleteContactQuery(b sq.StatementBuilderType, userID, contactID int64) (string, []any, error) {
	return b.Delete(contactsTable).
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		ToSql()
}

// contactSearchFilter matches the owner and every non-empty filter as a
// case-insensitive substring. Name matches either first or last name.
func contactSearchFilter(search models.ContactSearch) sq.And {
	filter := sq.And{sq.Eq{"user_id": search.UserID}}

	if search.Name != "" {
		pattern := likePattern(search.Name)
		filter = append(filter, sq.Or{
			containsExpr("first_name", pattern),
			containsExpr("last_name", pattern),
		})
	}
	if search.Email != "" {
		filter = append(filter, containsExpr("email", likePattern(search.Email)))
	}
	if search.Phone != "" {
		filter = append(filter, containsExpr("phone", likePattern(search.Phone)))
	}

	return filter
}

func countContactsQuery(b sq.StatementBuilderType, search models.ContactSearch) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(contactsTable).
		Where(contactSearchFilter(search)).
		ToSql()
}

func searchContactsQuery(b sq.StatementBuilderType, search models.ContactSearch) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(contactSearchFilter(search)).
		OrderBy("id").
		Limit(uint64(search.Size)).
		Offset(uint64(search.Offset())).
		ToSql()
}

// likeEscaper makes % and _ in search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// containsExpr is a case-insensitive LIKE on column with backslash as the
// escape character, which postgres and sqlite both accept.
func containsExpr(column, pattern string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
}
