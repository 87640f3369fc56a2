package store

import (
	"github.com/MKhiriev/parts-registry/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	entryColumns = `id, record_id, record_type, name, part_number, owner_email, creator_email,
		status, visibility, bio_safety_level, short_description, creation_time, modification_time`

	getEntryByID = `SELECT ` + entryColumns + `
		FROM entries
		WHERE id = $1;`

	getEntriesByName = `SELECT ` + entryColumns + `
		FROM entries
		WHERE lower(name) = lower($1)
		ORDER BY id;`

	getEntryByPartNumber = `SELECT ` + entryColumns + `
		FROM entries
		WHERE part_number = $1
		LIMIT 1;`

	updateEntryVisibility = `UPDATE entries
		SET visibility = $1, modification_time = NOW()
		WHERE id = $2;`

	getFolderByID = `SELECT id, name, description, owner_email, type
		FROM folders
		WHERE id = $1;`

	getAccountByEmail = `SELECT id, email, first_name, last_name, type, created_at
		FROM accounts
		WHERE lower(email) = lower($1);`

	getAccountGroupIDs = `SELECT group_id
		FROM account_groups
		WHERE account_id = $1
		ORDER BY group_id;`

	getGroupByUUID = `SELECT id, uuid, label, type
		FROM groups
		WHERE uuid = $1;`

	// the no-op update makes RETURNING yield the row on conflict
	getOrCreatePublicGroup = `INSERT INTO groups (uuid, label, type)
		VALUES ($1, 'Everyone', 'PUBLIC')
		ON CONFLICT (uuid) DO UPDATE SET uuid = excluded.uuid
		RETURNING id, uuid, label, type;`
)

// withEntryType narrows an entries query aliased as "e" to one record type.
func withEntryType(query sq.SelectBuilder, entryType *models.EntryType) sq.SelectBuilder {
	if entryType == nil {
		return query
	}
	return query.Where(sq.Eq{"e.record_type": string(*entryType)})
}

func buildOwnerEntryIDsQuery(ownerEmail string, entryType *models.EntryType) sq.SelectBuilder {
	query := psql.Select("e.id").
		From("entries AS e").
		Where(sq.Eq{"e.owner_email": ownerEmail, "e.visibility": int(models.VisibilityOK)}).
		OrderBy("e.id")
	return withEntryType(query, entryType)
}

func buildSharedEntryIDsQuery(principal models.Principal, entryType *models.EntryType) sq.SelectBuilder {
	grantee := sq.Or{sq.Eq{"p.account_id": principal.Account.ID}}
	if len(principal.GroupIDs) > 0 {
		grantee = append(grantee, sq.Eq{"p.group_id": principal.GroupIDs})
	}

	query := psql.Select("e.id").Distinct().
		From("entries AS e").
		Join("permissions AS p ON p.entry_id = e.id").
		Where(grantee).
		Where(sq.NotEq{"e.owner_email": principal.Account.Email}).
		Where(sq.Eq{"e.visibility": int(models.VisibilityOK)}).
		OrderBy("e.id")
	return withEntryType(query, entryType)
}

func buildVisibleEntryIDsQuery(admin bool, publicGroupID int64, entryType *models.EntryType) sq.SelectBuilder {
	var query sq.SelectBuilder
	if admin {
		query = psql.Select("e.id").From("entries AS e")
	} else {
		query = psql.Select("e.id").Distinct().
			From("entries AS e").
			Join("permissions AS p ON p.entry_id = e.id").
			Where(sq.Eq{"p.group_id": publicGroupID, "p.can_read": true})
	}

	query = query.Where(sq.Eq{"e.visibility": int(models.VisibilityOK)}).OrderBy("e.id")
	return withEntryType(query, entryType)
}

func buildFolderContentIDsQuery(folderID int64, entryType *models.EntryType, visibleOnly bool) sq.SelectBuilder {
	query := psql.Select("e.id").
		From("folder_entries AS fe").
		Join("entries AS e ON e.id = fe.entry_id").
		Where(sq.Eq{"fe.folder_id": folderID}).
		OrderBy("e.id")
	if visibleOnly {
		query = query.Where(sq.Eq{"e.visibility": int(models.VisibilityOK)})
	}
	return withEntryType(query, entryType)
}

// permissionGrantee matches grants made to the account or to any of groupIDs.
func permissionGrantee(accountID int64, groupIDs []int64) sq.Sqlizer {
	grantee := sq.Or{sq.Eq{"p.account_id": accountID}}
	if len(groupIDs) > 0 {
		grantee = append(grantee, sq.Eq{"p.group_id": groupIDs})
	}
	return grantee
}

func permissionRight(write bool) sq.Sqlizer {
	if write {
		return sq.Eq{"p.can_write": true}
	}
	return sq.Or{sq.Eq{"p.can_read": true}, sq.Eq{"p.can_write": true}}
}

func buildEntryPermissionQuery(entryID, accountID int64, groupIDs []int64, write bool) sq.SelectBuilder {
	return psql.Select("1").
		From("permissions AS p").
		Where(sq.Eq{"p.entry_id": entryID}).
		Where(permissionGrantee(accountID, groupIDs)).
		Where(permissionRight(write))
}

func buildFolderPermissionQuery(folderID, accountID int64, groupIDs []int64, write bool) sq.SelectBuilder {
	return psql.Select("1").
		From("permissions AS p").
		Where(sq.Eq{"p.folder_id": folderID}).
		Where(permissionGrantee(accountID, groupIDs)).
		Where(permissionRight(write))
}

func buildEntryInReadableFolderQuery(entryID int64, account models.Account, groupIDs []int64) sq.SelectBuilder {
	// nested builders keep "?" placeholders; the outer builder renumbers them
	granted := sq.Select("1").
		From("permissions AS p").
		Where("p.folder_id = f.id").
		Where(permissionGrantee(account.ID, groupIDs)).
		Where(permissionRight(false))

	return psql.Select("1").
		From("folder_entries AS fe").
		Join("folders AS f ON f.id = fe.folder_id").
		Where(sq.Eq{"fe.entry_id": entryID}).
		Where(sq.Or{
			sq.Eq{"f.owner_email": account.Email},
			sq.Expr("EXISTS (?)", granted),
		})
}

func buildAllEntryIDsQuery() sq.SelectBuilder {
	return psql.Select("e.id").From("entries AS e").OrderBy("e.id")
}
