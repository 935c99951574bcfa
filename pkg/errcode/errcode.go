package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Home directory and config file errors
	FSCreateDirError
	FSConfigWriteError
	FSConfigReadError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBUnknownDriverError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaCreateError
	SchemaMigrateError
	SchemaSearchIndexError

	// Catalog store errors
	StoreNotFoundError
	StoreConstraintError
	StoreQueryError
	StoreSearchDisabledError
	StoreSearchFieldError

	// Legacy import errors
	LegacyVariantError
	LegacyConnectionError
	LegacyReadError
	LegacyCancelledError
)
