package appointment

import (
	"github.com/habitatum/HBT-AppointmentService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interface for database access.
// Satisfied by *sql.DB, *sql.Tx, *dbmetrics.DB and *dbmetrics.Tx.
type DBExecutor = dbmetrics.DBExecutor
