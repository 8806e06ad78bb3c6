package slot

import (
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
)

// DBExecutor интерфейс выполнения запросов (sql.DB, dbmetrics.DB или транзакция)
type DBExecutor = dbmetrics.DBExecutor
