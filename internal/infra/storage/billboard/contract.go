package billboard

import "github.com/m04kA/SMC-BillboardService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
