package review

import "github.com/m04kA/Mila-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
