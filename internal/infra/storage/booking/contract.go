package booking

import "github.com/halqallaf/villa-booking-service/pkg/txmanager"

// Переиспользуем интерфейсы из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
type TxExecutor = txmanager.TxExecutor
