package export_data

import (
	"context"

	exportData "github.com/halqallaf/villa-booking-service/internal/usecase/export_data"
)

type ExportDataUseCase interface {
	Execute(ctx context.Context, req *exportData.Request) (*exportData.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
