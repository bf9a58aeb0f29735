package report

import (
	"context"
	"time"

	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// BuildDailyReportUseCase builds the report for a single calendar day.
type BuildDailyReportUseCase struct {
	assembler *Assembler
}

// NewBuildDailyReportUseCase creates a new BuildDailyReportUseCase instance.
func NewBuildDailyReportUseCase(assembler *Assembler) *BuildDailyReportUseCase {
	return &BuildDailyReportUseCase{
		assembler: assembler,
	}
}

// Execute builds the report for the day containing date.
func (uc *BuildDailyReportUseCase) Execute(ctx context.Context, date time.Time) (*BuildReportOutput, error) {
	if date.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportDate,
			"report date is required",
			domainerror.ErrInvalidReportDate,
		)
	}

	start, end := PeriodBounds(date, GrainDaily)
	return uc.assembler.Build(ctx, start, end, GrainDaily)
}
