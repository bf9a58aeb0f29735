package report

import (
	"context"
	"time"

	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// BuildWeeklyReportUseCase builds the report for the Monday-to-Sunday week
// containing a date.
type BuildWeeklyReportUseCase struct {
	assembler *Assembler
}

// NewBuildWeeklyReportUseCase creates a new BuildWeeklyReportUseCase instance.
func NewBuildWeeklyReportUseCase(assembler *Assembler) *BuildWeeklyReportUseCase {
	return &BuildWeeklyReportUseCase{
		assembler: assembler,
	}
}

// Execute builds the report for the week containing date.
func (uc *BuildWeeklyReportUseCase) Execute(ctx context.Context, date time.Time) (*BuildReportOutput, error) {
	if date.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportDate,
			"report date is required",
			domainerror.ErrInvalidReportDate,
		)
	}

	start, end := PeriodBounds(date, GrainWeekly)
	return uc.assembler.Build(ctx, start, end, GrainWeekly)
}
