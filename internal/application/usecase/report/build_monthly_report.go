package report

import (
	"context"
	"time"

	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// BuildMonthlyReportUseCase builds the report for one calendar month.
type BuildMonthlyReportUseCase struct {
	assembler *Assembler
}

// NewBuildMonthlyReportUseCase creates a new BuildMonthlyReportUseCase instance.
func NewBuildMonthlyReportUseCase(assembler *Assembler) *BuildMonthlyReportUseCase {
	return &BuildMonthlyReportUseCase{
		assembler: assembler,
	}
}

// Execute builds the report for the given year and month. Years outside
// 2000-2200 are rejected as client input mistakes (a mistyped year would
// otherwise produce a silently empty report).
func (uc *BuildMonthlyReportUseCase) Execute(ctx context.Context, year int, month time.Month) (*BuildReportOutput, error) {
	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"year and month must form a valid calendar month",
			domainerror.ErrInvalidReportMonth,
		)
	}

	start, end := MonthBounds(year, month)
	return uc.assembler.Build(ctx, start, end, GrainMonthly)
}
