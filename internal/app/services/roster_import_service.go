package services

import (
	"context"
	"fmt"
	"io"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/logger"
	"github.com/minhvu/internhub/internal/pkg/match"
	"github.com/minhvu/internhub/internal/pkg/spreadsheet"
)

// The import pipeline touches several tables through narrow store interfaces
// so the whole flow can be exercised against an in-memory double.

type rosterBatchStore interface {
	GetByID(ctx context.Context, id int64) (*models.Batch, error)
	UpdateParticipantCounts(ctx context.Context, batchID int64, students, teachers, companies int) error
}

type rosterStudentStore interface {
	ListCodes(ctx context.Context) (map[string]bool, error)
}

type rosterTeacherStore interface {
	ListAll(ctx context.Context) ([]*models.Teacher, error)
}

type rosterCompanyStore interface {
	ListAll(ctx context.Context) ([]*models.Company, error)
	SetStudentCount(ctx context.Context, code string, count int) error
}

type rosterLinkStore interface {
	LinkStudent(ctx context.Context, batchID int64, studentCode string) (bool, error)
	LinkTeacher(ctx context.Context, batchID int64, teacherCode string) (bool, error)
	LinkCompany(ctx context.Context, batchID int64, companyCode string) (bool, error)
	CountStudents(ctx context.Context, batchID int64) (int, error)
	CountTeachers(ctx context.Context, batchID int64) (int, error)
	CountCompanies(ctx context.Context, batchID int64) (int, error)
	ReplaceCompanyStudentCounts(ctx context.Context, batchID int64, counts map[string]int) error
}

type rosterAssignmentStore interface {
	HasForBatch(ctx context.Context, batchID int64) (bool, error)
	DistinctStudentCountsByCompany(ctx context.Context, batchID int64) (map[string]int, error)
	GlobalDistinctStudentCountsByCompany(ctx context.Context) (map[string]int, error)
}

type rosterRunStore interface {
	Create(ctx context.Context, run *models.ImportRun) error
}

// Observations accumulates the unique student-company pairs seen during one
// import run. It is run-scoped and discarded afterwards; only the derived
// per-company counts survive, written by the recalculation.
type Observations struct {
	pairs map[string]map[string]bool
}

// NewObservations creates an empty accumulator
func NewObservations() *Observations {
	return &Observations{pairs: make(map[string]map[string]bool)}
}

// Add records that the student was observed at the company. Duplicate pairs
// collapse, which is what makes re-imported rows idempotent at count level.
func (o *Observations) Add(studentCode, companyCode string) {
	if studentCode == "" || companyCode == "" {
		return
	}
	students, ok := o.pairs[companyCode]
	if !ok {
		students = make(map[string]bool)
		o.pairs[companyCode] = students
	}
	students[studentCode] = true
}

// CompanyCounts returns the number of distinct observed students per company
func (o *Observations) CompanyCounts() map[string]int {
	counts := make(map[string]int, len(o.pairs))
	for companyCode, students := range o.pairs {
		counts[companyCode] = len(students)
	}
	return counts
}

// RosterImportService runs the roster reconciliation pipeline: load the
// workbook, locate and classify the header, extract rows, resolve names to
// codes, upsert participation links and recalculate the batch aggregates.
type RosterImportService struct {
	batchStore      rosterBatchStore
	studentStore    rosterStudentStore
	teacherStore    rosterTeacherStore
	companyStore    rosterCompanyStore
	linkStore       rosterLinkStore
	assignmentStore rosterAssignmentStore
	runStore        rosterRunStore
}

// NewRosterImportService creates a new RosterImportService
func NewRosterImportService(
	batchStore rosterBatchStore,
	studentStore rosterStudentStore,
	teacherStore rosterTeacherStore,
	companyStore rosterCompanyStore,
	linkStore rosterLinkStore,
	assignmentStore rosterAssignmentStore,
	runStore rosterRunStore,
) *RosterImportService {
	return &RosterImportService{
		batchStore:      batchStore,
		studentStore:    studentStore,
		teacherStore:    teacherStore,
		companyStore:    companyStore,
		linkStore:       linkStore,
		assignmentStore: assignmentStore,
		runStore:        runStore,
	}
}

// Import ingests one spreadsheet into the batch and returns the per-run
// summary. Row-level failures are isolated: a bad row is counted and
// detailed, the remaining rows still import.
func (s *RosterImportService) Import(ctx context.Context, batchID int64, fileName string, file io.Reader) (*dto.ImportResult, error) {
	batch, err := s.batchStore.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.Status == models.BatchStatusClosed {
		return nil, apperrors.ErrBatchClosed
	}

	wb, err := spreadsheet.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	rows, err := wb.Rows()
	if err != nil {
		return nil, err
	}

	headerIdx, roles, err := spreadsheet.FindHeader(rows)
	if err != nil {
		return nil, err
	}
	dataRows := spreadsheet.ExtractRows(rows, headerIdx, roles)

	knownStudents, err := s.studentStore.ListCodes(ctx)
	if err != nil {
		return nil, err
	}
	teacherResolver, err := s.buildTeacherResolver(ctx)
	if err != nil {
		return nil, err
	}
	companyResolver, err := s.buildCompanyResolver(ctx)
	if err != nil {
		return nil, err
	}

	imported := 0
	var errorDetails []string
	observations := NewObservations()

	for _, row := range dataRows {
		rowErr := s.importRow(ctx, batchID, row, knownStudents, teacherResolver, companyResolver, observations)
		if rowErr != nil {
			errorDetails = append(errorDetails, fmt.Sprintf("Dòng %d: %s", row.Line, rowErr.Error()))
			continue
		}
		imported++
	}

	countSource, err := s.Recalculate(ctx, batchID, observations)
	if err != nil {
		return nil, err
	}

	run := &models.ImportRun{
		BatchID:     batchID,
		FileName:    fileName,
		Imported:    imported,
		Errors:      len(errorDetails),
		CountSource: countSource,
	}
	if err := s.runStore.Create(ctx, run); err != nil {
		return nil, err
	}

	logger.Info().Int64("batchID", batchID).Str("file", fileName).
		Int("imported", imported).Int("errors", len(errorDetails)).
		Str("countSource", string(countSource)).
		Msg("Roster import finished")

	return &dto.ImportResult{
		Imported:     imported,
		Errors:       len(errorDetails),
		ErrorDetails: errorDetails,
		CountSource:  string(countSource),
	}, nil
}

// importRow links one extracted row into the batch. Only the student path can
// fail the row: an unknown student code is a data error the operator must fix,
// while teacher and company names that do not resolve simply contribute no
// link for this row.
func (s *RosterImportService) importRow(
	ctx context.Context,
	batchID int64,
	row spreadsheet.RosterRow,
	knownStudents map[string]bool,
	teacherResolver, companyResolver match.Resolver,
	observations *Observations,
) error {
	var studentCode string
	if !row.TeacherOnly() {
		if row.StudentCode == "" {
			return fmt.Errorf("thiếu mã sinh viên")
		}
		if !knownStudents[row.StudentCode] {
			return fmt.Errorf("mã sinh viên %s không tồn tại", row.StudentCode)
		}
		studentCode = row.StudentCode
		if _, err := s.linkStore.LinkStudent(ctx, batchID, studentCode); err != nil {
			return fmt.Errorf("không thể liên kết sinh viên %s", studentCode)
		}
	}

	if row.TeacherName != "" {
		if teacherCode, ok := teacherResolver.Resolve(row.TeacherName); ok {
			if _, err := s.linkStore.LinkTeacher(ctx, batchID, teacherCode); err != nil {
				return fmt.Errorf("không thể liên kết giảng viên %s", teacherCode)
			}
		}
	}

	if row.CompanyName != "" {
		if companyCode, ok := companyResolver.Resolve(row.CompanyName); ok {
			if _, err := s.linkStore.LinkCompany(ctx, batchID, companyCode); err != nil {
				return fmt.Errorf("không thể liên kết doanh nghiệp %s", companyCode)
			}
			observations.Add(studentCode, companyCode)
		}
	}

	return nil
}

func (s *RosterImportService) buildTeacherResolver(ctx context.Context) (match.Resolver, error) {
	teachers, err := s.teacherStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]match.Candidate, len(teachers))
	for i, t := range teachers {
		candidates[i] = match.Candidate{Code: t.Code, Name: t.Name}
	}
	return match.NewNameResolver("teacher", candidates), nil
}

func (s *RosterImportService) buildCompanyResolver(ctx context.Context) (match.Resolver, error) {
	companies, err := s.companyStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]match.Candidate, len(companies))
	for i, c := range companies {
		candidates[i] = match.Candidate{Code: c.Code, Name: c.Name}
	}
	return match.NewNameResolver("company", candidates), nil
}

// Recalculate rebuilds the batch aggregates. Batch-level counts are always
// recounted from the participation link tables. Per-company student counts
// come from exactly one source: distinct students in formal assignments when
// the batch has any, otherwise the pairs observed by this import run.
// observations may be nil on assignment-triggered recalculations; without
// assignments that zeroes the per-company counts.
func (s *RosterImportService) Recalculate(ctx context.Context, batchID int64, observations *Observations) (models.CountSource, error) {
	students, err := s.linkStore.CountStudents(ctx, batchID)
	if err != nil {
		return "", err
	}
	teachers, err := s.linkStore.CountTeachers(ctx, batchID)
	if err != nil {
		return "", err
	}
	companies, err := s.linkStore.CountCompanies(ctx, batchID)
	if err != nil {
		return "", err
	}
	if err := s.batchStore.UpdateParticipantCounts(ctx, batchID, students, teachers, companies); err != nil {
		return "", err
	}

	hasAssignments, err := s.assignmentStore.HasForBatch(ctx, batchID)
	if err != nil {
		return "", err
	}

	var countSource models.CountSource
	var companyCounts map[string]int
	if hasAssignments {
		countSource = models.CountSourceFormalAssignments
		companyCounts, err = s.assignmentStore.DistinctStudentCountsByCompany(ctx, batchID)
		if err != nil {
			return "", err
		}
	} else {
		countSource = models.CountSourceImportObserved
		if observations != nil {
			companyCounts = observations.CompanyCounts()
		}
	}

	if err := s.linkStore.ReplaceCompanyStudentCounts(ctx, batchID, companyCounts); err != nil {
		return "", err
	}

	if err := s.refreshGlobalCompanyCounts(ctx, companyCounts); err != nil {
		return "", err
	}
	return countSource, nil
}

// refreshGlobalCompanyCounts updates companies.student_count for every company
// touched by this recalculation. The global number counts distinct students
// across that company's assignments in all batches; a company with no
// assignments anywhere keeps the batch-scoped count instead.
func (s *RosterImportService) refreshGlobalCompanyCounts(ctx context.Context, batchCounts map[string]int) error {
	if len(batchCounts) == 0 {
		return nil
	}
	globalCounts, err := s.assignmentStore.GlobalDistinctStudentCountsByCompany(ctx)
	if err != nil {
		return err
	}
	for code, batchCount := range batchCounts {
		count, ok := globalCounts[code]
		if !ok {
			count = batchCount
		}
		if err := s.companyStore.SetStudentCount(ctx, code, count); err != nil {
			return err
		}
	}
	return nil
}

// ImportMessage renders the operator-facing summary line for an import run
func ImportMessage(result *dto.ImportResult) string {
	msg := fmt.Sprintf("Import thành công %d record(s)", result.Imported)
	if result.Errors > 0 {
		msg += fmt.Sprintf(", %d lỗi", result.Errors)
	}
	return msg
}
