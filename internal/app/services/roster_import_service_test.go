package services

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fakeRosterStore backs every store interface of the import pipeline with
// in-memory maps, single batch.
type fakeRosterStore struct {
	batch *models.Batch

	studentCodes map[string]bool
	teachers     []*models.Teacher
	companies    []*models.Company

	studentLinks map[string]bool
	teacherLinks map[string]bool
	companyLinks map[string]bool

	companyCounts map[string]int
	globalCounts  map[string]int

	hasAssignments   bool
	assignmentCounts map[string]int

	runs []*models.ImportRun

	batchStudents  int
	batchTeachers  int
	batchCompanies int
}

func newFakeRosterStore() *fakeRosterStore {
	return &fakeRosterStore{
		batch: &models.Batch{ID: 1, Name: "Đợt 1", Status: models.BatchStatusOpen},
		studentCodes: map[string]bool{
			"SV001": true,
			"SV002": true,
			"SV003": true,
		},
		teachers: []*models.Teacher{
			{ID: 1, Code: "GV01", Name: "Trần B"},
		},
		companies: []*models.Company{
			{ID: 1, Code: "ABC", Name: "ABC"},
			{ID: 2, Code: "XYZ", Name: "XYZ Corp"},
		},
		studentLinks:  make(map[string]bool),
		teacherLinks:  make(map[string]bool),
		companyLinks:  make(map[string]bool),
		companyCounts: make(map[string]int),
		globalCounts:  make(map[string]int),
	}
}

func (f *fakeRosterStore) GetByID(_ context.Context, id int64) (*models.Batch, error) {
	if f.batch == nil || f.batch.ID != id {
		return nil, apperrors.ErrBatchNotFound
	}
	return f.batch, nil
}

func (f *fakeRosterStore) UpdateParticipantCounts(_ context.Context, _ int64, students, teachers, companies int) error {
	f.batchStudents = students
	f.batchTeachers = teachers
	f.batchCompanies = companies
	return nil
}

func (f *fakeRosterStore) ListCodes(_ context.Context) (map[string]bool, error) {
	return f.studentCodes, nil
}

func (f *fakeRosterStore) ListAll(_ context.Context) ([]*models.Teacher, error) {
	return f.teachers, nil
}

// companyLister adapts the same fake to the company store interface, which
// collides with the teacher ListAll signature otherwise.
type companyLister struct{ f *fakeRosterStore }

func (c companyLister) ListAll(_ context.Context) ([]*models.Company, error) {
	return c.f.companies, nil
}

func (c companyLister) SetStudentCount(_ context.Context, code string, count int) error {
	c.f.globalCounts[code] = count
	return nil
}

func (f *fakeRosterStore) LinkStudent(_ context.Context, _ int64, code string) (bool, error) {
	if f.studentLinks[code] {
		return false, nil
	}
	f.studentLinks[code] = true
	return true, nil
}

func (f *fakeRosterStore) LinkTeacher(_ context.Context, _ int64, code string) (bool, error) {
	if f.teacherLinks[code] {
		return false, nil
	}
	f.teacherLinks[code] = true
	return true, nil
}

func (f *fakeRosterStore) LinkCompany(_ context.Context, _ int64, code string) (bool, error) {
	if f.companyLinks[code] {
		return false, nil
	}
	f.companyLinks[code] = true
	f.companyCounts[code] = 0
	return true, nil
}

func (f *fakeRosterStore) CountStudents(_ context.Context, _ int64) (int, error) {
	return len(f.studentLinks), nil
}

func (f *fakeRosterStore) CountTeachers(_ context.Context, _ int64) (int, error) {
	return len(f.teacherLinks), nil
}

func (f *fakeRosterStore) CountCompanies(_ context.Context, _ int64) (int, error) {
	return len(f.companyLinks), nil
}

func (f *fakeRosterStore) ReplaceCompanyStudentCounts(_ context.Context, _ int64, counts map[string]int) error {
	for code := range f.companyCounts {
		f.companyCounts[code] = 0
	}
	for code, count := range counts {
		f.companyCounts[code] = count
	}
	return nil
}

func (f *fakeRosterStore) HasForBatch(_ context.Context, _ int64) (bool, error) {
	return f.hasAssignments, nil
}

func (f *fakeRosterStore) DistinctStudentCountsByCompany(_ context.Context, _ int64) (map[string]int, error) {
	return f.assignmentCounts, nil
}

func (f *fakeRosterStore) GlobalDistinctStudentCountsByCompany(_ context.Context) (map[string]int, error) {
	return f.assignmentCounts, nil
}

func (f *fakeRosterStore) Create(_ context.Context, run *models.ImportRun) error {
	run.ID = int64(len(f.runs) + 1)
	f.runs = append(f.runs, run)
	return nil
}

func newImportService(f *fakeRosterStore) *RosterImportService {
	return NewRosterImportService(f, f, f, companyLister{f}, f, f, f)
}

func buildRoster(t *testing.T, rows [][]interface{}) io.Reader {
	t.Helper()
	wb := excelize.NewFile()
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, wb.SetCellValue("Sheet1", cell, value))
		}
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func rosterRows() [][]interface{} {
	return [][]interface{}{
		{"DANH SÁCH SINH VIÊN THỰC TẬP"},
		{"STT", "Mã SV", "Họ và tên", "Doanh nghiệp", "Giảng viên hướng dẫn"},
		{1, "SV001", "Nguyễn Văn A", "Công ty TNHH ABC", "TS. Trần B"},
		{2, "SV002", "Lê Thị C", "ABC", "Trần B"},
		{3, "SV003", "Phạm D", "XYZ Corp", "Trần B"},
		{4, "SV999", "Hoàng E", "XYZ Corp", "Trần B"},
	}
}

func TestImport_LinksAndObservedCounts(t *testing.T) {
	f := newFakeRosterStore()
	svc := newImportService(f)

	result, err := svc.Import(context.Background(), 1, "danhsach.xlsx", buildRoster(t, rosterRows()))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Errors)
	require.Len(t, result.ErrorDetails, 1)
	assert.Contains(t, result.ErrorDetails[0], "Dòng 6")
	assert.Contains(t, result.ErrorDetails[0], "SV999")

	// one link per entity regardless of how many rows mention it
	assert.Len(t, f.studentLinks, 3)
	assert.Equal(t, map[string]bool{"GV01": true}, f.teacherLinks)
	assert.Len(t, f.companyLinks, 2)

	// batch-level counts recounted from the link tables
	assert.Equal(t, 3, f.batchStudents)
	assert.Equal(t, 1, f.batchTeachers)
	assert.Equal(t, 2, f.batchCompanies)

	// no assignments yet, so per-company counts come from observed pairs
	assert.Equal(t, "IMPORT_OBSERVED", result.CountSource)
	assert.Equal(t, map[string]int{"ABC": 2, "XYZ": 1}, f.companyCounts)
	assert.Equal(t, map[string]int{"ABC": 2, "XYZ": 1}, f.globalCounts)

	require.Len(t, f.runs, 1)
	assert.Equal(t, 3, f.runs[0].Imported)
	assert.Equal(t, 1, f.runs[0].Errors)
	assert.Equal(t, models.CountSourceImportObserved, f.runs[0].CountSource)
}

func TestImport_Idempotent(t *testing.T) {
	f := newFakeRosterStore()
	svc := newImportService(f)

	_, err := svc.Import(context.Background(), 1, "danhsach.xlsx", buildRoster(t, rosterRows()))
	require.NoError(t, err)

	result, err := svc.Import(context.Background(), 1, "danhsach.xlsx", buildRoster(t, rosterRows()))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Len(t, f.studentLinks, 3)
	assert.Len(t, f.teacherLinks, 1)
	assert.Len(t, f.companyLinks, 2)
	assert.Equal(t, 3, f.batchStudents)
	assert.Equal(t, map[string]int{"ABC": 2, "XYZ": 1}, f.companyCounts)
	assert.Len(t, f.runs, 2)
}

func TestImport_FormalAssignmentsSupersedeObserved(t *testing.T) {
	f := newFakeRosterStore()
	f.hasAssignments = true
	f.assignmentCounts = map[string]int{"ABC": 5}
	svc := newImportService(f)

	result, err := svc.Import(context.Background(), 1, "danhsach.xlsx", buildRoster(t, rosterRows()))
	require.NoError(t, err)

	assert.Equal(t, "FORMAL_ASSIGNMENTS", result.CountSource)
	assert.Equal(t, 5, f.companyCounts["ABC"])
	// observed pairs must not leak into the assignment-sourced counts
	assert.Equal(t, 0, f.companyCounts["XYZ"])

	// global company counts follow the assignment numbers
	assert.Equal(t, map[string]int{"ABC": 5}, f.globalCounts)
}

func TestImport_TeacherOnlyRowLinksTeacher(t *testing.T) {
	f := newFakeRosterStore()
	svc := newImportService(f)

	rows := [][]interface{}{
		{"STT", "Mã SV", "Họ và tên", "Doanh nghiệp", "Giảng viên hướng dẫn"},
		{1, "", "", "", "TS. Trần B"},
	}
	result, err := svc.Import(context.Background(), 1, "gv.xlsx", buildRoster(t, rows))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Errors)
	assert.Empty(t, f.studentLinks)
	assert.Equal(t, map[string]bool{"GV01": true}, f.teacherLinks)
}

func TestImport_UnresolvedNamesAreNotErrors(t *testing.T) {
	f := newFakeRosterStore()
	svc := newImportService(f)

	rows := [][]interface{}{
		{"STT", "Mã SV", "Họ và tên", "Doanh nghiệp", "Giảng viên hướng dẫn"},
		{1, "SV001", "Nguyễn Văn A", "Công ty không ai biết", "GS. Vô Danh"},
	}
	result, err := svc.Import(context.Background(), 1, "la.xlsx", buildRoster(t, rows))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Errors)
	assert.Len(t, f.studentLinks, 1)
	assert.Empty(t, f.teacherLinks)
	assert.Empty(t, f.companyLinks)
}

func TestImport_ClosedBatchRejected(t *testing.T) {
	f := newFakeRosterStore()
	f.batch.Status = models.BatchStatusClosed
	svc := newImportService(f)

	_, err := svc.Import(context.Background(), 1, "danhsach.xlsx", buildRoster(t, rosterRows()))
	assert.ErrorIs(t, err, apperrors.ErrBatchClosed)
}

func TestImport_HeaderNotFound(t *testing.T) {
	f := newFakeRosterStore()
	svc := newImportService(f)

	rows := [][]interface{}{
		{"chỉ là", "vài ô", "văn bản"},
		{"không", "phải", "header"},
	}
	_, err := svc.Import(context.Background(), 1, "rac.xlsx", buildRoster(t, rows))
	assert.ErrorIs(t, err, apperrors.ErrHeaderNotFound)
}

func TestRecalculate_WithoutObservationsZeroesCounts(t *testing.T) {
	f := newFakeRosterStore()
	svc := newImportService(f)

	_, err := svc.Import(context.Background(), 1, "danhsach.xlsx", buildRoster(t, rosterRows()))
	require.NoError(t, err)
	require.Equal(t, map[string]int{"ABC": 2, "XYZ": 1}, f.companyCounts)

	// an assignment-triggered recalculation with no assignments left has no
	// observed pairs to fall back on
	source, err := svc.Recalculate(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CountSourceImportObserved, source)
	assert.Equal(t, map[string]int{"ABC": 0, "XYZ": 0}, f.companyCounts)
}

func TestObservations_CollapsesDuplicatePairs(t *testing.T) {
	obs := NewObservations()
	obs.Add("SV001", "ABC")
	obs.Add("SV001", "ABC")
	obs.Add("SV002", "ABC")
	obs.Add("", "ABC")
	obs.Add("SV003", "")

	assert.Equal(t, map[string]int{"ABC": 2}, obs.CompanyCounts())
}

func TestImportMessage(t *testing.T) {
	assert.Equal(t, "Import thành công 3 record(s)",
		ImportMessage(&dto.ImportResult{Imported: 3}))
	assert.Equal(t, "Import thành công 3 record(s), 2 lỗi",
		ImportMessage(&dto.ImportResult{Imported: 3, Errors: 2}))
}
