package spreadsheet

import (
	"errors"
	"testing"

	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHeader_LocatesHeaderAfterPreamble(t *testing.T) {
	rows := [][]string{
		{"TRƯỜNG ĐẠI HỌC ABC"},
		{"DANH SÁCH SINH VIÊN THỰC TẬP ĐỢT 1"},
		{},
		{"STT", "Mã SV", "Họ tên", "Lớp", "Giảng viên hướng dẫn", "Doanh nghiệp thực tập"},
		{"1", "SV001", "Nguyen Van A", "D20CQ01", "TS. Tran B", "Cong ty ABC"},
	}

	idx, roles, err := FindHeader(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 0, roles[RoleOrdinal])
	assert.Equal(t, 1, roles[RoleStudentCode])
	assert.Equal(t, 2, roles[RoleStudentName])
	assert.Equal(t, 3, roles[RoleClass])
	assert.Equal(t, 4, roles[RoleTeacher])
	assert.Equal(t, 5, roles[RoleCompany])
}

func TestFindHeader_ColumnOrderPermutations(t *testing.T) {
	headers := [][]string{
		{"STT", "Mã SV", "Họ tên", "Giảng viên hướng dẫn"},
		{"Giảng viên hướng dẫn", "STT", "Họ tên", "Mã SV"},
		{"Họ tên", "Giảng viên hướng dẫn", "Mã SV", "STT"},
	}

	for _, header := range headers {
		idx, roles, err := FindHeader([][]string{header})
		require.NoError(t, err)
		assert.Equal(t, 0, idx)

		// role map must follow the columns wherever they land
		for col, cell := range header {
			switch cell {
			case "STT":
				assert.Equal(t, col, roles[RoleOrdinal])
			case "Mã SV":
				assert.Equal(t, col, roles[RoleStudentCode])
			case "Họ tên":
				assert.Equal(t, col, roles[RoleStudentName])
			case "Giảng viên hướng dẫn":
				assert.Equal(t, col, roles[RoleTeacher])
			}
		}
	}
}

func TestFindHeader_DiacriticAndCaseVariants(t *testing.T) {
	variants := [][]string{
		{"stt", "ma sv", "ho ten", "giang vien huong dan"},
		{"STT", "MÃ SINH VIÊN", "HỌ VÀ TÊN", "GIẢNG VIÊN HƯỚNG DẪN"},
		{"Stt", "Mã  SV", "Họ tên sinh viên", "GV hướng dẫn giảng viên"},
	}

	for _, header := range variants {
		idx, roles, err := FindHeader([][]string{header})
		require.NoError(t, err, "header %v", header)
		assert.Equal(t, 0, idx)
		assert.Len(t, roles, 4)
	}
}

func TestFindHeader_IgnoresPartialMatches(t *testing.T) {
	// A data-ish row carrying only some of the required roles must not be
	// accepted; the real header comes later.
	rows := [][]string{
		{"Mã SV", "ghi chú"},
		{"STT", "Mã SV", "Họ tên", "Giảng viên hướng dẫn"},
	}

	idx, _, err := FindHeader(rows)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestFindHeader_NotFound(t *testing.T) {
	rows := [][]string{
		{"TRƯỜNG ĐẠI HỌC ABC"},
		{"1", "SV001", "Nguyen Van A"},
	}

	_, _, err := FindHeader(rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrHeaderNotFound))
}

func TestClassifyCell_TeacherBeatsStudentName(t *testing.T) {
	// "Họ tên giảng viên hướng dẫn" names the teacher, not the student.
	role, ok := classifyCell("ho ten giang vien huong dan")
	require.True(t, ok)
	assert.Equal(t, RoleTeacher, role)
}

func TestClassifyCell_CompanySynonyms(t *testing.T) {
	for _, cell := range []string{"doanh nghiep", "cong ty tiep nhan", "don vi thuc tap"} {
		role, ok := classifyCell(cell)
		require.True(t, ok, cell)
		assert.Equal(t, RoleCompany, role)
	}
}
