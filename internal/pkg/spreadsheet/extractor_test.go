package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoles() ColumnRoles {
	return ColumnRoles{
		RoleOrdinal:     0,
		RoleStudentCode: 1,
		RoleStudentName: 2,
		RoleBirthDate:   3,
		RoleTeacher:     4,
		RoleCompany:     5,
	}
}

func TestExtractRows_SkipsBlankRows(t *testing.T) {
	rows := [][]string{
		{"STT", "Mã SV", "Họ tên", "Ngày sinh", "Giảng viên hướng dẫn", "Doanh nghiệp"},
		{"1", "SV001", "Nguyen A", "", "TS. Tran B", "Cong ty ABC"},
		{"", "", "", "", "", ""},
		{"2"}, // ordinal only, no identifying data
		{"3", "SV002", "Le C", "", "", ""},
	}

	out := ExtractRows(rows, 0, testRoles())
	require.Len(t, out, 2)
	assert.Equal(t, "SV001", out[0].StudentCode)
	assert.Equal(t, "SV002", out[1].StudentCode)
	// line numbers survive the skips
	assert.Equal(t, 2, out[0].Line)
	assert.Equal(t, 5, out[1].Line)
}

func TestExtractRows_TeacherOnlyRowIsKept(t *testing.T) {
	rows := [][]string{
		{"header"},
		{"1", "", "", "", "TS. Pham D", ""},
	}

	out := ExtractRows(rows, 0, testRoles())
	require.Len(t, out, 1)
	assert.True(t, out[0].TeacherOnly())
	assert.Equal(t, "TS. Pham D", out[0].TeacherName)
}

func TestExtractRows_ShortRowsAndMissingRoles(t *testing.T) {
	roles := ColumnRoles{
		RoleStudentCode: 1,
		RoleStudentName: 2,
		RoleTeacher:     4,
	}
	rows := [][]string{
		{"header"},
		{"1", "SV001"}, // row shorter than the role map
	}

	out := ExtractRows(rows, 0, roles)
	require.Len(t, out, 1)
	assert.Equal(t, "SV001", out[0].StudentCode)
	assert.Empty(t, out[0].StudentName)
	assert.Empty(t, out[0].TeacherName)
	assert.Empty(t, out[0].CompanyName) // role absent from the map
}

func TestExtractRows_ParsesBirthDates(t *testing.T) {
	rows := [][]string{
		{"header"},
		{"1", "SV001", "Nguyen A", "15/03/2002", "", ""},
		{"2", "SV002", "Le C", "not a date", "", ""},
	}

	out := ExtractRows(rows, 0, testRoles())
	require.Len(t, out, 2)
	require.NotNil(t, out[0].BirthDate)
	assert.Equal(t, time.Date(2002, 3, 15, 0, 0, 0, 0, time.UTC), *out[0].BirthDate)
	assert.Nil(t, out[1].BirthDate)
}

func TestParseCellDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{"empty", "", nil},
		{"garbage", "hello", nil},
		{"dd/mm/yyyy", "15/03/2002", timePtr(2002, 3, 15)},
		{"d/m/yyyy", "5/3/2002", timePtr(2002, 3, 5)},
		{"iso", "2002-03-15", timePtr(2002, 3, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCellDate(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseCellDate_ExcelSerial(t *testing.T) {
	// 37330 is 2002-03-15 in the 1900 date system
	got := ParseCellDate("37330")
	require.NotNil(t, got)
	assert.Equal(t, 2002, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())
}

func timePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
