package spreadsheet

import (
	"strings"
	"time"
)

// RosterRow is one extracted data row keyed by semantic role. Roles the
// classifier did not resolve stay zero-valued for every row.
type RosterRow struct {
	// Line is the 1-based sheet row number, used in error details
	Line        int
	StudentCode string
	StudentName string
	Email       string
	Phone       string
	Class       string
	BirthDate   *time.Time
	Position    string
	CompanyName string
	TeacherName string
}

// Blank reports whether the row carries no identifying data at all.
// Blank rows are skipped silently, they are not errors.
func (r RosterRow) Blank() bool {
	return r.StudentCode == "" && r.StudentName == "" && r.TeacherName == ""
}

// TeacherOnly reports whether the row names a supervising teacher without a
// student. Such rows are legitimate and still produce the teacher link.
func (r RosterRow) TeacherOnly() bool {
	return r.StudentCode == "" && r.TeacherName != ""
}

// ExtractRows walks the rows after the header row and extracts one RosterRow
// per non-blank data row.
func ExtractRows(rows [][]string, headerIdx int, roles ColumnRoles) []RosterRow {
	var out []RosterRow
	for i := headerIdx + 1; i < len(rows); i++ {
		row := extractRow(rows[i], i+1, roles)
		if row.Blank() {
			continue
		}
		out = append(out, row)
	}
	return out
}

func extractRow(cells []string, line int, roles ColumnRoles) RosterRow {
	cell := func(role Role) string {
		idx, ok := roles[role]
		if !ok || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	return RosterRow{
		Line:        line,
		StudentCode: cell(RoleStudentCode),
		StudentName: cell(RoleStudentName),
		Email:       cell(RoleEmail),
		Phone:       cell(RolePhone),
		Class:       cell(RoleClass),
		BirthDate:   ParseCellDate(cell(RoleBirthDate)),
		Position:    cell(RolePosition),
		CompanyName: cell(RoleCompany),
		TeacherName: cell(RoleTeacher),
	}
}
