package spreadsheet

import (
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/logger"
	"github.com/minhvu/internhub/internal/pkg/vntext"
)

// Role identifies the semantic meaning of a spreadsheet column.
type Role string

const (
	RoleOrdinal     Role = "ordinal"
	RoleStudentCode Role = "student_code"
	RoleStudentName Role = "student_name"
	RoleEmail       Role = "email"
	RolePhone       Role = "phone"
	RoleClass       Role = "class"
	RoleBirthDate   Role = "birth_date"
	RolePosition    Role = "position"
	RoleCompany     Role = "company"
	RoleTeacher     Role = "teacher"
)

// ColumnRoles maps each confidently identified role to its column index.
type ColumnRoles map[Role]int

// HasRole reports whether the classifier resolved a column for the role
func (c ColumnRoles) HasRole(role Role) bool {
	_, ok := c[role]
	return ok
}

// classifyCell maps one normalized header cell to a role. Roles are tried
// most-specific first: "Giảng viên hướng dẫn" must not fall through to the
// student-name rule, and "Mã SV" must win before any looser rule sees it.
func classifyCell(norm string) (Role, bool) {
	contains := func(substrs ...string) bool {
		for _, s := range substrs {
			if vntext.ContainsNormalized(norm, s) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("giang vien") && contains("huong dan"):
		return RoleTeacher, true
	case contains("ma sv", "ma sinh vien"):
		return RoleStudentCode, true
	case contains("ho ten", "ho va ten") && !contains("giang vien"):
		return RoleStudentName, true
	case contains("ngay sinh"):
		return RoleBirthDate, true
	case contains("email", "thu dien tu"):
		return RoleEmail, true
	case contains("dien thoai", "sdt"):
		return RolePhone, true
	case contains("doanh nghiep", "cong ty", "don vi thuc tap"):
		return RoleCompany, true
	case contains("vi tri", "cong viec", "nguyen vong"):
		return RolePosition, true
	case contains("lop"):
		return RoleClass, true
	case norm == "stt" || contains("so tt", "so thu tu"):
		return RoleOrdinal, true
	default:
		return "", false
	}
}

// requiredRoles is the minimal set a row must carry, all at once, to be
// accepted as the header row. Partial matches are ignored so that a data row
// containing e.g. a student code never gets misclassified as the header.
var requiredRoles = []Role{RoleOrdinal, RoleStudentCode, RoleStudentName, RoleTeacher}

// FindHeader scans rows top-down for the header row and builds the column role
// map. The first row satisfying the full required role set wins and scanning
// stops there. Returns apperrors.ErrHeaderNotFound when the sheet ends without
// a match.
func FindHeader(rows [][]string) (int, ColumnRoles, error) {
	for i, row := range rows {
		roles := classifyRow(row)

		satisfied := true
		for _, req := range requiredRoles {
			if !roles.HasRole(req) {
				satisfied = false
				break
			}
		}
		if satisfied {
			logger.Debug().Int("row", i).Int("roles", len(roles)).Msg("Header row located")
			return i, roles, nil
		}
	}
	return 0, nil, apperrors.ErrHeaderNotFound
}

func classifyRow(row []string) ColumnRoles {
	roles := make(ColumnRoles)
	for col, cell := range row {
		norm := vntext.Normalize(cell)
		if norm == "" {
			continue
		}
		role, ok := classifyCell(norm)
		if !ok {
			continue
		}
		// first column wins per role
		if _, exists := roles[role]; !exists {
			roles[role] = col
		}
	}
	return roles
}
