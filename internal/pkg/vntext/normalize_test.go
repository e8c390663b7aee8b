package vntext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "ma sv", "ma sv"},
		{"uppercase with diacritics", "Mã SV", "ma sv"},
		{"full diacritics", "MÃ SINH VIÊN", "ma sinh vien"},
		{"dyet letter", "Doanh nghiệp", "doanh nghiep"},
		{"capital dyet", "Đại học", "dai hoc"},
		{"extra whitespace", "  Giảng  viên   hướng dẫn ", "giang vien huong dan"},
		{"mixed", "Họ và Tên", "ho va ten"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestContainsNormalized(t *testing.T) {
	assert.True(t, ContainsNormalized("Giảng viên hướng dẫn", "giang vien"))
	assert.True(t, ContainsNormalized("DOANH NGHIỆP THỰC TẬP", "doanh nghiep"))
	assert.True(t, ContainsNormalized("Công ty TNHH ABC", "cong ty"))
	assert.False(t, ContainsNormalized("Họ tên", "giang vien"))
}
