package author

import (
	"strings"
	"testing"
)

// TestValidateName 测试姓名校验规则
func TestValidateName(t *testing.T) {
	if err := ValidateName("Gabriel García Márquez"); err != nil {
		t.Errorf("合法姓名被拒绝: %v", err)
	}

	// 空串与纯空白都应被拒绝
	for _, name := range []string{"", "   ", "\t\n"} {
		if err := ValidateName(name); err == nil {
			t.Errorf("空白姓名%q应被拒绝", name)
		}
	}

	// 恰好100字符合法,101字符超长
	if err := ValidateName(strings.Repeat("a", NameMaxLen)); err != nil {
		t.Errorf("100字符姓名应合法: %v", err)
	}
	if err := ValidateName(strings.Repeat("a", NameMaxLen+1)); err == nil {
		t.Error("101字符姓名应被拒绝")
	}
}

// TestValidateNationality 测试国籍校验规则
func TestValidateNationality(t *testing.T) {
	// 国籍允许为空
	if err := ValidateNationality(""); err != nil {
		t.Errorf("空国籍应合法: %v", err)
	}
	if err := ValidateNationality("Colombiana"); err != nil {
		t.Errorf("合法国籍被拒绝: %v", err)
	}
	if err := ValidateNationality(strings.Repeat("a", NationalityMaxLen+1)); err == nil {
		t.Error("超长国籍应被拒绝")
	}
}

// TestApplyUpdate 测试部分更新语义
func TestApplyUpdate(t *testing.T) {
	a := NewAuthor("Julio Cortázar", "Argentina")

	name := "Jorge Luis Borges"
	a.ApplyUpdate(&name, nil)

	if a.Name != "Jorge Luis Borges" {
		t.Errorf("期望姓名被更新, 实际%q", a.Name)
	}
	if a.Nationality != "Argentina" {
		t.Errorf("国籍被意外修改: %q", a.Nationality)
	}
}
