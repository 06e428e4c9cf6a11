package roadmap

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		job  string
		want Category
	}{
		{"data engineer picks data before dev", "데이터 엔지니어", CategoryData},
		{"ai researcher", "AI 연구원", CategoryData},
		{"construction safety picks civil before safety", "건설안전 관리자", CategoryCivil},
		{"industrial safety", "산업안전 관리자", CategorySafety},
		{"backend developer", "백엔드 개발자", CategoryDev},
		{"car mechanic", "자동차 정비사", CategoryMech},
		{"electrical engineer series", "전기기사", CategoryElec},
		{"nurse", "간호사", CategoryMedical},
		{"marketer", "마케팅 매니저", CategoryBusiness},
		{"unmatched job", "회계사", CategoryGeneral},
		{"empty", "", CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.job); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.job, got, tt.want)
			}
		})
	}
}

func TestIsDevJob(t *testing.T) {
	tests := []struct {
		job  string
		want bool
	}{
		{"백엔드 개발자", true},
		{"데이터 엔지니어", true},
		{"소프트웨어 아키텍트", true},
		{"간호사", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDevJob(tt.job); got != tt.want {
			t.Errorf("IsDevJob(%q) = %v, want %v", tt.job, got, tt.want)
		}
	}
}

func TestIsDataJob(t *testing.T) {
	tests := []struct {
		job  string
		want bool
	}{
		{"데이터 엔지니어", true},
		{"ai 엔지니어", true},
		{"인공지능 연구원", true},
		{"백엔드 개발자", false},
	}
	for _, tt := range tests {
		if got := IsDataJob(tt.job); got != tt.want {
			t.Errorf("IsDataJob(%q) = %v, want %v", tt.job, got, tt.want)
		}
	}
}
