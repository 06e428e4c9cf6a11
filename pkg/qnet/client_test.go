package qnet

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func qualificationItem(code, name, series string) string {
	return fmt.Sprintf("<item><jmcd>%s</jmcd><jmfldnm>%s</jmfldnm><seriesnm>%s</seriesnm><obligfldnm>정보기술</obligfldnm></item>", code, name, series)
}

func listPage(items ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE.</resultMsg></header>
  <body><items>%s</items><totalCount>%d</totalCount></body>
</response>`, strings.Join(items, ""), len(items))
}

func newTestClient(listURL, schedURL string) *Client {
	c := NewClient("test-key", nil)
	c.ListURL = listURL
	c.SchedURL = schedURL
	return c
}

func TestGetAllQualifications(t *testing.T) {
	var requestedPages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("pageNo")
		requestedPages = append(requestedPages, page)
		if r.URL.Query().Get("serviceKey") != "test-key" {
			http.Error(w, "no key", http.StatusUnauthorized)
			return
		}
		switch page {
		case "1":
			items := make([]string, 0, 100)
			for i := 0; i < 100; i++ {
				items = append(items, qualificationItem(fmt.Sprintf("%04d", i), fmt.Sprintf("자격증%d", i), "기사"))
			}
			fmt.Fprint(w, listPage(items...))
		case "2":
			fmt.Fprint(w, listPage(
				qualificationItem("1320", "정보처리기사", "기사"),
				qualificationItem("2290", "정보처리산업기사", "산업기사"),
			))
		default:
			fmt.Fprint(w, listPage())
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	quals, err := c.GetAllQualifications(context.Background())
	if err != nil {
		t.Fatalf("GetAllQualifications() error = %v", err)
	}
	if len(quals) != 102 {
		t.Errorf("got %d qualifications, want 102", len(quals))
	}
	// Page 2 was short, so page 3 is never requested.
	if len(requestedPages) != 2 {
		t.Errorf("requested pages %v, want exactly 2 requests", requestedPages)
	}
	last := quals[len(quals)-1]
	if last.Name != "정보처리산업기사" || last.Series != "산업기사" || last.Field != "정보기술" {
		t.Errorf("last qualification = %+v", last)
	}

	// Second call is served from cache without touching the server.
	before := len(requestedPages)
	again, err := c.GetAllQualifications(context.Background())
	if err != nil {
		t.Fatalf("cached GetAllQualifications() error = %v", err)
	}
	if len(again) != 102 {
		t.Errorf("cached call returned %d rows, want 102", len(again))
	}
	if len(requestedPages) != before {
		t.Errorf("cached call still hit the server: %v", requestedPages)
	}
}

func TestGetAllQualificationsEmptyServiceKey(t *testing.T) {
	c := NewClient("", nil)
	quals, err := c.GetAllQualifications(context.Background())
	if err != nil {
		t.Fatalf("GetAllQualifications() error = %v", err)
	}
	if quals != nil {
		t.Errorf("got %v, want nil without a service key", quals)
	}
}

func TestGetAllQualificationsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	if _, err := c.GetAllQualifications(context.Background()); err == nil {
		t.Error("expected an error from a 500 response")
	}
}

func schedulePage(items ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE.</resultMsg></header>
  <body><items>%s</items></body>
</response>`, strings.Join(items, ""))
}

const engineerRound = `<item>
  <qualgbnm>국가기술자격</qualgbnm>
  <description>정보처리기사 제1회</description>
  <implYy>2026</implYy>
  <implSeq>1</implSeq>
  <docRegStartDt>20260120</docRegStartDt>
  <docRegEndDt>20260123</docRegEndDt>
  <docExamStartDt>20260301</docExamStartDt>
  <docExamEndDt>20260301</docExamEndDt>
</item>`

func TestGetExamSchedules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getEList"):
			fmt.Fprint(w, schedulePage(engineerRound))
		case strings.HasSuffix(r.URL.Path, "/getPEList"):
			fmt.Fprint(w, schedulePage(`<item><qualgbnm>국가기술자격</qualgbnm><description>기술사 제1회</description><implYy>2026</implYy></item>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	schedules, err := c.GetExamSchedules(context.Background())
	if err != nil {
		t.Fatalf("GetExamSchedules() error = %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("got %d schedules, want 2", len(schedules))
	}
	first := schedules[0]
	if first.Description != "정보처리기사 제1회" || first.DocExamStart != "20260301" || first.DocRegStart != "20260120" {
		t.Errorf("first schedule = %+v", first)
	}
	if schedules[1].Description != "기술사 제1회" {
		t.Errorf("second schedule = %+v", schedules[1])
	}
}

func TestGetExamSchedulesPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/getPEList") {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, schedulePage(engineerRound))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	schedules, err := c.GetExamSchedules(context.Background())
	if err != nil {
		t.Fatalf("GetExamSchedules() error = %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("got %d schedules, want the surviving endpoint's row", len(schedules))
	}
	if schedules[0].Description != "정보처리기사 제1회" {
		t.Errorf("schedule = %+v", schedules[0])
	}
}

func TestQualificationDescription(t *testing.T) {
	tests := []struct {
		name string
		qual Qualification
		want string
	}{
		{"both fields", Qualification{Field: "정보기술", MiddleField: "정보처리"}, "정보기술 정보처리"},
		{"field only", Qualification{Field: "정보기술"}, "정보기술"},
		{"middle field only", Qualification{MiddleField: "정보처리"}, "정보처리"},
		{"empty", Qualification{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.qual.Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindCode(t *testing.T) {
	tests := []struct {
		name     string
		wantCode string
		wantOK   bool
	}{
		{"정보처리기사", "1320", true},
		{"정보처리기사 (필기)", "1320", true},
		{"산업안전기사", "2150", true},
		{"빅데이터분석기사", "", true},
		{"요리사", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		code, ok := FindCode(tt.name)
		if code != tt.wantCode || ok != tt.wantOK {
			t.Errorf("FindCode(%q) = (%q, %v), want (%q, %v)", tt.name, code, ok, tt.wantCode, tt.wantOK)
		}
	}
}

func TestGetSchedulesForQualification(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if !strings.HasSuffix(r.URL.Path, "/getEList") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("jmCd"); got != "1320" {
			t.Errorf("jmCd = %q, want 1320", got)
		}
		fmt.Fprint(w, schedulePage(engineerRound))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	rounds, err := c.GetSchedulesForQualification(context.Background(), "정보처리기사")
	if err != nil {
		t.Fatalf("GetSchedulesForQualification() error = %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("got %d rounds, want 1", len(rounds))
	}
	if rounds[0].DocExamStart != "20260301" || rounds[0].ImplSeq != "1" {
		t.Errorf("round = %+v", rounds[0])
	}
	if requests != 1 {
		t.Errorf("made %d requests, want 1", requests)
	}

	// Rounds are cached per code.
	if _, err := c.GetSchedulesForQualification(context.Background(), "정보처리기사"); err != nil {
		t.Fatalf("cached lookup error = %v", err)
	}
	if requests != 1 {
		t.Errorf("cached lookup still hit the server: %d requests", requests)
	}
}

func TestGetSchedulesForQualificationWithoutCode(t *testing.T) {
	officeRound := `<item>
  <qualgbnm>국가기술자격</qualgbnm>
  <description>컴퓨터활용능력</description>
  <implYy>2026</implYy>
  <implSeq>2</implSeq>
  <docExamStartDt>20260614</docExamStartDt>
</item>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("jmCd") != "" {
			t.Errorf("uncoded name must not query by jmCd")
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/getEList"):
			fmt.Fprint(w, schedulePage(engineerRound, officeRound))
		default:
			fmt.Fprint(w, schedulePage())
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	// Not in the code map, so the yearly calendar is filtered by description.
	rounds, err := c.GetSchedulesForQualification(context.Background(), "컴퓨터활용능력 1급")
	if err != nil {
		t.Fatalf("GetSchedulesForQualification() error = %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("got %d rounds, want only the matching description", len(rounds))
	}
	if rounds[0].DocExamStart != "20260614" {
		t.Errorf("round = %+v", rounds[0])
	}
}
