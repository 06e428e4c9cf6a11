package main

import (
	"log"

	"career-roadmap-be/internal/config"
	"career-roadmap-be/internal/model"
	"career-roadmap-be/pkg/database"

	"github.com/google/uuid"
)

// Seeds one sample counselee with consultations so a freshly migrated
// database can exercise the generate endpoint end to end.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding sample career profile...")

	userId := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	var existing model.CareerProfile
	if err := db.Where("user_id = ?", userId).First(&existing).Error; err == nil {
		log.Printf("Profile for user %s already exists, skipping...", userId)
		return
	}

	profile := model.CareerProfile{
		Id:                  uuid.New(),
		UserId:              userId,
		RecommendedCareers:  "백엔드 개발자",
		TargetCompany:       "네이버",
		Major:               "컴퓨터공학",
		EducationLevel:      "대학교 재학",
		WorkExperienceYears: 0,
		AgeGroup:            "20대",
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatalf("Error creating profile: %v", err)
	}

	consultation := model.Consultation{
		Id:        uuid.New(),
		ProfileId: profile.Id,
		UserId:    userId,
		Content:   "진로 방향에 대한 1차 상담. 개발 직무 선호가 뚜렷하며 협업 경험을 쌓고 싶어함.",
	}
	if err := db.Create(&consultation).Error; err != nil {
		log.Fatalf("Error creating consultation: %v", err)
	}

	analysis := model.ConsultationAnalysis{
		Id:               uuid.New(),
		ConsultationId:   consultation.Id,
		Strengths:        "문제 해결 능력, 꾸준한 학습 습관",
		InterestKeywords: "백엔드, 서버, 데이터베이스",
		CareerValues:     "성장 가능성, 협업 문화",
	}
	if err := db.Create(&analysis).Error; err != nil {
		log.Fatalf("Error creating analysis: %v", err)
	}

	log.Println("✅ Seeding completed!")
}
