package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.StaffUser{},
		&models.ScheduleDay{},
		&models.BlockedDate{},
		&models.Appointment{},
		&models.AppointmentHistory{},
		&models.NotificationTask{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// retaguarda contra duplo agendamento, além do lock na transação de reserva
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_slot
        ON appointments (date, start_time)
        WHERE status IN ('pending', 'confirmed')
    `)

	seedSchedule(db)
	seedAdmin(db, cfg)

	return db
}

// seedSchedule garante as 7 linhas do expediente semanal.
func seedSchedule(db *gorm.DB) {
	var count int64
	db.Model(&models.ScheduleDay{}).Count(&count)
	if count > 0 {
		return
	}

	days := make([]models.ScheduleDay, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		day := models.ScheduleDay{Weekday: weekday}

		// padrão: segunda a sexta, 09:00–18:00
		if weekday >= 1 && weekday <= 5 {
			day.IsWorkingDay = true
			day.StartTime = "09:00"
			day.EndTime = "18:00"
		}

		days = append(days, day)
	}

	if err := db.Create(&days).Error; err != nil {
		log.Printf("failed to seed schedule: %v", err)
	}
}

func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.StaffUser{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := models.StaffUser{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
	}
}
