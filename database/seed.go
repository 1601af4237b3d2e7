package database

import (
	"log"
	"os"
	"time"

	"proprospect-backend/models"
	"proprospect-backend/utils"
)

// SeedDemoData loads a demo user, property, contacts and starter notes when
// SEED_DEMO_DATA=true and the store is still empty. Useful for running the
// panel against a fresh database.
func SeedDemoData() {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return
	}
	var count int64
	DB.Model(&models.Property{}).Count(&count)
	if count > 0 {
		return
	}

	user := models.User{
		Id:          "usr_123",
		DisplayName: "Alex Sales",
		Email:       "alex@proprospect.com",
	}
	user.SetPassword("changeme")
	if err := DB.Create(&user).Error; err != nil {
		log.Printf("seed: could not create demo user: %v", err)
		return
	}

	property := models.Property{
		Id:       "prop_987",
		Address:  "123 Maplewood Avenue",
		City:     "Springfield",
		State:    "IL",
		Zip:      "62704",
		Status:   "Active",
		Price:    utils.Round2(450000),
		ImageUrl: "https://picsum.photos/800/400",
	}
	if err := DB.Create(&property).Error; err != nil {
		log.Printf("seed: could not create demo property: %v", err)
		return
	}

	contacts := []models.Contact{
		{
			Id:         "ct_1",
			PropertyID: property.Id,
			FirstName:  "John",
			LastName:   "Doe",
			Age:        45,
			Address:    "123 Maplewood Avenue, Springfield, IL 62704",
			Phones: []models.PhoneData{
				{Id: "p1", Number: "(555) 123-4567", Type: models.PhoneTypeMobile, Status: models.PhoneStatusUnknown, Position: 0},
				{Id: "p2", Number: "(555) 987-6543", Type: models.PhoneTypeLandline, Status: models.PhoneStatusUnknown, Position: 1},
			},
			Emails: []models.EmailData{
				{Id: "e1", Email: "john.doe@example.com", Position: 0},
				{Id: "e2", Email: "j.doe@workplace.com", Position: 1},
			},
			Relationships: []models.ContactRelationship{models.RelOwner, models.RelHeir},
			Position:      0,
		},
		{
			Id:            "ct_2",
			PropertyID:    property.Id,
			FirstName:     "Jane",
			LastName:      "Doe",
			Age:           42,
			Address:       "123 Maplewood Avenue, Springfield, IL 62704",
			Relationships: []models.ContactRelationship{models.RelRelative},
			Position:      1,
		},
	}
	for i := range contacts {
		if err := DB.Create(&contacts[i]).Error; err != nil {
			log.Printf("seed: could not create demo contact: %v", err)
		}
	}

	now := time.Now()
	notes := []models.Note{
		{
			Id:         "n_1",
			PropertyID: property.Id,
			Content:    "Initial prospecting call. No answer, left voicemail.",
			Type:       models.NoteTypeCall,
			CreatedAt:  now.Add(-48 * time.Hour),
			CreatedBy:  "Sarah Manager",
			UserId:     "usr_456",
			Seq:        0,
		},
		{
			Id:         "n_2",
			PropertyID: property.Id,
			Content:    "Sent follow-up email regarding property valuation.",
			Type:       models.NoteTypeEmail,
			CreatedAt:  now.Add(-24 * time.Hour),
			CreatedBy:  user.DisplayName,
			UserId:     user.Id,
			Seq:        1,
		},
		{
			Id:           "n_3",
			PropertyID:   property.Id,
			Content:      "Follow up about the price reduction.",
			Type:         models.NoteTypeFollowUp,
			CreatedAt:    now,
			CreatedBy:    user.DisplayName,
			UserId:       user.Id,
			FollowUpDate: now.Add(72 * time.Hour).Format("2006-01-02") + "T09:00:00",
			Seq:          2,
		},
	}
	for i := range notes {
		if err := DB.Create(&notes[i]).Error; err != nil {
			log.Printf("seed: could not create demo note: %v", err)
		}
	}
	log.Println("seed: demo data loaded")
}
