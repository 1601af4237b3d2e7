package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NoteType string

const (
	NoteTypeNote     NoteType = "Note"
	NoteTypeFollowUp NoteType = "FollowUp"
	NoteTypeCall     NoteType = "Call"
	NoteTypeSMS      NoteType = "SMS"
	NoteTypeEmail    NoteType = "Email"
	NoteTypeAiSent   NoteType = "AiSent"
	NoteTypeLead     NoteType = "Lead"
	NoteTypeOffer    NoteType = "Offer"
)

// NoteTypes is the closed set of activity entry kinds, in filter-bar order.
var NoteTypes = []NoteType{
	NoteTypeSMS, NoteTypeEmail, NoteTypeCall, NoteTypeAiSent,
	NoteTypeFollowUp, NoteTypeNote, NoteTypeLead, NoteTypeOffer,
}

// Note is one activity feed entry. CreatedAt and the CreatedBy/UserId
// attribution are stamped once at insertion and never change. Seq records
// insertion order; the feed displays most-recent insertion first, which is
// not necessarily timestamp order.
//
// FollowUpDate is a timezone-naive local timestamp string
// ("2025-03-10T09:00:00"), only meaningful when Type is FollowUp.
type Note struct {
	Id           string         `json:"id" gorm:"primaryKey"`
	PropertyID   string         `json:"-" gorm:"index"`
	Content      string         `json:"content"`
	Type         NoteType       `json:"type" gorm:"type:VARCHAR(20)"`
	CreatedAt    time.Time      `json:"created_at"`
	CreatedBy    string         `json:"created_by"`
	UserId       string         `json:"user_id"`
	FollowUpDate string         `json:"follow_up_date,omitempty"`
	Metadata     datatypes.JSON `json:"metadata,omitempty"`
	Seq          int64          `json:"-" gorm:"index"`
}

func (note *Note) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if note.Id == "" {
		note.Id = uuid.NewString()
	}
	return
}
