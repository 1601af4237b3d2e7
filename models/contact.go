package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PhoneStatus string

const (
	PhoneStatusUnknown      PhoneStatus = "UNKNOWN"
	PhoneStatusCorrect      PhoneStatus = "CORRECT"
	PhoneStatusWrong        PhoneStatus = "WRONG"
	PhoneStatusDisconnected PhoneStatus = "DISCONNECTED"
	PhoneStatusDNC          PhoneStatus = "DNC"
	PhoneStatusAttempted    PhoneStatus = "ATTEMPTED"
)

type PhoneType string

const (
	PhoneTypeMobile   PhoneType = "Mobile"
	PhoneTypeLandline PhoneType = "Landline"
	PhoneTypeVoip     PhoneType = "Voip"
	PhoneTypeOther    PhoneType = "Other"
)

type ContactRelationship string

const (
	RelOwner       ContactRelationship = "Owner"
	RelHeir        ContactRelationship = "Heir"
	RelPetitioner  ContactRelationship = "Petitioner"
	RelPersonalRep ContactRelationship = "Personal Representative"
	RelTaxPayer    ContactRelationship = "Tax Payer"
	RelRelative    ContactRelationship = "Relative"
)

// RelationshipTags is the closed set of property relationships a contact may carry.
var RelationshipTags = []ContactRelationship{
	RelOwner, RelHeir, RelPetitioner, RelPersonalRep, RelTaxPayer, RelRelative,
}

type PhoneData struct {
	Id                string      `json:"id" gorm:"primaryKey"`
	ContactID         string      `json:"-" gorm:"index"`
	Number            string      `json:"number"`
	Type              PhoneType   `json:"type" gorm:"type:VARCHAR(20)"`
	Status            PhoneStatus `json:"status" gorm:"type:VARCHAR(20)"`
	StatusChangedDate *time.Time  `json:"status_changed_date"`
	Position          int         `json:"-" gorm:"index"`
}

type EmailData struct {
	Id        string `json:"id" gorm:"primaryKey"`
	ContactID string `json:"-" gorm:"index"`
	Email     string `json:"email"`
	Position  int    `json:"-" gorm:"index"`
}

// Contact order within a property is user-controlled: Position is the display
// order and only explicit reorders may change the relative sequence.
// Phones are capped at 10 and emails at 5 by convention, not enforced here.
type Contact struct {
	Id            string                                   `json:"id" gorm:"primaryKey"`
	PropertyID    string                                   `json:"-" gorm:"index"`
	FirstName     string                                   `json:"first_name"`
	LastName      string                                   `json:"last_name"`
	Age           int                                      `json:"age"`
	IsDeceased    bool                                     `json:"is_deceased"`
	Address       string                                   `json:"address"`
	Phones        []PhoneData                              `json:"phones" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	Emails        []EmailData                              `json:"emails" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	Relationships datatypes.JSONSlice[ContactRelationship] `json:"relationships"`
	Position      int                                      `json:"-" gorm:"index"`

	// UI state, never persisted.
	IsExpanded bool `json:"is_expanded" gorm:"-"`
}

func (contact *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if contact.Id == "" {
		contact.Id = uuid.NewString()
	}
	return
}
