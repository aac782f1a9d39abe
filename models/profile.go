package models

import (
	"time"
)

// Rates maps a booking duration key (e.g. "1 hour") to a display price.
// In-call and out-call carry independent tables; an absent or empty entry
// means the profile does not offer that duration for that call type.
type Rates struct {
	InCall  map[string]string `bson:"inCall,omitempty" json:"inCall,omitempty"`
	OutCall map[string]string `bson:"outCall,omitempty" json:"outCall,omitempty"`
}

// PersonalDetails holds the filterable personal attributes of a listing.
type PersonalDetails struct {
	Gender      string    `bson:"gender" json:"gender,omitempty"`
	DateOfBirth time.Time `bson:"dateOfBirth" json:"dateOfBirth,omitzero"`
	Activities  []string  `bson:"activities,omitempty" json:"activities,omitempty"`
}

// Security carries credentials and token material. Plaintext fields never hit
// the database; hashes never leave the server.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}

// Profile is a service-provider listing. It is created through the
// registration/onboarding surfaces and read by the browse/filter path.
type Profile struct {
	ID              string          `bson:"id" json:"id,omitempty"`
	FullName        string          `bson:"fullName" json:"fullName"`
	Email           string          `bson:"email" json:"email,omitempty"`
	MemberType      string          `bson:"memberType" json:"memberType,omitempty"`
	Location        ProfileLocation `bson:"location" json:"location,omitzero"`
	PersonalDetails PersonalDetails `bson:"personalDetails" json:"personalDetails,omitzero"`
	Ethnicity       string          `bson:"ethnicity" json:"ethnicity,omitempty"`
	Nationality     string          `bson:"nationality" json:"nationality,omitempty"`
	Rates           Rates           `bson:"rates" json:"rates,omitzero"`
	Security        Security        `bson:"security" json:"security,omitzero"`
	IsDeleted       bool            `bson:"isDeleted" json:"-"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// MemberType values. Only escort profiles appear in the public listing.
const (
	MemberTypeEscort = "escort"
	MemberTypeMember = "member"
)

// Public returns a copy fit for unauthenticated readers: contact and
// credential material stripped, listing fields intact.
func (p Profile) Public() Profile {
	p.Email = ""
	p.Security = Security{}
	return p
}
