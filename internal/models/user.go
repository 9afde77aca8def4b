package models

import "time"

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

type User struct {
	ID        string
	Fullname  string
	Email     string
	Password  string
	Age       int
	Gender    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
