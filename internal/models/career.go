package models

// Career is an academic program.
type Career struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Semesters int    `json:"semesters"`
}

// CareerPayload is the body of career create/update calls.
type CareerPayload struct {
	Name      string `json:"name" validate:"required"`
	Semesters int    `json:"semesters" validate:"gt=0"`
}
