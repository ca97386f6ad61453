package model

// Participant - участник, оставивший контакты после спина
type Participant struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	CreatedAt string // Заполняется сервером при сохранении
}
