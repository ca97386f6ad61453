package participant

// SaveRequest - форма участника. Имена полей как у фронтенда
type SaveRequest struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Timestamp string `json:"timestamp,omitempty"` // Время клиента, не сохраняется
}

type Participant struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
	Fecha    string `json:"fecha"`
}

type SaveResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"` // Ошибки по полям формы
}

type ListResponse struct {
	Success bool          `json:"success"`
	Data    []Participant `json:"data"`
	Count   int           `json:"count"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
