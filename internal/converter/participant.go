package converter

import (
	"fortune_wheel/internal/api/dto/participant"
	"fortune_wheel/internal/model"
)

func ToParticipant(req participant.SaveRequest) model.Participant {
	return model.Participant{
		FirstName: req.Nombre,
		LastName:  req.Apellido,
		Phone:     req.Telefono,
		Email:     req.Email,
	}
}

func ToParticipantList(ps []model.Participant) participant.ListResponse {
	data := make([]participant.Participant, len(ps))
	for i, p := range ps {
		data[i] = participant.Participant{
			Nombre:   p.FirstName,
			Apellido: p.LastName,
			Telefono: p.Phone,
			Email:    p.Email,
			Fecha:    p.CreatedAt,
		}
	}
	return participant.ListResponse{
		Success: true,
		Data:    data,
		Count:   len(data),
	}
}
