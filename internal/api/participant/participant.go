package participant

import (
	"errors"
	dto "fortune_wheel/internal/api/dto/participant"
	"fortune_wheel/internal/converter"
	"fortune_wheel/internal/service"
	participantServ "fortune_wheel/internal/service/participant"
	"fortune_wheel/pkg/req"
	"fortune_wheel/pkg/resp"
	"net/http"
)

const (
	msgSaved       = "Participante guardado exitosamente"
	msgInvalidForm = "Datos del formulario inválidos"
	msgInvalidBody = "Solicitud inválida"
	msgSaveFailed  = "Error al guardar el participante"
	msgListFailed  = "Error al obtener participantes"
)

type HandlerDeps struct {
	Serv service.ParticipantService
}

type Handler struct {
	serv service.ParticipantService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Save сохраняет участника. Ошибки хранилища отдаются общим сообщением, подробности в логе сервиса
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SaveRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.SaveResponse{Message: msgInvalidBody})
		return
	}

	err = h.serv.Save(r.Context(), converter.ToParticipant(payload))
	if err != nil {
		var verr *participantServ.ValidationError
		if errors.As(err, &verr) {
			resp.WriteJSONResponse(w, http.StatusBadRequest, dto.SaveResponse{
				Message: msgInvalidForm,
				Errors:  verr.Fields,
			})
			return
		}
		resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.SaveResponse{Message: msgSaveFailed})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SaveResponse{Success: true, Message: msgSaved})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.serv.List(r.Context())
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{Message: msgListFailed})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToParticipantList(participants))
}
