package dto

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

// AppointmentListDTO é a linha do painel do barbeiro.
type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	Service     string  `json:"service"`
	Price       float64 `json:"price,omitempty"`
	DurationMin int     `json:"duration_min,omitempty"`
}

// TodayAppointmentDTO é a visão pública da agenda do dia (sem telefone).
type TodayAppointmentDTO struct {
	Time       string `json:"time"`
	ClientName string `json:"client_name"`
	Service    string `json:"service"`
}

func NewAppointmentList(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		ClientName:  ap.Client.Name,
		ClientPhone: ap.Client.Phone,
		Service:     ap.ServiceName,
	}

	if ap.Service != nil {
		out.Service = ap.Service.Name
		out.Price = ap.Service.Price
		out.DurationMin = ap.Service.DurationMin
	}
	return out
}

func NewTodayAppointment(ap models.Appointment) TodayAppointmentDTO {
	return TodayAppointmentDTO{
		Time:       ap.Time,
		ClientName: ap.Client.Name,
		Service:    ap.ServiceName,
	}
}
