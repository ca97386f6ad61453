package sheet_repo

import (
	"context"
	"fmt"
	"fortune_wheel/internal/config"
	"fortune_wheel/internal/model"
	"fortune_wheel/internal/repository"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

// колонки листа: имя, фамилия, телефон, email, дата
const (
	colFirstName = iota
	colLastName
	colPhone
	colEmail
	colCreatedAt
)

type repo struct {
	srv        *sheets.Service
	sheetID    string
	sheetRange string
}

// NewSheetRepository - участники в Google Sheets через сервисный аккаунт
func NewSheetRepository(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (repository.ParticipantRepository, error) {
	opts = append([]option.ClientOption{
		option.WithCredentialsJSON(cfg.CredentialsJSON()),
		option.WithScopes(sheets.SpreadsheetsScope),
	}, opts...)

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &repo{
		srv:        srv,
		sheetID:    cfg.SheetID(),
		sheetRange: cfg.Range(),
	}, nil
}

// Append - добавляет строку участника в конец листа
func (r *repo) Append(ctx context.Context, p model.Participant) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{
			{p.FirstName, p.LastName, p.Phone, p.Email, p.CreatedAt},
		},
	}

	_, err := r.srv.Spreadsheets.Values.
		Append(r.sheetID, r.sheetRange, values).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to sheet: %w", err)
	}
	return nil
}

// List - все участники. Первая строка листа считается заголовком
func (r *repo) List(ctx context.Context) ([]model.Participant, error) {
	resp, err := r.srv.Spreadsheets.Values.
		Get(r.sheetID, r.sheetRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	return RowsToParticipants(resp.Values), nil
}

// RowsToParticipants пропускает заголовок и дополняет пустыми строками недостающие ячейки
func RowsToParticipants(rows [][]interface{}) []model.Participant {
	if len(rows) <= 1 {
		return []model.Participant{}
	}

	participants := make([]model.Participant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		participants = append(participants, model.Participant{
			FirstName: cell(row, colFirstName),
			LastName:  cell(row, colLastName),
			Phone:     cell(row, colPhone),
			Email:     cell(row, colEmail),
			CreatedAt: cell(row, colCreatedAt),
		})
	}
	return participants
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return fmt.Sprint(row[i])
}
