package calc

import (
	"time"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/numeric"
	calcUC "numconv/internal/usecase/calc"
)

// Request is the body of every calculation endpoint. Input may be a JSON
// string or a JSON number; either way it is treated as raw text.
type Request struct {
	Input rawInput `json:"input"`
}

// ResultDTO is the success response of a calculation endpoint.
type ResultDTO struct {
	Operation string `json:"operation"`
	Input     string `json:"input"`
	Result    string `json:"result"`
	Value     any    `json:"value"`
	Display   string `json:"display"`
	Prime     *bool  `json:"prime,omitempty"`
	Divisor   *int64 `json:"divisor,omitempty"`
}

// HistoryDTO is one entry of GET /history/{operation}.
type HistoryDTO struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Display   string    `json:"display"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse is the body of GET /history/{operation}.
type HistoryResponse struct {
	Operation string       `json:"operation"`
	Entries   []HistoryDTO `json:"entries"`
}

func toResultDTO(res calcUC.Result) ResultDTO {
	dto := ResultDTO{
		Operation: string(res.Operation),
		Input:     res.Input,
		Result:    res.Output,
		Value:     res.Value,
		Display:   res.Display,
	}
	switch v := res.Value.(type) {
	case numeric.Parity:
		dto.Value = v.String()
	case numeric.Primality:
		prime := v.Prime
		dto.Prime = &prime
		dto.Value = res.Output
		if v.HasDivisor() {
			d := v.Divisor
			dto.Divisor = &d
		}
	}
	return dto
}

func toHistoryDTO(e *entity.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:        e.ID.String(),
		Operation: string(e.Operation),
		Input:     e.Input,
		Output:    e.Output,
		Display:   e.Display,
		CreatedAt: e.CreatedAt,
	}
}
