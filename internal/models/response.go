package models

import (
	"engine.triper.app/internal/clock"
)

// ResponseModel is the versioned envelope wrapping every API response.
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// NewResponse creates a response envelope with the given code and body using
// the provided clock for the currentTime field.
func NewResponse(code int, data interface{}, text string, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: c.NowUnixMilli(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

// NewOKResponse wraps data in a 200 envelope.
func NewOKResponse(data interface{}, c clock.Clock) ResponseModel {
	return NewResponse(200, data, "OK", c)
}

// NewEntryResponse wraps a single entry in a 200 envelope.
func NewEntryResponse(entry interface{}, c clock.Clock) ResponseModel {
	data := map[string]interface{}{
		"entry": entry,
	}
	return NewOKResponse(data, c)
}

// NewCandidateListResponse wraps the pre-filter result list along with its
// count and the normalized query window the candidates were matched against.
func NewCandidateListResponse(candidates []CandidateSummary, startDate, endDate int64, c clock.Clock) ResponseModel {
	if candidates == nil {
		candidates = []CandidateSummary{}
	}
	data := map[string]interface{}{
		"candidates": candidates,
		"count":      len(candidates),
		"startDate":  startDate,
		"endDate":    endDate,
	}
	return NewOKResponse(data, c)
}
