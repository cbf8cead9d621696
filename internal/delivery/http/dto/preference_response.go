package dto

import (
	"github.com/google/uuid"

	"fitpartner/internal/domain/preference"
)

type WorkoutPreferenceResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewWorkoutPreferenceList(items []preference.WorkoutPreference) []WorkoutPreferenceResponse {
	out := make([]WorkoutPreferenceResponse, 0, len(items))
	for _, p := range items {
		out = append(out, WorkoutPreferenceResponse{ID: p.ID, Name: p.Name})
	}
	return out
}
