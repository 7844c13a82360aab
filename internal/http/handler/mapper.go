package handler

import (
	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/schedule"
)

// Domain → DTO mappers. The wire shapes carry the priority presentation
// metadata (label and color) alongside the numeric level so clients never
// hardcode the palette.

// TaskDTO is the wire shape of a Kanban task.
type TaskDTO struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Day               string      `json:"day"`
	Status            string      `json:"status"`
	Priority          int         `json:"priority"`
	PriorityLabel     string      `json:"priority_label"`
	PriorityColor     string      `json:"priority_color"`
	Origin            string      `json:"origin"`
	OriginActivityKey *string     `json:"origin_activity_key,omitempty"`
	CreationDate      domain.Date `json:"creation_date"`
}

// EntryDTO is the wire shape of a schedule activity.
type EntryDTO struct {
	Slot          string      `json:"slot"`
	Title         string      `json:"title"`
	Priority      int         `json:"priority"`
	PriorityLabel string      `json:"priority_label"`
	PriorityColor string      `json:"priority_color"`
	Rule          string      `json:"rule"`
	CreationDate  domain.Date `json:"creation_date"`
	Overlay       bool        `json:"overlay,omitempty"`
}

func mapTaskToDTO(task domain.Task) TaskDTO {
	return TaskDTO{
		ID:                task.ID,
		Title:             task.Title,
		Day:               string(task.Day),
		Status:            string(task.Status),
		Priority:          int(task.Priority),
		PriorityLabel:     task.Priority.Label(),
		PriorityColor:     task.Priority.Color(),
		Origin:            string(task.Origin),
		OriginActivityKey: task.OriginActivityKey,
		CreationDate:      task.CreationDate,
	}
}

func mapTasksToDTO(tasks []domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = mapTaskToDTO(task)
	}
	return dtos
}

func mapEntryToDTO(entry schedule.Entry) EntryDTO {
	return EntryDTO{
		Slot:          entry.Slot,
		Title:         entry.Title,
		Priority:      int(entry.Priority),
		PriorityLabel: entry.Priority.Label(),
		PriorityColor: entry.Priority.Color(),
		Rule:          string(entry.Rule),
		CreationDate:  entry.CreationDate,
		Overlay:       entry.Overlay,
	}
}

func mapEntriesToDTO(entries []schedule.Entry) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = mapEntryToDTO(entry)
	}
	return dtos
}
