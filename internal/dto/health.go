package dto

import "time"

type HealthPoolDTO struct {
	Size        int `json:"size" example:"5"`
	MaxOverflow int `json:"max_overflow" example:"10"`
	Timeout     int `json:"timeout" example:"30"`
	Recycle     int `json:"recycle" example:"1800"`
}

type HealthDatabaseDTO struct {
	Status string        `json:"status" example:"healthy"`
	Type   string        `json:"type" example:"postgresql"`
	Pool   HealthPoolDTO `json:"pool"`
}

type HealthResponseDTO struct {
	Status      string             `json:"status" example:"healthy"`
	Message     string             `json:"message" example:"Service is operational"`
	Version     string             `json:"version,omitempty" example:"1.0.0"`
	Environment string             `json:"environment,omitempty" example:"production"`
	Timestamp   time.Time          `json:"timestamp"`
	Database    *HealthDatabaseDTO `json:"database,omitempty"`
}

type RootResponseDTO struct {
	Status    string    `json:"status" example:"healthy"`
	Message   string    `json:"message" example:"Flooring CRM API is running"`
	DocsURL   string    `json:"docs_url" example:"/swagger/index.html"`
	Timestamp time.Time `json:"timestamp"`
}
