package dto

import (
	"time"

	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
)

// BackupDocument is the downloadable full dump: every collection plus
// metadata. User entries marshal without their password hashes.
type BackupDocument struct {
	Metadata    BackupMetadata    `json:"metadata"`
	Collections BackupCollections `json:"collections"`
}

type BackupMetadata struct {
	Date    time.Time `json:"date"`
	Version string    `json:"version"`
	System  string    `json:"system"`
}

type BackupCollections struct {
	Users    []model.User        `json:"users"`
	Products []model.Product     `json:"products"`
	Tickets  []model.Ticket      `json:"tickets"`
	Repairs  []model.RepairOrder `json:"repairs"`
}
