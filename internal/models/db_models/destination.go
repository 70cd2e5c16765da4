package db_models

import (
	"math"
	"strconv"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Destination struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Lat       float64        `gorm:"not null" json:"lat"`
	Long      float64        `gorm:"not null" json:"long"`
	ImageURLs pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	CreatedAt int64          `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (Destination) TableName() string {
	return "destinations"
}

// GenerateID derives the primary key from the coordinates rounded to six
// decimal places (about one meter of precision). Two destinations whose
// coordinates agree after rounding are the same record.
func GenerateID(lat, long float64) string {
	return formatCoord(roundCoord(lat)) + "_" + formatCoord(roundCoord(long))
}

func roundCoord(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = GenerateID(d.Lat, d.Long)
	}
	return nil
}
