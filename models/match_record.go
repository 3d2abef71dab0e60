package models

import "time"

// MatchRecord mirrors one dataset row. MatchDir identifies the match so
// reprocessing the same directory updates in place instead of duplicating.
type MatchRecord struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	MatchDir        string `gorm:"size:512;not null;uniqueIndex"`
	AttackDiff      int    `gorm:"not null"`
	BlockDiff       int    `gorm:"not null"`
	ServeDiff       int    `gorm:"not null"`
	OppErrorDiff    int    `gorm:"not null"`
	TotalPointsDiff int    `gorm:"not null"`
	DigDiff         int    `gorm:"not null"`
	ReceptionDiff   int    `gorm:"not null"`
	SetDiff         int    `gorm:"not null"`
	TopScorer1Diff  int    `gorm:"not null"`
	TopScorer2Diff  int    `gorm:"not null"`
	Label           int    `gorm:"not null"`
}
