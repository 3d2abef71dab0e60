package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vnlstats/models"
	"vnlstats/pkg/match"
)

// recordSink optionally mirrors successful records into Postgres. The CSV
// file stays the primary output; sink failures are logged per match and do
// not fail the row.
type recordSink struct {
	db *gorm.DB
}

// openSink connects when a DSN is configured; otherwise the sink is inert.
// A connection failure is fatal: a configured-but-broken DSN is operator
// error, not a per-match condition.
func openSink(dsn string) *recordSink {
	if dsn == "" {
		return &recordSink{}
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	if err := gdb.AutoMigrate(&models.MatchRecord{}); err != nil {
		log.Fatalf("migrate match_records: %v", err)
	}
	return &recordSink{db: gdb}
}

func (s *recordSink) save(rec *match.Record) {
	if s.db == nil {
		return
	}
	row := models.MatchRecord{
		MatchDir:        rec.Dir,
		AttackDiff:      rec.Diffs[0],
		BlockDiff:       rec.Diffs[1],
		ServeDiff:       rec.Diffs[2],
		OppErrorDiff:    rec.Diffs[3],
		TotalPointsDiff: rec.Diffs[4],
		DigDiff:         rec.Diffs[5],
		ReceptionDiff:   rec.Diffs[6],
		SetDiff:         rec.Diffs[7],
		TopScorer1Diff:  rec.Diffs[8],
		TopScorer2Diff:  rec.Diffs[9],
		Label:           rec.Label,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_dir"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		log.Printf("db mirror failed for %s: %v", rec.Dir, err)
	}
}
