package score

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Records is the external key-value store for best scores and the
// calibration offset. The core never touches it; only the session
// controller does.
type Records interface {
	Init() error
	Deinit()

	Best(track string) (int64, bool)
	// SaveBest persists the snapshot when it beats the stored best and
	// reports whether it did.
	SaveBest(track string, snap Snapshot) bool

	Calibration() time.Duration
	SetCalibration(offset time.Duration)
}

type DefaultRecords struct {
	db *sql.DB
}

func (r *DefaultRecords) Init() error {
	db, err := sql.Open("sqlite3", "./records.db")
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists records
	  (
		  track text not null primary key,
		  score integer not null,
		  max_combo integer not null,
		  grade text not null,
		  approval_rate real not null
	  );
	create table if not exists settings
	  (
		  key text not null primary key,
		  value integer not null
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		return err
	}

	r.db = db
	return nil
}

func (r *DefaultRecords) Deinit() {
	if nil != r.db {
		r.db.Close()
	}
}

func (r *DefaultRecords) Best(track string) (int64, bool) {
	var best int64
	err := r.db.QueryRow("select score from records where track = ?", track).Scan(&best)
	if err == sql.ErrNoRows {
		return 0, false
	}
	if nil != err {
		log.Println("unable to load record:", err)
		return 0, false
	}
	return best, true
}

func (r *DefaultRecords) SaveBest(track string, snap Snapshot) bool {
	best, ok := r.Best(track)
	if ok && snap.Score <= best {
		return false
	}
	_, err := r.db.Exec(
		`insert into records(track, score, max_combo, grade, approval_rate)
		 values(?, ?, ?, ?, ?)
		 on conflict(track) do update set
		 score = excluded.score,
		 max_combo = excluded.max_combo,
		 grade = excluded.grade,
		 approval_rate = excluded.approval_rate`,
		track, snap.Score, snap.MaxCombo, string(snap.Grade), snap.ApprovalRate,
	)
	if nil != err {
		log.Println("unable to save record:", err)
		return false
	}
	return true
}

func (r *DefaultRecords) Calibration() time.Duration {
	var ns int64
	err := r.db.QueryRow("select value from settings where key = 'calibration'").Scan(&ns)
	if err == sql.ErrNoRows {
		return 0
	}
	if nil != err {
		log.Println("unable to load calibration:", err)
		return 0
	}
	return time.Duration(ns)
}

func (r *DefaultRecords) SetCalibration(offset time.Duration) {
	_, err := r.db.Exec(
		`insert into settings(key, value) values('calibration', ?)
		 on conflict(key) do update set value = excluded.value`,
		int64(offset),
	)
	if nil != err {
		log.Println("unable to save calibration:", err)
	}
}
