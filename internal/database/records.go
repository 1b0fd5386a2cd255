package database

import (
	"database/sql"
	"fmt"
)

// StoredRecord is one seed A record row.
type StoredRecord struct {
	Domain  string
	TTL     uint32
	Address string // dotted-quad IPv4
}

// Records returns all seed records, ordered by domain.
func (db *DB) Records() ([]StoredRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query("SELECT domain, ttl, address FROM records ORDER BY domain")
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []StoredRecord
	for rows.Next() {
		var r StoredRecord
		if err := rows.Scan(&r.Domain, &r.TTL, &r.Address); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// UpsertRecord inserts or replaces the seed record for a domain.
func (db *DB) UpsertRecord(rec StoredRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO records (domain, ttl, address, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(domain) DO UPDATE SET
			ttl = excluded.ttl,
			address = excluded.address,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := db.conn.Exec(query, rec.Domain, rec.TTL, rec.Address); err != nil {
		return fmt.Errorf("failed to upsert record %s: %w", rec.Domain, err)
	}

	return nil
}

// DeleteRecord removes the seed record for a domain.
func (db *DB) DeleteRecord(domain string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	result, err := db.conn.Exec("DELETE FROM records WHERE domain = ?", domain)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("record not found: %s", domain)
	}

	return nil
}

// GetRecord returns the seed record for a domain, or sql.ErrNoRows.
func (db *DB) GetRecord(domain string) (StoredRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var r StoredRecord
	err := db.conn.QueryRow("SELECT domain, ttl, address FROM records WHERE domain = ?", domain).
		Scan(&r.Domain, &r.TTL, &r.Address)
	if err == sql.ErrNoRows {
		return StoredRecord{}, err
	}
	if err != nil {
		return StoredRecord{}, fmt.Errorf("failed to get record %s: %w", domain, err)
	}

	return r, nil
}
