package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenCreatesSchema(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Health())

	records, err := db.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.UpsertRecord(StoredRecord{Domain: "a.example", TTL: 60, Address: "10.0.0.1"}))
	require.NoError(t, db.Close())

	// Re-opening must tolerate already-applied migrations and keep data.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	records, err := db.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a.example", records[0].Domain)
}

func TestUpsertRecord(t *testing.T) {
	db := openTestDB(t)

	rec := StoredRecord{Domain: "example.com", TTL: 300, Address: "192.168.1.1"}
	require.NoError(t, db.UpsertRecord(rec))

	got, err := db.GetRecord("example.com")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// Upsert replaces.
	rec.TTL = 600
	rec.Address = "192.168.1.2"
	require.NoError(t, db.UpsertRecord(rec))

	got, err = db.GetRecord("example.com")
	require.NoError(t, err)
	assert.Equal(t, uint32(600), got.TTL)
	assert.Equal(t, "192.168.1.2", got.Address)

	records, err := db.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordsSortedByDomain(t *testing.T) {
	db := openTestDB(t)
	for _, d := range []string{"c.example", "a.example", "b.example"} {
		require.NoError(t, db.UpsertRecord(StoredRecord{Domain: d, TTL: 60, Address: "10.0.0.1"}))
	}

	records, err := db.Records()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a.example", records[0].Domain)
	assert.Equal(t, "b.example", records[1].Domain)
	assert.Equal(t, "c.example", records[2].Domain)
}

func TestDeleteRecord(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.UpsertRecord(StoredRecord{Domain: "example.com", TTL: 60, Address: "10.0.0.1"}))

	require.NoError(t, db.DeleteRecord("example.com"))
	assert.Error(t, db.DeleteRecord("example.com"), "deleting twice fails")

	_, err := db.GetRecord("example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
